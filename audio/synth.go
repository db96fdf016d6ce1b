package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects the tone generator behind a note
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// NewOscillator returns duration worth of a raw wave at freq
// Frequencies at or above Nyquist produce silence of the same length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := rate.N(duration)

	var (
		gen beep.Streamer
		err error
	)
	switch wave {
	case WaveSquare:
		gen, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		gen, err = generators.SawtoothTone(rate, freq)
	case WaveTriangle:
		gen, err = generators.TriangleTone(rate, freq)
	default:
		gen, err = generators.SineTone(rate, freq)
	}
	if err != nil {
		return generators.Silence(n)
	}
	return beep.Take(n, gen)
}

// Shape is an attack-decay-sustain-release contour
// Gain rises 0→1 over Attack, falls to Sustain over Decay, holds, then fades to 0 over Release
type Shape struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64
	Release time.Duration
}

// Apply bounds src to duration and multiplies it by the contour
// Ramps longer than the note are shortened: release first yields to attack, then decay to both
func (sh Shape) Apply(src beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(sh.Attack), total)
	rel := min(rate.N(sh.Release), total-att)
	dec := min(rate.N(sh.Decay), total-att-rel)

	return &contour{
		src:     src,
		attack:  att,
		decay:   dec,
		release: rel,
		total:   total,
		sustain: math.Max(0, math.Min(1, sh.Sustain)),
	}
}

// contour streams src through a Shape, stopping after total samples
type contour struct {
	src     beep.Streamer
	attack  int
	decay   int
	release int
	total   int
	sustain float64
	pos     int
}

// held is the pre-release gain at sample i
func (c *contour) held(i int) float64 {
	switch {
	case i < c.attack:
		return float64(i) / float64(c.attack)
	case i < c.attack+c.decay:
		return 1 - (1-c.sustain)*float64(i-c.attack)/float64(c.decay)
	default:
		return c.sustain
	}
}

func (c *contour) gain(i int) float64 {
	releaseStart := c.total - c.release
	if i < releaseStart {
		return c.held(i)
	}
	return c.held(releaseStart) * float64(c.total-i) / float64(c.release)
}

func (c *contour) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	if rem := c.total - c.pos; len(samples) > rem {
		samples = samples[:rem]
	}

	n, ok = c.src.Stream(samples)
	for i := range samples[:n] {
		g := c.gain(c.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		c.pos++
	}
	return n, ok
}

func (c *contour) Err() error { return c.src.Err() }

// note is one shaped tone
func note(freq float64, duration time.Duration, wave WaveType, shape Shape, rate beep.SampleRate) beep.Streamer {
	return shape.Apply(NewOscillator(freq, duration, wave, rate), duration, rate)
}

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// semitones returns freq shifted by n equal-tempered semitones
func semitones(freq float64, n int) float64 {
	return freq * math.Pow(2, float64(n)/12)
}
