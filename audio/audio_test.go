package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/parameter"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

// drain streams s to exhaustion and returns all samples
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never ended")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	samples := drain(t, osc)

	if want := testRate.N(100 * time.Millisecond); len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
}

func TestOscillatorRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		samples := drain(t, NewOscillator(997, 50*time.Millisecond, wave, testRate))
		for i, s := range samples {
			if math.Abs(s[0]) > 1.0001 || s[0] != s[1] {
				t.Fatalf("Wave %d sample %d out of range or unbalanced: %v", wave, i, s)
			}
		}
	}
}

// constant streams full-scale samples forever
func constant() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
}

func TestOscillatorAboveNyquistIsSilent(t *testing.T) {
	samples := drain(t, NewOscillator(30000, 20*time.Millisecond, WaveSine, testRate))

	if want := testRate.N(20 * time.Millisecond); len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, sample %d is %v", i, s)
		}
	}
}

func TestShapeContour(t *testing.T) {
	shape := Shape{Attack: 10 * time.Millisecond, Decay: 10 * time.Millisecond, Sustain: 0.5, Release: 20 * time.Millisecond}
	samples := drain(t, shape.Apply(constant(), 100*time.Millisecond, testRate))

	if want := testRate.N(100 * time.Millisecond); len(samples) != want {
		t.Fatalf("Expected %d samples, got %d", want, len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	peak := testRate.N(10 * time.Millisecond)
	if samples[peak][0] != 1 {
		t.Errorf("Expected peak after attack, got %f", samples[peak][0])
	}
	mid := len(samples) / 2
	if samples[mid][0] != 0.5 {
		t.Errorf("Expected sustain level 0.5, got %f", samples[mid][0])
	}
	last := samples[len(samples)-1][0]
	if last <= 0 || last > 0.01 {
		t.Errorf("Expected near-silent tail, got %f", last)
	}
	for i := 1; i < len(samples); i++ {
		if i > peak && samples[i][0] > samples[i-1][0] {
			t.Fatalf("Gain rose after peak at sample %d", i)
		}
	}
}

func TestShapeOverlongRampsClamped(t *testing.T) {
	shape := Shape{Attack: 8 * time.Millisecond, Decay: 8 * time.Millisecond, Sustain: 0.5, Release: 8 * time.Millisecond}
	samples := drain(t, shape.Apply(constant(), 10*time.Millisecond, testRate))

	if want := testRate.N(10 * time.Millisecond); len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
	for i, s := range samples {
		if s[0] < 0 || s[0] > 1 {
			t.Fatalf("Sample %d outside [0,1]: %f", i, s[0])
		}
	}
}

func TestCueForEvents(t *testing.T) {
	tests := []struct {
		ev   event.GameEvent
		want time.Duration
	}{
		{event.GameEvent{Type: event.EventFoodCaptured, Combo: 3}, parameter.CaptureSoundDuration},
		{event.GameEvent{Type: event.EventGameStarted}, parameter.StartSoundNote1Duration + parameter.StartSoundNote2Duration},
		{event.GameEvent{Type: event.EventPaused}, parameter.PauseSoundDuration},
		{event.GameEvent{Type: event.EventResumed}, parameter.PauseSoundDuration},
		{event.GameEvent{Type: event.EventGameOver}, 2*parameter.GameOverSoundNoteDuration + parameter.GameOverSoundTailDuration},
	}

	for _, tt := range tests {
		cue, ok := CueFor(tt.ev, testRate)
		if !ok {
			t.Fatalf("Expected cue for %s", tt.ev.Type)
		}
		got := len(drain(t, cue))
		// Seq of notes rounds each note independently
		if want := testRate.N(tt.want); math.Abs(float64(got-want)) > 3 {
			t.Errorf("%s: expected ~%d samples, got %d", tt.ev.Type, want, got)
		}
	}
}

func TestRecordExtendsGameOverCue(t *testing.T) {
	plain, _ := CueFor(event.GameEvent{Type: event.EventGameOver}, testRate)
	record, _ := CueFor(event.GameEvent{Type: event.EventGameOver, NewRecord: true}, testRate)

	if len(drain(t, record)) <= len(drain(t, plain)) {
		t.Error("Expected record fanfare to lengthen the game over cue")
	}
}

func TestSemitones(t *testing.T) {
	if got := semitones(440, 12); math.Abs(got-880) > 1e-9 {
		t.Errorf("Expected octave 880, got %f", got)
	}
	if got := semitones(440, 0); got != 440 {
		t.Errorf("Expected unchanged 440, got %f", got)
	}
}

func TestHandleEventBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(parameter.AudioMasterVolume)
	// Must not touch the speaker
	sm.HandleEvents([]event.GameEvent{{Type: event.EventGameStarted}, {Type: event.EventFoodCaptured, Combo: 2}})
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer, got %d streamers", sm.mixer.Len())
	}
}
