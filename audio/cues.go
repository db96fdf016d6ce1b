// Package audio turns game events into short synthesized cues
package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/parameter"
)

var (
	captureShape  = Shape{parameter.CaptureSoundAttack, parameter.CaptureSoundDecay, parameter.CaptureSoundSustain, parameter.CaptureSoundRelease}
	startShape    = Shape{parameter.StartSoundAttack, parameter.StartSoundDecay, parameter.StartSoundSustain, parameter.StartSoundRelease}
	gameOverShape = Shape{parameter.GameOverSoundAttack, parameter.GameOverSoundDecay, parameter.GameOverSoundSustain, parameter.GameOverSoundRelease}
	recordShape   = Shape{parameter.RecordSoundAttack, parameter.RecordSoundDecay, parameter.RecordSoundSustain, parameter.RecordSoundRelease}
	pauseShape    = Shape{parameter.PauseSoundAttack, parameter.PauseSoundDecay, parameter.PauseSoundSustain, parameter.PauseSoundRelease}
)

// CaptureSound is a short blip whose pitch climbs with the combo
func CaptureSound(combo int, rate beep.SampleRate) beep.Streamer {
	freq := semitones(parameter.CaptureSoundFreq, (max(combo, parameter.ComboMin)-parameter.ComboMin)*parameter.CaptureSemitoneStep)
	return note(freq, parameter.CaptureSoundDuration, WaveSine, captureShape, rate)
}

// StartSound is a rising two-note chirp
func StartSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(parameter.StartSoundNote1Freq, parameter.StartSoundNote1Duration, WaveSquare, startShape, rate),
		note(parameter.StartSoundNote2Freq, parameter.StartSoundNote2Duration, WaveSquare, startShape, rate),
	)
}

// GameOverSound is a falling saw phrase; a new record appends an arpeggio
func GameOverSound(newRecord bool, rate beep.SampleRate) beep.Streamer {
	phrase := []beep.Streamer{
		note(220, parameter.GameOverSoundNoteDuration, WaveSaw, gameOverShape, rate),
		note(165, parameter.GameOverSoundNoteDuration, WaveSaw, gameOverShape, rate),
		note(110, parameter.GameOverSoundTailDuration, WaveSaw, gameOverShape, rate),
	}
	if newRecord {
		for _, freq := range []float64{660, 880, 1320} {
			phrase = append(phrase, note(freq, parameter.RecordSoundNoteDuration, WaveTriangle, recordShape, rate))
		}
	}
	return beep.Seq(phrase...)
}

// PauseSound is a single soft tick, higher on resume
func PauseSound(resume bool, rate beep.SampleRate) beep.Streamer {
	freq := parameter.PauseSoundFreq
	if resume {
		freq = parameter.ResumeSoundFreq
	}
	return note(freq, parameter.PauseSoundDuration, WaveTriangle, pauseShape, rate)
}

// CueFor maps a game event to its cue; false when the event is silent
func CueFor(ev event.GameEvent, rate beep.SampleRate) (beep.Streamer, bool) {
	switch ev.Type {
	case event.EventFoodCaptured:
		return CaptureSound(ev.Combo, rate), true
	case event.EventGameStarted:
		return StartSound(rate), true
	case event.EventGameOver:
		return GameOverSound(ev.NewRecord, rate), true
	case event.EventPaused:
		return PauseSound(false, rate), true
	case event.EventResumed:
		return PauseSound(true, rate), true
	}
	return nil, false
}
