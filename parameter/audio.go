package parameter

import "time"

// Audio Output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every cue, 0..1
	AudioMasterVolume = 0.6
)

// Capture Cue
const (
	CaptureSoundFreq     = 520.0
	CaptureSemitoneStep  = 2 // Pitch rise per combo level
	CaptureSoundDuration = 70 * time.Millisecond
	CaptureSoundAttack   = 5 * time.Millisecond
	CaptureSoundDecay    = 15 * time.Millisecond
	CaptureSoundSustain  = 0.55
	CaptureSoundRelease  = 40 * time.Millisecond
)

// Start Cue
const (
	StartSoundNote1Freq     = 440.0
	StartSoundNote2Freq     = 660.0
	StartSoundNote1Duration = 80 * time.Millisecond
	StartSoundNote2Duration = 140 * time.Millisecond
	StartSoundAttack        = 5 * time.Millisecond
	StartSoundDecay         = 20 * time.Millisecond
	StartSoundSustain       = 0.7
	StartSoundRelease       = 50 * time.Millisecond
)

// Game Over Cue
const (
	GameOverSoundNoteDuration = 150 * time.Millisecond
	GameOverSoundTailDuration = 350 * time.Millisecond
	GameOverSoundAttack       = 5 * time.Millisecond
	GameOverSoundDecay        = 60 * time.Millisecond
	GameOverSoundSustain      = 0.8
	GameOverSoundRelease      = 80 * time.Millisecond
)

// Record Fanfare
const (
	RecordSoundNoteDuration = 110 * time.Millisecond
	RecordSoundAttack       = 5 * time.Millisecond
	RecordSoundDecay        = 30 * time.Millisecond
	RecordSoundSustain      = 0.6
	RecordSoundRelease      = 60 * time.Millisecond
)

// Pause Cue
const (
	PauseSoundFreq     = 330.0
	ResumeSoundFreq    = 495.0
	PauseSoundDuration = 60 * time.Millisecond
	PauseSoundAttack   = 5 * time.Millisecond
	PauseSoundDecay    = 10 * time.Millisecond
	PauseSoundSustain  = 0.4
	PauseSoundRelease  = 30 * time.Millisecond
)
