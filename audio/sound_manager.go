package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/parameter"
)

// SoundManager plays event cues through a single mixer on the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSoundManager creates a silent manager; Initialize opens the device
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// HandleEvent plays the cue for ev, if any; a no-op before Initialize
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	cue, ok := CueFor(ev, sm.rate)
	if !ok {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(cue, sm.volume))
	speaker.Unlock()
}

// HandleEvents plays cues for a drained batch in order
func (sm *SoundManager) HandleEvents(events []event.GameEvent) {
	for _, ev := range events {
		sm.HandleEvent(ev)
	}
}
