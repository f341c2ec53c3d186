package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pixel-spin/constants"
)

// SoundManager plays the spin cues through the speaker
// Every play is a no-op until Initialize succeeds, and while muted
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a new sound manager; a nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	sampleRate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
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

// Available reports whether the audio device is initialized
func (sm *SoundManager) Available() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute state and returns the new value
// Unmuting plays a tick as feedback
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	sm.muted = !sm.muted
	muted := sm.muted
	sm.mu.Unlock()

	if !muted {
		sm.Play(SoundTick)
	}
	return muted
}

// Play starts a sound effect without waiting for it
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[st]++
}

// Played returns how many times a sound reached the mixer
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[st]
}

// OnSpinStart plays the spin start sweep
func (sm *SoundManager) OnSpinStart() { sm.Play(SoundSpinStart) }

// OnTick plays the card boundary blip
func (sm *SoundManager) OnTick() { sm.Play(SoundTick) }

// OnSpinEnd plays the settle arpeggio
func (sm *SoundManager) OnSpinEnd() { sm.Play(SoundWin) }
