// internal/audio/sound_manager.go
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect names a playable sound.
type Effect int

const (
	EffectShot Effect = iota
	EffectKill
	EffectPlace
	EffectDeny
	EffectLeak
	EffectGameOver
)

// SoundManager owns the speaker and mixes the synthesized effects. All
// methods are safe to call before Initialize or after a failed Initialize;
// they just do nothing, so the game runs fine on machines without audio.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

func NewSoundManager(volume float64, muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
	}
}

// Initialize opens the speaker. Failure is logged, not fatal.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio: speaker init failed, continuing silent: %v", err)
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted toggles all playback.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the current mute state.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play mixes in one effect.
func (sm *SoundManager) Play(effect Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted {
		return
	}

	var s beep.Streamer
	switch effect {
	case EffectShot:
		s = ShotSound(sampleRate)
	case EffectKill:
		s = KillSound(sampleRate)
	case EffectPlace:
		s = PlaceSound(sampleRate)
	case EffectDeny:
		s = DenySound(sampleRate)
	case EffectLeak:
		s = LeakSound(sampleRate)
	case EffectGameOver:
		s = GameOverSound(sampleRate)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// Cleanup silences the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}
