package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/annihilation/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays annihilation bursts through the default output device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastPlay    time.Time
	seed        int64
}

// NewSoundManager creates an idle manager; Initialize opens the device
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		seed:  time.Now().UnixNano(),
	}
}

// Initialize sets up the speaker. Callers continue without sound on error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued bursts
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close, clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayExplosion queues one burst unless another started within ExplosionSoundGap.
// count scales loudness slightly so a chain reaction sounds heavier. Returns whether a burst was queued
func (sm *SoundManager) PlayExplosion(count int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || count <= 0 {
		return false
	}
	if !sm.allow(time.Now()) {
		return false
	}

	sm.seed++
	var burst beep.Streamer = beep.Take(
		sampleRate.N(parameter.ExplosionSoundDuration),
		NewExplosionGenerator(sampleRate, sm.seed),
	)
	if count > 1 {
		// Louder per extra pair, capped at 4 extra
		burst = &effects.Volume{Streamer: burst, Base: 2, Volume: min(float64(count-1), 4) / 6}
	}

	speaker.Lock()
	sm.mixer.Add(burst)
	speaker.Unlock()
	return true
}

// allow applies the burst rate limit; caller holds mu
func (sm *SoundManager) allow(now time.Time) bool {
	if !sm.lastPlay.IsZero() && now.Sub(sm.lastPlay) < parameter.ExplosionSoundGap {
		return false
	}
	sm.lastPlay = now
	return true
}
