// Package sound plays short synthesized cues for gameplay events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"superpong/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// tone is a single sine note
type tone struct {
	freq     float64
	duration time.Duration
}

// cues maps each gameplay event to the notes played for it, in order
var cues = map[game.Event][]tone{
	game.EventWallBounce: {{freq: 440, duration: 40 * time.Millisecond}},
	game.EventPaddleHit:  {{freq: 660, duration: 50 * time.Millisecond}},
	game.EventSpeedUp:    {{freq: 660, duration: 40 * time.Millisecond}, {freq: 990, duration: 60 * time.Millisecond}},
	game.EventServe:      {{freq: 520, duration: 30 * time.Millisecond}},
	game.EventScore:      {{freq: 330, duration: 120 * time.Millisecond}, {freq: 220, duration: 200 * time.Millisecond}},
	game.EventWinner: {
		{freq: 523, duration: 120 * time.Millisecond},
		{freq: 659, duration: 120 * time.Millisecond},
		{freq: 784, duration: 240 * time.Millisecond},
	},
}

// SoundManager owns the speaker and mixes cue sounds into it
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

// NewSoundManager creates an enabled, uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: true,
	}
}

// Initialize opens the audio device. The game runs silently if it fails.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetEnabled mutes or unmutes cues
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
}

// Enabled reports whether cues are audible
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// HandleEvent plays the cue for a gameplay event. It is safe to call before Initialize.
func (sm *SoundManager) HandleEvent(e game.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	streamer, err := cueStreamer(cues[e])
	if err != nil || streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// cueStreamer chains the notes of a cue into one streamer
func cueStreamer(notes []tone) (beep.Streamer, error) {
	if len(notes) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), sine))
	}
	return beep.Seq(parts...), nil
}
