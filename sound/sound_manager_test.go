package sound

import (
	"testing"

	"superpong/game"
)

// TestSoundManagerGracefulDegradation verifies cues are ignored before the device is open
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	for e := range cues {
		sm.HandleEvent(e)
	}
	sm.SetEnabled(false)
	sm.HandleEvent(game.EventPaddleHit)
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies the device can be opened twice and released
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Logf("sound initialization failed (expected without an audio device): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("second initialization should be a no-op, got %v", err)
	}
	sm.HandleEvent(game.EventWallBounce)
	sm.Cleanup()
}

func TestEveryEventHasACue(t *testing.T) {
	events := []game.Event{
		game.EventWallBounce,
		game.EventPaddleHit,
		game.EventSpeedUp,
		game.EventServe,
		game.EventScore,
		game.EventWinner,
	}
	for _, e := range events {
		notes, ok := cues[e]
		if !ok || len(notes) == 0 {
			t.Errorf("no cue for %v", e)
		}
	}
}

func TestCueStreamerLength(t *testing.T) {
	streamer, err := cueStreamer(cues[game.EventWinner])
	if err != nil {
		t.Fatalf("cueStreamer: %v", err)
	}

	want := 0
	for _, n := range cues[game.EventWinner] {
		want += sampleRate.N(n.duration)
	}

	got := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		got += n
		if !ok {
			break
		}
	}
	if got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}

}
