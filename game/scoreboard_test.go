package game

import "testing"

func TestScoreboardScoring(t *testing.T) {
	s := NewScoreboard(9)
	s.Reset()
	if s.Message().Kind != MessagePrepare {
		t.Fatalf("message after reset = %v, want prepare", s.Message().Kind)
	}

	s.Score(PlayerRight)
	if got := s.Scores(); got != [2]int{0, 1} {
		t.Errorf("scores = %v, want [0 1]", got)
	}
	if m := s.Message(); m.Kind != MessageScore || m.Player != PlayerRight {
		t.Errorf("message = %+v, want score for right", m)
	}

	s.Update(0.5)
	if s.Message().Age != 0.5 {
		t.Errorf("message age = %v, want 0.5", s.Message().Age)
	}

	s.HideMessages()
	if s.Message().Kind != MessageNone {
		t.Errorf("message after hide = %v, want none", s.Message().Kind)
	}
}

func TestScoreboardWinnerFreezesScore(t *testing.T) {
	s := NewScoreboard(9)
	s.Reset()
	for i := 0; i < 8; i++ {
		s.Score(PlayerLeft)
	}
	if _, won := s.Winner(); won {
		t.Fatal("winner declared at 8 points")
	}

	if !s.Score(PlayerLeft) {
		t.Fatal("ninth point was rejected")
	}
	if got := s.Scores(); got != [2]int{9, 0} {
		t.Errorf("scores = %v, want [9 0]", got)
	}
	winner, won := s.Winner()
	if !won || winner != PlayerLeft {
		t.Errorf("winner = %v, %v, want left", winner, won)
	}
	if m := s.Message(); m.Kind != MessageWinner || m.Player != PlayerLeft {
		t.Errorf("message = %+v, want winner for left", m)
	}

	if s.Score(PlayerRight) {
		t.Error("point accepted after the match was decided")
	}
	if got := s.Scores(); got != [2]int{9, 0} {
		t.Errorf("scores after decided = %v, want [9 0]", got)
	}

	s.Reset()
	if _, won := s.Winner(); won || s.Scores() != [2]int{} {
		t.Errorf("reset left scores %v, winner %v", s.Scores(), won)
	}
}

func TestTimerFiresOnce(t *testing.T) {
	fired := 0
	timer := NewTimer(0.05, func() { fired++ })

	timer.Tick(0.03)
	if fired != 0 || timer.Done() {
		t.Fatalf("fired early: count %d done %v", fired, timer.Done())
	}
	timer.Tick(0.03)
	timer.Tick(0.03)
	if fired != 1 || !timer.Done() {
		t.Errorf("fired %d times, done %v; want once", fired, timer.Done())
	}
}

func TestTimerCancel(t *testing.T) {
	fired := false
	timer := NewTimer(0.01, func() { fired = true })
	timer.Cancel()
	timer.Tick(1)
	if fired {
		t.Error("cancelled timer fired")
	}
	if !timer.Done() {
		t.Error("cancelled timer not done")
	}
}
