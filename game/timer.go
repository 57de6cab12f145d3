package game

// Timer is a polled one-shot countdown. Its action runs exactly once, on the
// tick that brings the remaining time to zero or below.
type Timer struct {
	remaining float64
	action    func()
	fired     bool
	cancelled bool
}

// NewTimer creates a timer that runs action after seconds of ticks
func NewTimer(seconds float64, action func()) *Timer {
	return &Timer{
		remaining: seconds,
		action:    action,
	}
}

// Tick advances the countdown and fires the action when it elapses
func (t *Timer) Tick(elapsed float64) {
	if t.Done() {
		return
	}
	t.remaining -= elapsed
	if t.remaining <= 0 {
		t.fired = true
		if t.action != nil {
			t.action()
		}
	}
}

// Remaining returns the seconds left before the timer fires
func (t *Timer) Remaining() float64 { return t.remaining }

// Cancel stops the timer from ever firing
func (t *Timer) Cancel() { t.cancelled = true }

// Done reports whether the timer fired or was cancelled and can be discarded
func (t *Timer) Done() bool {
	return t.fired || t.cancelled
}
