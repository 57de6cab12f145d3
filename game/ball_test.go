package game

import (
	"math"
	"math/rand"
	"testing"
)

const frame = 1.0 / 60

type scoreRecorder struct {
	scored []Player
}

func (r *scoreRecorder) OnScore(player Player) {
	r.scored = append(r.scored, player)
}

// newTestBall builds a ball on the default table with the right paddle as its only obstacle
func newTestBall(t *testing.T) (*Ball, *Paddle, *scoreRecorder) {
	t.Helper()
	config := DefaultConfig()
	table := NewTable(config.TableSize, config.WallSize)
	paddle := NewPaddle(table, SideRight, config)
	recorder := &scoreRecorder{}
	ball := NewBall(table, []*Paddle{paddle}, recorder, config, rand.New(rand.NewSource(1)))
	return ball, paddle, recorder
}

func TestSubStepCount(t *testing.T) {
	const radius = 0.01
	tests := []struct {
		name     string
		velocity Vec2
		want     int
	}{
		{"slow diagonal", VectorFromPolar(0.85, 33), 2},
		{"unit diagonal", VectorFromPolar(1.0, 33), 2},
		{"fast diagonal", VectorFromPolar(3.7, 33), 7},
		{"very fast diagonal", VectorFromPolar(12.3, 33), 21},
		{"exact multiple x", Vec2{X: 6}, 10},
		{"exact multiple x small", Vec2{X: 3}, 5},
		{"exact multiple y", Vec2{Y: -1.2}, 2},
		{"exactly one radius", Vec2{X: 0.6}, 1},
		{"at rest", Vec2{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move := tt.velocity.Scale(frame)
			count, step := subSteps(move, radius)
			if count != tt.want {
				t.Fatalf("%d sub-steps, want %d", count, tt.want)
			}
			if count == 0 {
				return
			}
			if step.Length() > radius+epsilon {
				t.Errorf("step length %v exceeds radius", step.Length())
			}
			total := step.Scale(float64(count))
			if !nearlyEqual(total.X, move.X) || !nearlyEqual(total.Y, move.Y) {
				t.Errorf("covered %v, want %v", total, move)
			}
		})
	}
}

func TestBallFreeFlight(t *testing.T) {
	ball, _, recorder := newTestBall(t)
	ball.Position = Vec2{}
	ball.Velocity = Vec2{X: -0.6, Y: 0.3}

	ball.Update(frame)

	want := Vec2{X: -0.6 * frame, Y: 0.3 * frame}
	if !nearlyEqual(ball.Position.X, want.X) || !nearlyEqual(ball.Position.Y, want.Y) {
		t.Errorf("position = %v, want %v", ball.Position, want)
	}
	if len(recorder.scored) != 0 {
		t.Errorf("unexpected score %v", recorder.scored)
	}
}

func TestBallWallBounce(t *testing.T) {
	ball, _, _ := newTestBall(t)
	maxY := ball.table.InnerSize().Y/2 - ball.Radius()

	var events []Event
	ball.SetEventHandler(func(e Event) { events = append(events, e) })

	ball.Position = Vec2{X: 0, Y: maxY - 0.004}
	ball.Velocity = Vec2{X: 0.1, Y: 0.85}
	ball.cooldown = 0.05

	ball.Update(frame)

	if ball.Position.Y != maxY {
		t.Errorf("y = %v, want clamped to %v", ball.Position.Y, maxY)
	}
	if ball.Velocity.Y != -0.85 {
		t.Errorf("vy = %v, want -0.85", ball.Velocity.Y)
	}
	if ball.Cooldown() > 0 {
		t.Errorf("cooldown = %v, wall bounce should clear it", ball.Cooldown())
	}
	if len(events) != 1 || events[0] != EventWallBounce {
		t.Errorf("events = %v, want [wall-bounce]", events)
	}

	ball.Position = Vec2{X: 0, Y: -maxY + 0.001}
	ball.Velocity = Vec2{X: -0.2, Y: -3}
	ball.Update(frame)
	if ball.Position.Y != -maxY || ball.Velocity.Y != 3 {
		t.Errorf("bottom bounce: y = %v vy = %v", ball.Position.Y, ball.Velocity.Y)
	}
}

func TestBallScoresOncePerCrossing(t *testing.T) {
	tests := []struct {
		name     string
		start    Vec2
		velocity Vec2
		want     Player
	}{
		{"exits right", Vec2{X: 0.75}, Vec2{X: 0.85}, PlayerLeft},
		{"exits left", Vec2{X: -0.75}, Vec2{X: -0.85}, PlayerRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball, _, recorder := newTestBall(t)
			ball.Position = tt.start
			ball.Velocity = tt.velocity

			for i := 0; i < 10; i++ {
				ball.Update(frame)
			}

			if len(recorder.scored) != 1 || recorder.scored[0] != tt.want {
				t.Fatalf("scored = %v, want [%v]", recorder.scored, tt.want)
			}
			if !ball.Velocity.IsZero() {
				t.Errorf("velocity = %v, want zero after scoring", ball.Velocity)
			}
		})
	}
}

func TestBallPaddleHit(t *testing.T) {
	ball, paddle, _ := newTestBall(t)
	var events []Event
	ball.SetEventHandler(func(e Event) { events = append(events, e) })

	ball.Position = Vec2{X: 0.57}
	ball.Velocity = Vec2{X: 0.85}
	ball.Update(frame)

	if ball.Velocity.X >= 0 {
		t.Fatalf("vx = %v, want ball sent back left", ball.Velocity.X)
	}
	if !nearlyEqual(ball.Velocity.Length(), 0.85) {
		t.Errorf("speed = %v, want 0.85", ball.Velocity.Length())
	}
	edge := paddle.Position.X - paddle.HalfSize().X - ball.Radius()
	if !nearlyEqual(ball.Position.X, edge) {
		t.Errorf("x = %v, want resolved to paddle face %v", ball.Position.X, edge)
	}
	if ball.HitCount() != 1 {
		t.Errorf("hit count = %d, want 1", ball.HitCount())
	}
	if !nearlyEqual(ball.Cooldown(), 0.1-frame) {
		t.Errorf("cooldown = %v, want %v", ball.Cooldown(), 0.1-frame)
	}
	if len(events) != 1 || events[0] != EventPaddleHit {
		t.Errorf("events = %v, want [paddle-hit]", events)
	}

	// still overlapping, but inside the cooldown window
	ball.Position = Vec2{X: 0.59}
	ball.Velocity = Vec2{X: 0.85}
	ball.Update(frame)
	if ball.Velocity.X <= 0 {
		t.Errorf("vx = %v, paddle collision should be suppressed during cooldown", ball.Velocity.X)
	}
}

func TestBallTipHitDeflects(t *testing.T) {
	ball, paddle, _ := newTestBall(t)
	tip := paddle.Position.Y + paddle.HalfSize().Y

	ball.Position = Vec2{X: 0.57, Y: tip}
	ball.Velocity = Vec2{X: 0.85}
	ball.Update(frame)

	if ball.Velocity.X >= 0 || ball.Velocity.Y <= 0 {
		t.Fatalf("velocity = %v, want deflected up and back", ball.Velocity)
	}
	elevation := math.Atan2(ball.Velocity.Y, math.Abs(ball.Velocity.X)) * 180 / math.Pi
	if elevation > 86+epsilon {
		t.Errorf("elevation = %v, want at most 86", elevation)
	}
}

func TestBallTipPushStaysInsideWalls(t *testing.T) {
	ball, paddle, _ := newTestBall(t)
	paddle.Position.Y = paddle.MaxOffset()
	top := paddle.Position.Y + paddle.HalfSize().Y
	maxY := ball.table.InnerSize().Y/2 - ball.Radius()

	// just under the wall line, overlapping the paddle's top end so the push-out is vertical
	ball.Position = Vec2{X: paddle.Position.X - 0.0025, Y: top - 1.05*ball.Radius()}
	ball.Velocity = Vec2{X: 0.1}
	ball.Update(frame)

	if ball.Position.Y > maxY+epsilon {
		t.Errorf("ball y = %v after push-out, want at most %v", ball.Position.Y, maxY)
	}
	if ball.Velocity.Y <= 0 {
		t.Errorf("velocity = %v, want deflected upward", ball.Velocity)
	}
}

func TestBallSpeedup(t *testing.T) {
	ball, paddle, _ := newTestBall(t)
	var speedups int
	ball.SetEventHandler(func(e Event) {
		if e == EventSpeedUp {
			speedups++
		}
	})

	for i := 1; i <= 10; i++ {
		ball.Position = Vec2{X: 0.57}
		ball.Velocity = Vec2{X: 0.85}
		ball.cooldown = 0
		ball.Update(frame)

		if i < 10 {
			if ball.HitCount() != i {
				t.Fatalf("after %d hits count = %d", i, ball.HitCount())
			}
			if !nearlyEqual(ball.Velocity.Length(), 0.85) {
				t.Fatalf("after %d hits speed = %v, want 0.85", i, ball.Velocity.Length())
			}
		}
	}

	if ball.HitCount() != 0 {
		t.Errorf("hit count = %d, want reset to 0", ball.HitCount())
	}
	if !nearlyEqual(ball.Velocity.Length(), 1.0) {
		t.Errorf("speed = %v, want 1.0", ball.Velocity.Length())
	}
	if speedups != 1 {
		t.Errorf("speedups = %d, want 1", speedups)
	}

	// the ramp keeps the direction
	ball.Velocity = VectorFromPolar(1, 150)
	ball.hitCount = 9
	ball.hitPaddle(paddle)
	if !nearlyEqual(ball.Velocity.Angle(), 150) {
		t.Errorf("angle = %v, want 150", ball.Velocity.Angle())
	}
	if !nearlyEqual(ball.Velocity.Length(), 1.15) {
		t.Errorf("speed = %v, want 1.15", ball.Velocity.Length())
	}
}

func TestClampBounce(t *testing.T) {
	ball, right, _ := newTestBall(t)
	left := NewPaddle(ball.table, SideLeft, DefaultConfig())

	tests := []struct {
		name   string
		v      Vec2
		paddle *Paddle
		angle  float64
	}{
		{"shallow unchanged", VectorFromPolar(1, 30), right, 30},
		{"steep right clamped", VectorFromPolar(1, 89), right, 86},
		{"steep left clamped", VectorFromPolar(2, 93), right, 94},
		{"steep down clamped", VectorFromPolar(1, -88), left, -86},
		{"vertical off right paddle goes left", Vec2{0, 1}, right, 94},
		{"vertical off left paddle goes right", Vec2{0, -1}, left, -86},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ball.clampBounce(tt.v, tt.paddle)
			if !nearlyEqual(got.Angle(), tt.angle) {
				t.Errorf("angle = %v, want %v", got.Angle(), tt.angle)
			}
			if !nearlyEqual(got.Length(), tt.v.Length()) {
				t.Errorf("speed = %v, want %v", got.Length(), tt.v.Length())
			}
		})
	}
}

func TestBallServe(t *testing.T) {
	ball, _, _ := newTestBall(t)

	for i := 0; i < 1000; i++ {
		ball.Serve(-1)
		angle := math.Mod(ball.Velocity.Angle()+360, 360)
		if angle <= 100 || angle >= 260 {
			t.Fatalf("serve left angle %v outside (100, 260)", angle)
		}
		if !nearlyEqual(ball.Velocity.Length(), 0.85) {
			t.Fatalf("serve speed %v, want 0.85", ball.Velocity.Length())
		}
		if !ball.Position.IsZero() {
			t.Fatalf("serve position %v, want center", ball.Position)
		}

		ball.Serve(1)
		angle = ball.Velocity.Angle()
		if angle <= -80 || angle >= 80 {
			t.Fatalf("serve right angle %v outside (-80, 80)", angle)
		}
	}

	var left, right int
	for i := 0; i < 200; i++ {
		ball.Serve(0)
		if ball.Velocity.X < 0 {
			left++
		} else {
			right++
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("random serves went left %d and right %d times", left, right)
	}
}

func TestBallServeRejectsBadDirection(t *testing.T) {
	ball, _, _ := newTestBall(t)
	defer func() {
		if recover() == nil {
			t.Error("Serve(2) did not panic")
		}
	}()
	ball.Serve(2)
}

func TestBallResetParks(t *testing.T) {
	ball, _, recorder := newTestBall(t)
	ball.Serve(1)
	ball.hitCount = 4
	ball.Reset()

	if !ball.Parked() {
		t.Fatalf("ball at %v with velocity %v is not parked", ball.Position, ball.Velocity)
	}
	if ball.HitCount() != 0 {
		t.Errorf("hit count = %d, want 0", ball.HitCount())
	}
	for i := 0; i < 60; i++ {
		ball.Update(frame)
	}
	if len(recorder.scored) != 0 {
		t.Errorf("parked ball scored %v", recorder.scored)
	}
}
