package game

import (
	"math/rand"
)

// Game is the match controller. It owns the table, both paddles, the ball,
// the scoreboard and the pending timers, and advances them in a fixed order
// each tick.
type Game struct {
	config     Config
	table      *Table
	paddles    []*Paddle
	ball       *Ball
	scoreboard *Scoreboard

	controllers []Controller
	timers      []*Timer

	onEvent func(Event)
}

// NewGame builds a match from config. rng drives serve directions and angles.
func NewGame(config Config, rng *rand.Rand) *Game {
	config.Validate()

	table := NewTable(config.TableSize, config.WallSize)
	paddles := []*Paddle{
		NewPaddle(table, SideLeft, config),
		NewPaddle(table, SideRight, config),
	}

	g := &Game{
		config:     config,
		table:      table,
		paddles:    paddles,
		scoreboard: NewScoreboard(config.ScoreLimit),
	}
	g.ball = NewBall(table, paddles, g, config, rng)
	return g
}

// Config returns the match configuration
func (g *Game) Config() Config { return g.config }

// Table returns the table
func (g *Game) Table() *Table { return g.table }

// Paddle returns the paddle of the given player
func (g *Game) Paddle(player Player) *Paddle { return g.paddles[player] }

// Paddles returns both paddles, left first
func (g *Game) Paddles() []*Paddle { return g.paddles }

// Ball returns the ball
func (g *Game) Ball() *Ball { return g.ball }

// Scoreboard returns the scoreboard
func (g *Game) Scoreboard() *Scoreboard { return g.scoreboard }

// PendingTimers returns the number of timers that have not fired yet
func (g *Game) PendingTimers() int { return len(g.timers) }

// SetEventHandler registers a callback for gameplay cues
func (g *Game) SetEventHandler(fn func(Event)) {
	g.onEvent = fn
	g.ball.SetEventHandler(fn)
}

// Start begins a new match with the given paddle controllers. The first serve,
// in a random direction, follows after the serve delay.
func (g *Game) Start(controllers ...Controller) {
	for _, paddle := range g.paddles {
		paddle.Reset()
	}
	g.ball.Reset()
	g.scoreboard.Reset()

	g.controllers = controllers
	g.CancelTimers()
	g.schedule(g.config.ServeDelay, func() { g.serve(0) })
}

// CancelTimers drops all pending timers without firing them
func (g *Game) CancelTimers() {
	for _, t := range g.timers {
		t.Cancel()
	}
	g.timers = nil
}

// Update advances the match by deltaTime seconds: timers, controllers,
// paddles and ball, then scoreboard bookkeeping.
func (g *Game) Update(deltaTime float64) {
	timers := g.timers
	g.timers = nil
	for _, t := range timers {
		t.Tick(deltaTime)
		if !t.Done() {
			g.timers = append(g.timers, t)
		}
	}

	for _, c := range g.controllers {
		c.Update(deltaTime)
	}

	for _, paddle := range g.paddles {
		paddle.Update(deltaTime)
	}
	g.ball.Update(deltaTime)

	g.scoreboard.Update(deltaTime)
}

// OnScore records a point and, unless the match is over, schedules the next serve
func (g *Game) OnScore(player Player) {
	if !g.scoreboard.Score(player) {
		return
	}

	if _, won := g.scoreboard.Winner(); won {
		g.emit(EventWinner)
		return
	}
	g.emit(EventScore)

	direction := serveDirection(player)
	g.schedule(g.config.ServeDelay, func() { g.serve(direction) })
}

// serveDirection sends the ball toward the player who conceded the point
func serveDirection(scorer Player) int {
	if scorer == PlayerLeft {
		return 1
	}
	return -1
}

func (g *Game) serve(direction int) {
	g.scoreboard.HideMessages()
	g.ball.Serve(direction)
}

func (g *Game) schedule(seconds float64, action func()) *Timer {
	t := NewTimer(seconds, action)
	g.timers = append(g.timers, t)
	return t
}

func (g *Game) emit(e Event) {
	if g.onEvent != nil {
		g.onEvent(e)
	}
}
