package game

// Player indexes the scoreboard
type Player int

const (
	PlayerLeft  Player = 0
	PlayerRight Player = 1
)

// Opponent returns the other player
func (p Player) Opponent() Player {
	return 1 - p
}

// Side returns the side of the table the player defends
func (p Player) Side() Side {
	if p == PlayerLeft {
		return SideLeft
	}
	return SideRight
}

func (p Player) String() string {
	if p == PlayerLeft {
		return "left"
	}
	return "right"
}

// ScoreListener is notified when the ball leaves the table past a goal line
type ScoreListener interface {
	OnScore(player Player)
}

// Event is a gameplay cue for presentation (sounds, effects). Cues never feed back into the simulation.
type Event int

const (
	EventWallBounce Event = iota
	EventPaddleHit
	EventSpeedUp
	EventServe
	EventScore
	EventWinner
)

func (e Event) String() string {
	switch e {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventSpeedUp:
		return "speed-up"
	case EventServe:
		return "serve"
	case EventScore:
		return "score"
	case EventWinner:
		return "winner"
	}
	return "unknown"
}
