package game

// Controller drives a paddle. Controllers only call Up, Down and Stop on their
// paddle; they never move it directly.
type Controller interface {
	// Update decides the paddle's intent for this frame
	Update(deltaTime float64)
}

// BotController follows the ball's height with a dead zone to avoid jitter
type BotController struct {
	paddle   *Paddle
	ball     *Ball
	deadZone float64
}

// NewBotController creates a bot for paddle that tracks ball
func NewBotController(paddle *Paddle, ball *Ball, deadZone float64) *BotController {
	return &BotController{
		paddle:   paddle,
		ball:     ball,
		deadZone: deadZone,
	}
}

// Update steers the paddle toward the ball's height
func (c *BotController) Update(deltaTime float64) {
	diff := c.ball.Position.Y - c.paddle.Position.Y
	switch {
	case diff > c.deadZone:
		c.paddle.Up()
	case diff < -c.deadZone:
		c.paddle.Down()
	default:
		c.paddle.Stop()
	}
}
