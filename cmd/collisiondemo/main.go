// Command collisiondemo is an interactive view of the paddle collision response.
// Drag the ball with the left mouse button and its velocity with the right one.
package main

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"superpong/game"
)

const (
	screenSize   = 640
	normalLength = 0.3
)

var (
	colorBackground = color.NRGBA{R: 16, G: 16, B: 24, A: 255}
	colorPaddle     = color.NRGBA{R: 32, G: 32, B: 240, A: 255}
	colorBall       = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	colorGhost      = color.NRGBA{R: 240, G: 240, B: 240, A: 96}
	colorVelocity   = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorNormal     = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	colorReflected  = color.NRGBA{R: 255, G: 64, B: 64, A: 255}
)

type demo struct {
	config   game.Config
	viewport game.Viewport

	paddleCenter game.Vec2
	paddleHalf   game.Vec2
	ball         game.Vec2
	velocity     game.Vec2
}

func newDemo() *demo {
	config := game.DefaultConfig()
	return &demo{
		config:       config,
		paddleCenter: game.Vec2{X: -0.3},
		paddleHalf:   config.PaddleSize, // twice the regular paddle
		ball:         game.Vec2{X: -0.2, Y: 0.1},
		velocity:     game.Vec2{X: -0.3, Y: -0.1},
	}
}

func (d *demo) Update() error {
	x, y := ebiten.CursorPosition()
	mouse := d.viewport.ToGame(game.Vec2{X: float64(x), Y: float64(y)})

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		d.ball = mouse
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		d.velocity = mouse.Sub(d.ball)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (d *demo) line(screen *ebiten.Image, from, delta game.Vec2, clr color.Color) {
	a := d.viewport.ToScreen(from)
	b := d.viewport.ToScreen(from.Add(delta))
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
}

func (d *demo) circle(screen *ebiten.Image, center game.Vec2, clr color.Color) {
	p := d.viewport.ToScreen(center)
	r := d.viewport.ToScreenSize(game.Vec2{X: d.config.BallRadius}).X
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(r), clr, true)
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	topLeft := d.viewport.ToScreen(d.paddleCenter.Add(game.Vec2{X: -d.paddleHalf.X, Y: d.paddleHalf.Y}))
	size := d.viewport.ToScreenSize(d.paddleHalf.Scale(2))
	vector.DrawFilledRect(screen, float32(topLeft.X), float32(topLeft.Y), float32(size.X), float32(size.Y), colorPaddle, false)

	d.circle(screen, d.ball, colorBall)
	d.line(screen, d.ball, d.velocity, colorVelocity)

	ballHalf := game.Vec2{X: d.config.BallRadius, Y: d.config.BallRadius}
	projection, ok := game.RectOverlap(d.ball, ballHalf, d.paddleCenter, d.paddleHalf)
	if !ok {
		return
	}
	ghost := d.ball.Add(projection)
	normal := game.EllipticNormal(ghost, d.paddleCenter, d.config.CollisionCurveExponent)
	d.circle(screen, ghost, colorGhost)
	d.line(screen, ghost, normal.Scale(normalLength), colorNormal)
	d.line(screen, ghost, d.velocity.Reflect(normal), colorReflected)
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	area := game.FitRect(1, image.Rect(0, 0, outsideWidth, outsideHeight))
	d.viewport = game.NewViewport(area, game.Vec2{X: 1, Y: 1}, game.Vec2{}, true)
	return outsideWidth, outsideHeight
}

func main() {
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Super Pong collision demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newDemo()); err != nil {
		log.Fatal(err)
	}
}
