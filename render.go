package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"superpong/game"
)

// fillGameRect fills a rectangle given by its center and size in table units
func (a *App) fillGameRect(screen *ebiten.Image, center, size game.Vec2, clr color.Color) {
	topLeft := a.viewport.ToScreen(center.Add(game.Vec2{X: -size.X / 2, Y: size.Y / 2}))
	s := a.viewport.ToScreenSize(size)
	vector.DrawFilledRect(screen, float32(topLeft.X), float32(topLeft.Y), float32(s.X), float32(s.Y), clr, false)
}

func (a *App) drawTable(screen *ebiten.Image) {
	table := a.match.Table()
	size := table.Size()
	wall := table.WallSize()

	a.fillGameRect(screen, game.Vec2{}, size, colorTableFloor)

	wallY := size.Y/2 - wall/2
	a.fillGameRect(screen, game.Vec2{Y: wallY}, game.Vec2{X: size.X, Y: wall}, colorWall)
	a.fillGameRect(screen, game.Vec2{Y: -wallY}, game.Vec2{X: size.X, Y: wall}, colorWall)

	// Dashed center line
	top := table.InnerSize().Y / 2
	for y := top; y > -top; y -= centerLineDash + centerLineGap {
		dash := min(centerLineDash, y+top)
		a.fillGameRect(screen, game.Vec2{Y: y - dash/2}, game.Vec2{X: centerLineWidth, Y: dash}, colorCenterLine)
	}
}

func (a *App) drawPaddles(screen *ebiten.Image) {
	for _, paddle := range a.match.Paddles() {
		a.fillGameRect(screen, paddle.Position, paddle.Size(), colorPlayers[paddle.Side().Player()])
	}
}

func (a *App) drawBall(screen *ebiten.Image) {
	ball := a.match.Ball()
	if ball.Parked() {
		return
	}
	center := a.viewport.ToScreen(ball.Position)
	radius := a.viewport.ToScreenSize(game.Vec2{X: ball.Radius()}).X
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(radius), colorBall, true)
}

func (a *App) drawScores(screen *ebiten.Image) {
	scores := a.match.Scoreboard().Scores()
	for _, player := range []game.Player{game.PlayerLeft, game.PlayerRight} {
		pos := game.Vec2{X: float64(player.Side()) * scoreOffsetX, Y: scoreOffsetY}
		p := a.viewport.ToScreen(pos)
		a.drawCenteredText(screen, fmt.Sprint(scores[player]), p.X, p.Y, colorScore)
	}
}

// drawMessage shows the scoreboard banner. Point banners fade out, the others stay.
func (a *App) drawMessage(screen *ebiten.Image) {
	msg := a.match.Scoreboard().Message()

	var label string
	clr := colorMessage
	switch msg.Kind {
	case game.MessageNone:
		return
	case game.MessagePrepare:
		label = "Get Ready!"
	case game.MessageScore:
		label = playerNames[msg.Player] + " point!"
		clr = colorPlayers[msg.Player]
		if fade := (msg.Age - messageFadeDelay) / messageFadeTime; fade > 0 {
			if fade >= 1 {
				return
			}
			clr.A = uint8(float64(clr.A) * (1 - fade))
		}
	case game.MessageWinner:
		label = playerNames[msg.Player] + " wins!"
		clr = colorPlayers[msg.Player]
	}

	center := a.viewport.ToScreen(game.Vec2{})
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, label, a.face, op)
}
