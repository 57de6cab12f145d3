package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ticksPerSecond = 60
	tickDelta      = 1.0 / ticksPerSecond

	tableAspect = 1.5

	defaultSettingsPath = "settings.config"
	windowTitle         = "Super Pong"
)

// Layout of the dashed center line, in table units
const (
	centerLineWidth  = 0.01
	centerLineDash   = 0.04
	centerLineGap    = 0.03
	scoreOffsetX     = 0.15
	scoreOffsetY     = 0.38
	messageFadeDelay = 2.0 // seconds a score banner stays fully opaque
	messageFadeTime  = 1.0
)

// Menu layout in screen pixels
const (
	menuLineHeight = 22.0
	menuTitleGap   = 34.0
)

// Color constants
var (
	colorBackground  = color.NRGBA{R: 8, G: 8, B: 16, A: 255}
	colorTableFloor  = color.NRGBA{R: 16, G: 56, B: 24, A: 255}
	colorWall        = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	colorCenterLine  = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
	colorBall        = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	colorScore       = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	colorMessage     = color.NRGBA{R: 255, G: 230, B: 120, A: 255}
	colorMenuShade   = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	colorMenuText    = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colorMenuActive  = color.NRGBA{R: 255, G: 210, B: 80, A: 255}
	colorMenuTitle   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorMenuPending = color.NRGBA{R: 120, G: 200, B: 255, A: 255}

	// Indexed by game.Player
	colorPlayers = [2]color.NRGBA{
		{R: 32, G: 32, B: 240, A: 255},
		{R: 192, G: 32, B: 32, A: 255},
	}
	playerNames = [2]string{"Blue", "Red"}
)

// Window sizes offered by the resolution menu
var windowSizes = [][2]int{
	{640, 480},
	{800, 600},
	{1024, 768},
	{1280, 720},
	{1280, 960},
	{1600, 900},
	{1920, 1080},
}

// Settings keys and their defaults
const (
	settingP1Up       = "p1up"
	settingP1Down     = "p1down"
	settingP2Up       = "p2up"
	settingP2Down     = "p2down"
	settingResolution = "resolution"
	settingFullscreen = "fullscreen"
	settingSound      = "sound"
)

var defaultSettings = map[string]any{
	settingP1Up:       ebiten.KeyW.String(),
	settingP1Down:     ebiten.KeyS.String(),
	settingP2Up:       ebiten.KeyArrowUp.String(),
	settingP2Down:     ebiten.KeyArrowDown.String(),
	settingResolution: []int{800, 600},
	settingFullscreen: false,
	settingSound:      true,
}
