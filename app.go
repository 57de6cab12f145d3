package main

import (
	"image"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"superpong/game"
	"superpong/menu"
	"superpong/settings"
	"superpong/sound"
)

// AppState is the top-level mode of the application
type AppState int

const (
	StateMainMenu AppState = iota
	StatePauseMenu
	StateInGame
	StateQuit
)

// App is the windowed shell around a match: menus, fullscreen, sound and drawing.
// It implements ebiten.Game.
type App struct {
	settings *settings.Settings
	sound    *sound.SoundManager
	match    *game.Game
	state    AppState

	mainMenu  *menu.Menu
	pauseMenu *menu.Menu

	screenWidth  int
	screenHeight int
	viewport     game.Viewport
	face         *text.GoXFace

	prevAltEnter bool
	keys         []ebiten.Key

	profiler *Profiler
}

// NewApp creates the shell. sm may be nil when no audio device is available.
func NewApp(s *settings.Settings, sm *sound.SoundManager, rng *rand.Rand) *App {
	a := &App{
		settings: s,
		sound:    sm,
		match:    game.NewGame(game.DefaultConfig(), rng),
		state:    StateMainMenu,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	a.match.SetEventHandler(a.onEvent)
	a.mainMenu = menu.New(a.buildMainMenu())
	a.pauseMenu = menu.New(a.buildPauseMenu())

	s.Subscribe(settingFullscreen, func(v any) {
		if on, ok := v.(bool); ok && on != ebiten.IsFullscreen() {
			ebiten.SetFullscreen(on)
		}
	})
	s.Subscribe(settingSound, func(v any) {
		if on, ok := v.(bool); ok && a.sound != nil {
			a.sound.SetEnabled(on)
		}
	})
	return a
}

// SetProfiler enables CPU profiling of slow stretches
func (a *App) SetProfiler(p *Profiler) { a.profiler = p }

// State returns the current top-level mode
func (a *App) State() AppState { return a.state }

// NewMatch starts a match for one player against the bot or for two players
func (a *App) NewMatch(players int) {
	left := NewKeyboardController(a.match.Paddle(game.PlayerLeft), a.settings, settingP1Up, settingP1Down)

	var right game.Controller
	if players >= 2 {
		right = NewKeyboardController(a.match.Paddle(game.PlayerRight), a.settings, settingP2Up, settingP2Down)
	} else {
		right = game.NewBotController(a.match.Paddle(game.PlayerRight), a.match.Ball(), a.match.Config().BotDeadZone)
	}

	log.Printf("Starting %d player match", players)
	a.match.Start(left, right)
	a.mainMenu.Reset()
	a.pauseMenu.Reset()
	a.state = StateInGame
}

// Pause shows the pause menu over a running match
func (a *App) Pause() {
	if a.state != StateInGame {
		return
	}
	a.pauseMenu.Reset()
	a.state = StatePauseMenu
}

// Resume returns from the pause menu to the match
func (a *App) Resume() {
	if a.state == StatePauseMenu {
		a.state = StateInGame
	}
}

// EndMatch abandons the match and returns to the main menu
func (a *App) EndMatch() {
	a.match.CancelTimers()
	a.match.Ball().Reset()
	a.mainMenu.Reset()
	a.state = StateMainMenu
}

// Quit makes the next Update stop the run loop
func (a *App) Quit() {
	a.state = StateQuit
}

func (a *App) onEvent(e game.Event) {
	if a.sound != nil {
		a.sound.HandleEvent(e)
	}
}

// Update implements ebiten.Game
func (a *App) Update() error {
	a.handleInput()
	if a.profiler != nil {
		a.profiler.Tick()
	}

	switch a.state {
	case StateMainMenu:
		a.menuKeys(a.mainMenu, nil)
	case StatePauseMenu:
		a.menuKeys(a.pauseMenu, a.Resume)
	case StateInGame:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.Pause()
			break
		}
		a.match.Update(tickDelta)
	}

	if a.state == StateQuit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	a.drawTable(screen)
	a.drawPaddles(screen)
	a.drawBall(screen)
	a.drawScores(screen)

	switch a.state {
	case StateMainMenu:
		a.drawMenu(screen, a.mainMenu)
	case StatePauseMenu:
		a.drawMenu(screen, a.pauseMenu)
	default:
		a.drawMessage(screen)
	}
}

// Layout implements ebiten.Game. The table keeps its aspect ratio and is centered in the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.screenWidth || outsideHeight != a.screenHeight {
		a.screenWidth = outsideWidth
		a.screenHeight = outsideHeight
		area := game.FitRect(tableAspect, image.Rect(0, 0, outsideWidth, outsideHeight))
		a.viewport = game.NewViewport(area, a.match.Table().Size(), game.Vec2{}, true)
		if !ebiten.IsFullscreen() {
			a.settings.Set(settingResolution, []int{outsideWidth, outsideHeight})
		}
	}
	return outsideWidth, outsideHeight
}
