package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"superpong/game"
	"superpong/menu"
	"superpong/settings"
)

// KeyboardController drives a paddle from two configurable keys.
// Bindings are read from settings every tick so menu rebinds apply immediately.
type KeyboardController struct {
	paddle   *game.Paddle
	settings *settings.Settings
	upKey    string
	downKey  string
}

// NewKeyboardController binds a paddle to the settings keys upKey and downKey
func NewKeyboardController(paddle *game.Paddle, s *settings.Settings, upKey, downKey string) *KeyboardController {
	return &KeyboardController{
		paddle:   paddle,
		settings: s,
		upKey:    upKey,
		downKey:  downKey,
	}
}

// Update implements game.Controller
func (c *KeyboardController) Update(deltaTime float64) {
	up := c.pressed(c.upKey)
	down := c.pressed(c.downKey)

	switch {
	case up && !down:
		c.paddle.Up()
	case down && !up:
		c.paddle.Down()
	default:
		c.paddle.Stop()
	}
}

func (c *KeyboardController) pressed(setting string) bool {
	key, ok := bindingKey(c.settings, setting)
	return ok && ebiten.IsKeyPressed(key)
}

// bindingKey resolves a key-name setting to an ebiten key
func bindingKey(s *settings.Settings, setting string) (ebiten.Key, bool) {
	name, err := s.String(setting)
	if err != nil {
		return 0, false
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return key, true
}

// handleInput processes keys that apply in every state: Alt+Enter toggles fullscreen
func (a *App) handleInput() {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	enterPressed := ebiten.IsKeyPressed(ebiten.KeyEnter)
	altEnterPressed := altPressed && enterPressed

	if altEnterPressed && !a.prevAltEnter {
		a.settings.Set(settingFullscreen, !ebiten.IsFullscreen())
		a.saveSettings()
	}
	a.prevAltEnter = altEnterPressed
}

// menuKeys feeds this tick's key presses to a menu. Enter is held back while
// Alt is down so the fullscreen shortcut does not also activate an entry.
// Escape at the top level of the menu calls back.
func (a *App) menuKeys(m *menu.Menu, back func()) {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, key := range a.keys {
		if key == ebiten.KeyEnter && a.prevAltEnter {
			continue
		}
		if !m.HandleKey(key.String()) && key == ebiten.KeyEscape && back != nil {
			back()
		}
		if a.state != StateMainMenu && a.state != StatePauseMenu {
			break
		}
	}
}

// bindKey stores a captured key name, ignoring names ebiten cannot parse back
func (a *App) bindKey(setting, name string) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		log.Printf("Ignoring key %q for %s: %v", name, setting, err)
		return
	}
	a.settings.Set(setting, name)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("Failed to save settings to %s: %v", a.settings.Path(), err)
	}
}
