package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"superpong/menu"
)

func (a *App) buildMainMenu() *menu.Node {
	return menu.Submenu(windowTitle, "",
		menu.Submenu("New Game", "N",
			menu.Action("1 Player", "Digit1", func() { a.NewMatch(1) }),
			menu.Action("2 Players", "Digit2", func() { a.NewMatch(2) }),
		),
		a.buildOptionsMenu(),
		menu.Action("Exit", "X", a.Quit),
	)
}

func (a *App) buildPauseMenu() *menu.Node {
	return menu.Submenu("Paused", "",
		menu.Action("Resume", "R", a.Resume),
		a.buildOptionsMenu(),
		menu.Action("End Game", "E", a.EndMatch),
		menu.Action("Exit", "X", a.Quit),
	)
}

// buildOptionsMenu creates a fresh options subtree; each top-level menu owns its own copy
func (a *App) buildOptionsMenu() *menu.Node {
	fullscreen, _ := a.settings.Bool(settingFullscreen)
	soundOn, _ := a.settings.Bool(settingSound)

	fullscreenNode := menu.Check("Full Screen", "F", fullscreen, func(on bool) {
		a.settings.Set(settingFullscreen, on)
		a.saveSettings()
	})
	a.settings.Subscribe(settingFullscreen, func(v any) {
		if on, ok := v.(bool); ok {
			fullscreenNode.Checked = on
		}
	})

	resolutionNode := a.buildResolutionMenu()
	a.settings.Subscribe(settingFullscreen, func(v any) {
		if on, ok := v.(bool); ok {
			resolutionNode.Disabled = on
		}
	})

	soundNode := menu.Check("Sound", "S", soundOn, func(on bool) {
		a.settings.Set(settingSound, on)
		a.saveSettings()
	})
	soundNode.Disabled = a.sound == nil

	return menu.Submenu("Options", "O",
		fullscreenNode,
		resolutionNode,
		soundNode,
		menu.Submenu("Key Bindings", "K",
			a.keyBindNode("Player 1 Up", settingP1Up),
			a.keyBindNode("Player 1 Down", settingP1Down),
			a.keyBindNode("Player 2 Up", settingP2Up),
			a.keyBindNode("Player 2 Down", settingP2Down),
		),
	)
}

// buildResolutionMenu lists the window sizes as a radio group. Ebiten sizes a
// fullscreen window to the monitor, so the group is disabled in fullscreen.
func (a *App) buildResolutionMenu() *menu.Node {
	resolution := menu.Submenu("Resolution", "R")
	radios := make([]*menu.Node, len(windowSizes))
	for i, size := range windowSizes {
		width, height := size[0], size[1]
		radios[i] = menu.Radio(fmt.Sprintf("%dx%d", width, height), false, func() {
			a.settings.Set(settingResolution, []int{width, height})
			ebiten.SetWindowSize(width, height)
			a.saveSettings()
		})
	}
	resolution.Add(radios...)

	a.settings.Subscribe(settingResolution, func(any) {
		current, err := a.settings.Ints(settingResolution)
		for i, size := range windowSizes {
			radios[i].Checked = err == nil && len(current) == 2 && current[0] == size[0] && current[1] == size[1]
		}
	})
	return resolution
}

func (a *App) keyBindNode(label, setting string) *menu.Node {
	return menu.KeyBind(label,
		func() string {
			name, _ := a.settings.String(setting)
			return name
		},
		func(name string) { a.bindKey(setting, name) },
	)
}

// drawMenu shades the table and lists the open menu level centered on screen
func (a *App) drawMenu(screen *ebiten.Image, m *menu.Menu) {
	vector.DrawFilledRect(screen, 0, 0, float32(a.screenWidth), float32(a.screenHeight), colorMenuShade, false)

	node := m.Current()
	entries := node.Children()
	centerX := float64(a.screenWidth) / 2
	y := float64(a.screenHeight)/2 - (float64(len(entries))*menuLineHeight+menuTitleGap)/2

	a.drawCenteredText(screen, node.Label, centerX, y, colorMenuTitle)
	y += menuTitleGap

	for i, entry := range entries {
		clr := colorMenuText
		label := entry.Text()
		if i == node.Selected() {
			clr = colorMenuActive
			label = "> " + label + " <"
			if m.Capturing() {
				clr = colorMenuPending
				label = "> " + entry.Label + ": press a key <"
			}
		}
		if entry.Disabled {
			clr.A = 100
		}
		a.drawCenteredText(screen, label, centerX, y, clr)
		y += menuLineHeight
	}
}

func (a *App) drawCenteredText(screen *ebiten.Image, s string, x, y float64, clr color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, a.face, op)
}
