package menu

import "testing"

func TestMenuNavigation(t *testing.T) {
	var started int
	var fullscreen bool
	binding := "W"

	onePlayer := Action("1 Player", "Digit1", func() { started = 1 })
	twoPlayers := Action("2 Players", "Digit2", func() { started = 2 })
	newGame := Submenu("New Game", "N", onePlayer, twoPlayers)
	check := Check("Full Screen", "F", false, func(on bool) { fullscreen = on })
	bind := KeyBind("P1 Up", func() string { return binding }, func(k string) { binding = k })
	options := Submenu("Options", "O", check, bind)
	root := Submenu("Super Pong", "", newGame, options, Action("Exit", "X", nil))

	m := New(root)

	m.HandleKey(KeyDown)
	m.HandleKey(KeyDown)
	m.HandleKey(KeyDown)
	if root.Selected() != 2 {
		t.Fatalf("selected = %d, want clamped to 2", root.Selected())
	}
	m.HandleKey(KeyUp)
	m.HandleKey(KeyUp)
	m.HandleKey(KeyUp)
	if root.Selected() != 0 {
		t.Fatalf("selected = %d, want 0", root.Selected())
	}

	m.HandleKey(KeyEnter)
	if m.Current() != newGame {
		t.Fatalf("enter did not open New Game")
	}
	m.HandleKey("Digit2")
	if started != 2 {
		t.Errorf("started = %d, want 2", started)
	}

	if !m.HandleKey(KeyEscape) || m.Current() != root {
		t.Fatalf("escape did not return to root")
	}
	if m.HandleKey(KeyEscape) {
		t.Error("escape at root should not be consumed")
	}

	m.HandleKey("O")
	m.HandleKey("F")
	if !fullscreen || !check.Checked || check.Text() != "[x] Full Screen" {
		t.Errorf("check toggle: fullscreen=%v text=%q", fullscreen, check.Text())
	}

	m.HandleKey(KeyDown)
	m.HandleKey(KeyEnter)
	if !m.Capturing() {
		t.Fatal("key bind did not start capturing")
	}
	m.HandleKey("Q")
	if binding != "Q" || bind.Text() != "P1 Up: Q" {
		t.Errorf("binding = %q text = %q", binding, bind.Text())
	}

	m.HandleKey(KeyEnter)
	m.HandleKey(KeyEscape)
	if binding != "Q" || m.Capturing() {
		t.Errorf("escape during capture changed binding to %q", binding)
	}

	m.Reset()
	if m.Current() != root || root.Selected() != 0 {
		t.Errorf("reset left menu at %q selection %d", m.Current().Label, root.Selected())
	}
}

func TestRadioGroupAndDisabled(t *testing.T) {
	var picked string
	a := Radio("800x600", true, func() { picked = "a" })
	b := Radio("1024x768", false, func() { picked = "b" })
	apply := Action("Apply", "A", func() { picked = "apply" })
	apply.Disabled = true
	m := New(Submenu("Resolution", "", a, b, apply))

	m.HandleKey(KeyDown)
	m.HandleKey(KeyEnter)
	if a.Checked || !b.Checked || picked != "b" {
		t.Errorf("radio: a=%v b=%v picked=%q", a.Checked, b.Checked, picked)
	}

	m.HandleKey("A")
	if picked != "b" {
		t.Errorf("disabled action ran, picked = %q", picked)
	}
}

func TestDisabledSubmenuStaysClosed(t *testing.T) {
	var size string
	small := Radio("640x480", true, func() { size = "640x480" })
	large := Radio("1920x1080", false, func() { size = "1920x1080" })
	resolution := Submenu("Resolution", "R", small, large)
	root := Submenu("Options", "", resolution)
	m := New(root)

	resolution.Disabled = true
	m.HandleKey("R")
	if m.Current() != root {
		t.Fatalf("disabled submenu opened")
	}

	resolution.Disabled = false
	m.HandleKey("R")
	if m.Current() != resolution {
		t.Fatalf("enabled submenu did not open")
	}
	m.HandleKey(KeyDown)
	m.HandleKey(KeyEnter)
	if size != "1920x1080" || small.Checked || !large.Checked {
		t.Errorf("size = %q, checked = %v/%v", size, small.Checked, large.Checked)
	}
}
