package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"superpong/settings"
	"superpong/sound"
)

func main() {
	// A missing .env is normal; variables may come from the environment instead
	_ = godotenv.Load()

	settingsPath := flag.String("settings", envOr("SUPERPONG_SETTINGS", defaultSettingsPath), "path of the settings file")
	seed := flag.Int64("seed", envSeed(), "random seed for serves, 0 picks one from the clock")
	players := flag.Int("players", 0, "start a 1 or 2 player match immediately instead of showing the menu")
	profileDir := flag.String("profile", "", "directory for CPU profiles captured when the tick rate drops")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	s := settings.New(*settingsPath)
	s.SetDefaults(defaultSettings)
	if err := s.Load(); err != nil {
		log.Printf("Failed to load settings from %s: %v", *settingsPath, err)
	}

	sm := sound.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("Sound disabled: %v", err)
		sm = nil
	} else {
		defer sm.Cleanup()
	}

	app := NewApp(s, sm, rand.New(rand.NewSource(*seed)))
	if *profileDir != "" {
		if p, err := NewProfiler(*profileDir); err != nil {
			log.Printf("Profiling disabled: %v", err)
		} else {
			app.SetProfiler(p)
		}
	}
	if *players > 0 {
		app.NewMatch(*players)
	}

	if res, err := s.Ints(settingResolution); err == nil && len(res) == 2 {
		ebiten.SetWindowSize(res[0], res[1])
	}
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond)

	err := ebiten.RunGame(app)
	if saveErr := s.Save(); saveErr != nil {
		log.Printf("Failed to save settings to %s: %v", s.Path(), saveErr)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envSeed() int64 {
	v := os.Getenv("SUPERPONG_SEED")
	if v == "" {
		return 0
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Ignoring SUPERPONG_SEED=%q: %v", v, err)
		return 0
	}
	return seed
}
