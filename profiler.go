package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame rate watchdog settings
const (
	profileMinTPS          = 50.0
	profileWarmupTicks     = 3 * ticksPerSecond
	profileCaptureTime     = 5 * time.Second
	profileCaptureCooldown = 30 * time.Second
)

// Profiler records a CPU profile when the tick rate falls below profileMinTPS
type Profiler struct {
	mu          sync.Mutex
	dir         string
	capturing   bool
	lastCapture time.Time
	ticks       int
}

// NewProfiler writes profiles into dir, creating it if needed
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}
	return &Profiler{dir: dir}, nil
}

// Tick is called once per update and starts a capture when the game runs slow
func (p *Profiler) Tick() {
	p.ticks++
	if p.ticks < profileWarmupTicks {
		return
	}
	if tps := ebiten.ActualTPS(); tps < profileMinTPS {
		if err := p.Capture(fmt.Sprintf("tps%.0f", tps)); err == nil {
			log.Printf("Tick rate dropped to %.1f, capturing CPU profile", tps)
		}
	}
}

// Capture profiles the next profileCaptureTime in the background
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.capturing {
		return fmt.Errorf("already profiling")
	}
	if since := time.Since(p.lastCapture); since < profileCaptureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}

	path := filepath.Join(p.dir, fmt.Sprintf("slow-%s-%s.cpu.prof", time.Now().Format("20060102-150405"), reason))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}

	p.capturing = true
	p.lastCapture = time.Now()

	go func() {
		time.Sleep(profileCaptureTime)
		pprof.StopCPUProfile()
		file.Close()
		log.Printf("CPU profile saved to %s (view with go tool pprof -http=:8080 %s)", path, path)

		p.mu.Lock()
		p.capturing = false
		p.mu.Unlock()
	}()
	return nil
}
