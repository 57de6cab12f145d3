// Command termpong plays Super Pong in a terminal.
//
// The left paddle moves with W/S or the arrow keys. The right paddle is the bot
// unless -players 2 is given, in which case it moves with I/K. Press q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"superpong/game"
	"superpong/sound"
)

const (
	tickInterval = time.Second / 60
	// Terminals report key repeats but never releases
	keyHoldTimeout = 150 * time.Millisecond
	// A character cell is roughly twice as tall as it is wide
	cellAspect = 2
)

var (
	styleTable  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCenter = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBall   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePlayer = [2]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(32, 32, 240)),
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(192, 32, 32)),
	}
	playerNames = [2]string{"Blue", "Red"}
)

// heldKeys turns key press events into a held state that expires without repeats
type heldKeys struct {
	paddle *game.Paddle
	upAt   time.Time
	downAt time.Time
	now    func() time.Time
}

func (h *heldKeys) pressUp()   { h.upAt = h.now(); h.downAt = time.Time{} }
func (h *heldKeys) pressDown() { h.downAt = h.now(); h.upAt = time.Time{} }

// Update implements game.Controller
func (h *heldKeys) Update(deltaTime float64) {
	now := h.now()
	switch {
	case now.Sub(h.upAt) < keyHoldTimeout:
		h.paddle.Up()
	case now.Sub(h.downAt) < keyHoldTimeout:
		h.paddle.Down()
	default:
		h.paddle.Stop()
	}
}

type termPong struct {
	screen   tcell.Screen
	match    *game.Game
	viewport game.Viewport
	width    int
	height   int

	left  *heldKeys
	right *heldKeys
}

func newTermPong(screen tcell.Screen, players int, rng *rand.Rand) *termPong {
	t := &termPong{
		screen: screen,
		match:  game.NewGame(game.DefaultConfig(), rng),
	}
	t.left = &heldKeys{paddle: t.match.Paddle(game.PlayerLeft), now: time.Now}

	var right game.Controller
	if players >= 2 {
		t.right = &heldKeys{paddle: t.match.Paddle(game.PlayerRight), now: time.Now}
		right = t.right
	} else {
		right = game.NewBotController(t.match.Paddle(game.PlayerRight), t.match.Ball(), t.match.Config().BotDeadZone)
	}

	t.handleResize()
	t.match.Start(t.left, right)
	return t
}

// handleResize fits the table into the terminal, measuring height in half cells
func (t *termPong) handleResize() {
	t.width, t.height = t.screen.Size()
	area := game.FitRect(1.5, image.Rect(0, 0, t.width, t.height*cellAspect))
	t.viewport = game.NewViewport(area, t.match.Table().Size(), game.Vec2{}, true)
	t.screen.Clear()
}

func (t *termPong) cell(pos game.Vec2) (int, int) {
	p := t.viewport.ToScreen(pos)
	return int(p.X), int(p.Y) / cellAspect
}

func (t *termPong) fill(center, size game.Vec2, r rune, style tcell.Style) {
	x0, y0 := t.cell(center.Add(game.Vec2{X: -size.X / 2, Y: size.Y / 2}))
	x1, y1 := t.cell(center.Add(game.Vec2{X: size.X / 2, Y: -size.Y / 2}))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (t *termPong) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *termPong) centeredText(y int, s string, style tcell.Style) {
	t.text(t.width/2-len(s)/2, y, s, style)
}

// handleInput returns false when the player quits
func (t *termPong) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.left.pressUp()
		case tcell.KeyDown:
			t.left.pressDown()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'w', 'W':
				t.left.pressUp()
			case 's', 'S':
				t.left.pressDown()
			case 'i', 'I':
				if t.right != nil {
					t.right.pressUp()
				}
			case 'k', 'K':
				if t.right != nil {
					t.right.pressDown()
				}
			}
		}
	case *tcell.EventResize:
		t.handleResize()
		t.screen.Sync()
	}
	return true
}

func (t *termPong) draw() {
	t.screen.Clear()

	table := t.match.Table()
	size := table.Size()
	wall := table.WallSize()
	wallY := size.Y/2 - wall/2
	t.fill(game.Vec2{Y: wallY}, game.Vec2{X: size.X, Y: wall}, '▀', styleTable)
	t.fill(game.Vec2{Y: -wallY}, game.Vec2{X: size.X, Y: wall}, '▄', styleTable)

	cx, top := t.cell(game.Vec2{Y: table.InnerSize().Y / 2})
	_, bottom := t.cell(game.Vec2{Y: -table.InnerSize().Y / 2})
	for y := top + 1; y < bottom; y += 2 {
		t.screen.SetContent(cx, y, '¦', nil, styleCenter)
	}

	for _, paddle := range t.match.Paddles() {
		t.fill(paddle.Position, paddle.Size(), '█', stylePlayer[paddle.Side().Player()])
	}

	if ball := t.match.Ball(); !ball.Parked() {
		x, y := t.cell(ball.Position)
		t.screen.SetContent(x, y, '●', nil, styleBall)
	}

	scores := t.match.Scoreboard().Scores()
	_, scoreY := t.cell(game.Vec2{Y: table.InnerSize().Y / 2})
	t.text(cx-6, scoreY+1, fmt.Sprint(scores[game.PlayerLeft]), stylePlayer[game.PlayerLeft])
	t.text(cx+6, scoreY+1, fmt.Sprint(scores[game.PlayerRight]), stylePlayer[game.PlayerRight])

	msg := t.match.Scoreboard().Message()
	_, midY := t.cell(game.Vec2{})
	switch msg.Kind {
	case game.MessagePrepare:
		t.centeredText(midY-2, "Get Ready!", styleText)
	case game.MessageScore:
		t.centeredText(midY-2, playerNames[msg.Player]+" point!", stylePlayer[msg.Player])
	case game.MessageWinner:
		t.centeredText(midY-2, playerNames[msg.Player]+" wins! Press q to quit", stylePlayer[msg.Player])
	}

	t.screen.Show()
}

// pumpEvents forwards polled events until poll returns nil or done is closed
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *termPong) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(t.screen.PollEvent, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			t.match.Update(tickInterval.Seconds())
			t.draw()
		}
	}
}

func main() {
	// A missing .env is normal; variables may come from the environment instead
	_ = godotenv.Load()

	var envSeed int64
	if v := os.Getenv("SUPERPONG_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("Invalid SUPERPONG_SEED=%q: %v", v, err)
		}
		envSeed = n
	}

	players := flag.Int("players", 1, "1 to play against the bot, 2 for two players on one keyboard")
	seed := flag.Int64("seed", envSeed, "random seed for serves, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	t := newTermPong(screen, *players, rand.New(rand.NewSource(*seed)))

	var soundErr error
	if !*mute {
		sm := sound.NewSoundManager()
		if soundErr = sm.Initialize(); soundErr == nil {
			t.match.SetEventHandler(sm.HandleEvent)
			defer sm.Cleanup()
		}
	}

	t.run()
	screen.Fini()

	if soundErr != nil {
		fmt.Fprintf(os.Stderr, "Sound disabled: %v\n", soundErr)
	}
}
