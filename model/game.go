package model

import (
	"image"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

// Game is the menu/playing/game over state machine. It is driven by a single
// host loop and is not safe for concurrent use.
type Game struct {
	State GameState

	layout     Layout
	menu       []MenuOption
	hover      []bool
	restartKey Key
	rnd        *rand.Rand
	tones      ToneSink

	grid         *Grid
	engine       *MatchEngine
	score        int
	message      string
	messageTimer Countdown

	// time of the last Update, used to stamp timers started by input
	now int64
}

type Option func(g *Game)

func WithRand(rnd *rand.Rand) Option {
	return func(g *Game) {
		g.rnd = rnd
	}
}

func WithTones(tones ToneSink) Option {
	return func(g *Game) {
		g.tones = tones
	}
}

func WithLayout(layout Layout) Option {
	return func(g *Game) {
		g.layout = layout
	}
}

func WithRestartKey(k Key) Option {
	return func(g *Game) {
		g.restartKey = k
	}
}

func NewGame(opts ...Option) *Game {
	g := &Game{
		State:        MENU,
		layout:       DefaultLayout(),
		restartKey:   KeyR,
		messageTimer: NewCountdown(MessageDisplayMillis),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.tones == nil {
		g.tones = silentTones{}
	}
	g.menu = g.layout.MenuOptions()
	g.hover = make([]bool, len(g.menu))
	g.engine = NewMatchEngine(g.tones)
	return g
}

// Start deals a fresh grid and enters PLAYING. An unsupported pair count is
// rejected before anything changes.
func (g *Game) Start(pairs int) error {
	grid, err := SetupGrid(pairs, g.rnd, g.layout)
	if err != nil {
		return err
	}
	g.grid = grid
	g.engine.Reset()
	g.score = 0
	g.clearMessage()
	g.State = PLAYING
	log.Infof("Game.Start pairs:%d grid:%dx%d", pairs, grid.Rows, grid.Cols)
	return nil
}

// Restart drops the running game and goes back to the menu.
func (g *Game) Restart() {
	g.grid = nil
	g.engine.Reset()
	g.score = 0
	g.clearMessage()
	g.State = MENU
	log.Info("Game.Restart")
}

func (g *Game) HandlePointerDown(x, y int) {
	p := image.Pt(x, y)
	switch g.State {
	case MENU:
		for _, o := range g.menu {
			if p.In(o.Rect) {
				if err := g.Start(o.Pairs); err != nil {
					log.Errorf("Game.HandlePointerDown start: %v", err)
				}
				return
			}
		}
	case PLAYING:
		g.flip(g.grid.CardAt(p))
	}
}

func (g *Game) HandlePointerMove(x, y int) {
	if g.State != MENU {
		return
	}
	p := image.Pt(x, y)
	for i, o := range g.menu {
		g.hover[i] = p.In(o.Rect)
	}
}

func (g *Game) HandleKeyDown(k Key) {
	if g.State == GAME_OVER && k == g.restartKey {
		g.Restart()
	}
}

func (g *Game) Update(now int64) {
	g.now = now
	if g.State != PLAYING {
		return
	}
	g.engine.Tick(now)
	if g.message != "" && g.messageTimer.Expired(now) {
		g.clearMessage()
	}
}

func (g *Game) flip(c *Card) {
	switch g.engine.Flip(c, g.now) {
	case FLIP_MATCH:
		g.score++
		g.showMessage(MessageMatch)
		if g.grid.AllMatched() {
			g.State = GAME_OVER
			log.Infof("Game over, score:%d", g.score)
		}
	case FLIP_MISMATCH:
		g.showMessage(MessageNoMatch)
	}
}

func (g *Game) showMessage(m string) {
	g.message = m
	g.messageTimer.Start(g.now)
}

func (g *Game) clearMessage() {
	g.message = ""
	g.messageTimer.Stop()
}

func (g *Game) Grid() *Grid {
	return g.grid
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Message() string {
	return g.message
}

func (g *Game) Selected() int {
	return g.engine.Selected()
}

func (g *Game) Waiting() bool {
	return g.engine.Waiting()
}

func (g *Game) RestartKey() Key {
	return g.restartKey
}
