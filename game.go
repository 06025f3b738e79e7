package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"github.com/zucenko/trucxanh/config"
	"github.com/zucenko/trucxanh/model"
)

const tps = 60

var (
	WHITE     = color.RGBA{255, 255, 255, 255}
	BLACK     = color.RGBA{0, 0, 0, 255}
	GRAY      = color.RGBA{128, 128, 128, 255}
	HIGHLIGHT = color.RGBA{200, 200, 200, 255}
)

// Host owns the game and connects it to ebiten's window, input and audio.
type Host struct {
	Game   *model.Game
	Width  int
	Height int

	font    font.Face
	panel   *Nine
	fades   []Fade
	started time.Time
	cursorX int
	cursorY int
}

func NewHost(cfg config.Config) *Host {
	layout := cfg.Layout()
	g := model.NewGame(
		model.WithLayout(layout),
		model.WithRestartKey(cfg.Key()),
		model.WithTones(newTonePlayer(cfg.Sound)),
	)
	return &Host{
		Game:    g,
		Width:   layout.Width,
		Height:  layout.Height,
		font:    loadFont(),
		panel:   newPanel(),
		fades:   make([]Fade, len(model.SupportedPairs)),
		started: time.Now(),
		cursorX: -1,
		cursorY: -1,
	}
}

func (h *Host) input() {
	x, y := ebiten.CursorPosition()
	if x != h.cursorX || y != h.cursorY {
		h.cursorX, h.cursorY = x, y
		h.Game.HandlePointerMove(x, y)
	}
	for _, p := range pointers() {
		px, py := p.Position()
		h.Game.HandlePointerDown(px, py)
	}
	for _, k := range justPressedKeys() {
		h.Game.HandleKeyDown(k)
	}
}

func (h *Host) update(screen *ebiten.Image) error {
	state := h.Game.State
	h.input()
	h.Game.Update(time.Since(h.started).Milliseconds())
	if h.Game.State != state {
		log.Debugf("state %s -> %s", state.Name(), h.Game.State.Name())
	}

	rm := h.Game.RenderModel()
	for i, m := range rm.Menu {
		if m.Hovered {
			h.fades[i].To(1)
		} else {
			h.fades[i].To(0)
		}
		h.fades[i].Update(1.0 / tps)
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	if err := screen.Fill(WHITE); err != nil {
		log.Printf("%v", err)
	}
	switch rm.State {
	case model.MENU:
		h.drawMenu(screen, rm)
	case model.PLAYING:
		h.drawPlaying(screen, rm)
	case model.GAME_OVER:
		h.drawGameOver(screen, rm)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		ebitenutil.DebugPrintAt(screen, rm.State.Name(), h.Width-100, 0)
	}
	return nil
}

func (h *Host) drawMenu(screen *ebiten.Image, rm model.RenderModel) {
	h.drawCentered(screen, rm.Title, 150)
	for i, m := range rm.Menu {
		h.panel.SetRect(m.Rect.Inset(-2))
		h.panel.Draw(screen, BLACK)
		h.panel.SetRect(m.Rect)
		h.panel.Draw(screen, mix(WHITE, HIGHLIGHT, h.fades[i].value))
		h.drawIn(screen, m.Label, m.Rect, BLACK)
	}
}

func (h *Host) drawPlaying(screen *ebiten.Image, rm model.RenderModel) {
	for _, c := range rm.Cards {
		if !c.Revealed {
			h.panel.SetRect(c.Rect)
			h.panel.Draw(screen, GRAY)
			continue
		}
		h.panel.SetRect(c.Rect)
		h.panel.Draw(screen, c.Note.Color())
		h.drawIn(screen, c.Note.Name(), c.Rect, BLACK)
	}
	text.Draw(screen, fmt.Sprintf("Score: %d", rm.Score), h.font, 10, 10+h.ascent(), BLACK)
	if rm.Message != "" {
		h.drawCentered(screen, rm.Message, h.Height-50)
	}
}

func (h *Host) drawGameOver(screen *ebiten.Image, rm model.RenderModel) {
	h.drawCentered(screen, fmt.Sprintf("Game Over! Score: %d", rm.Score), h.Height/2)
	h.drawCentered(screen, fmt.Sprintf("Press [%s] to Restart", rm.RestartKey), h.Height/2+50)
}

func (h *Host) ascent() int {
	return h.font.Metrics().Ascent.Ceil()
}

// drawCentered draws s horizontally centered with its top at y.
func (h *Host) drawCentered(screen *ebiten.Image, s string, y int) {
	w := font.MeasureString(h.font, s).Ceil()
	text.Draw(screen, s, h.font, (h.Width-w)/2, y+h.ascent(), BLACK)
}

func (h *Host) drawIn(screen *ebiten.Image, s string, r image.Rectangle, clr color.Color) {
	w := font.MeasureString(h.font, s).Ceil()
	m := h.font.Metrics()
	textHeight := (m.Ascent + m.Descent).Ceil()
	x := r.Min.X + (r.Dx()-w)/2
	y := r.Min.Y + (r.Dy()-textHeight)/2 + m.Ascent.Ceil()
	text.Draw(screen, s, h.font, x, y, clr)
}

func mix(a, b color.RGBA, t float32) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}

func main() {
	cfg := loadConfig()
	host := NewHost(cfg)
	if err := ebiten.Run(host.update, host.Width, host.Height, cfg.Window.Scale, cfg.Window.Title); err != nil {
		log.Fatal(err)
	}
}
