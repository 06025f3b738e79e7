package model

import (
	"fmt"
	"image"
)

const (
	GridRows = 5

	UnflipDelayMillis    = 1000
	MessageDisplayMillis = 1000

	MessageMatch   = "Match!"
	MessageNoMatch = "No Match!"

	Title = "Trúc Xanh Music"
)

// SupportedPairs are the pair counts offered by the menu, in menu order.
var SupportedPairs = []int{25, 15}

type GameState int

const (
	MENU GameState = iota + 1
	PLAYING
	GAME_OVER
)

func (s GameState) Name() string {
	switch s {
	case MENU:
		return "MENU"
	case PLAYING:
		return "PLAYING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Card is one slot of the grid. Only the match engine mutates the flags.
type Card struct {
	Note    Note
	Rect    image.Rectangle
	Flipped bool
	Matched bool
}

func (c *Card) Selectable() bool {
	return !c.Flipped && !c.Matched
}

func (c *Card) Revealed() bool {
	return c.Flipped || c.Matched
}

type Grid struct {
	Pairs      int
	Rows, Cols int
	Cards      []*Card
}

func (g *Grid) CardAt(p image.Point) *Card {
	for _, c := range g.Cards {
		if p.In(c.Rect) {
			return c
		}
	}
	return nil
}

func (g *Grid) AllMatched() bool {
	for _, c := range g.Cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// Layout holds the presentation constants that decide slot positions for hit testing.
type Layout struct {
	Width, Height         int
	CardWidth, CardHeight int
	Margin                int
}

func DefaultLayout() Layout {
	return Layout{
		Width:      800,
		Height:     600,
		CardWidth:  60,
		CardHeight: 60,
		Margin:     10,
	}
}

// origin returns the top left corner of a grid centered in the window.
func (l Layout) origin(rows, cols int) image.Point {
	gridWidth := cols*(l.CardWidth+l.Margin) - l.Margin
	gridHeight := rows*(l.CardHeight+l.Margin) - l.Margin
	return image.Pt((l.Width-gridWidth)/2, (l.Height-gridHeight)/2)
}

func (l Layout) slot(origin image.Point, row, col int) image.Rectangle {
	x := origin.X + col*(l.CardWidth+l.Margin)
	y := origin.Y + row*(l.CardHeight+l.Margin)
	return image.Rect(x, y, x+l.CardWidth, y+l.CardHeight)
}

type MenuOption struct {
	Label string
	Pairs int
	Rect  image.Rectangle
}

func (l Layout) MenuOptions() []MenuOption {
	options := make([]MenuOption, 0, len(SupportedPairs))
	for i, pairs := range SupportedPairs {
		x := l.Width/2 - 100
		y := 300 + i*60
		options = append(options, MenuOption{
			Label: fmt.Sprintf("Start %d Pairs", pairs),
			Pairs: pairs,
			Rect:  image.Rect(x, y, x+200, y+50),
		})
	}
	return options
}
