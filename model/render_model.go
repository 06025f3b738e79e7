package model

import "image"

type CardView struct {
	Rect     image.Rectangle
	Revealed bool
	// NoteHidden unless Revealed
	Note    Note
	Matched bool
}

type MenuView struct {
	Label   string
	Pairs   int
	Rect    image.Rectangle
	Hovered bool
}

// RenderModel is everything a presentation layer needs to draw one frame.
type RenderModel struct {
	State      GameState
	Title      string
	Menu       []MenuView
	Rows, Cols int
	Cards      []CardView
	Score      int
	Message    string
	RestartKey string
}

func (g *Game) RenderModel() RenderModel {
	rm := RenderModel{
		State:      g.State,
		Title:      Title,
		Menu:       make([]MenuView, 0, len(g.menu)),
		Score:      g.score,
		Message:    g.message,
		RestartKey: g.restartKey.Name(),
	}
	for i, o := range g.menu {
		rm.Menu = append(rm.Menu, MenuView{
			Label:   o.Label,
			Pairs:   o.Pairs,
			Rect:    o.Rect,
			Hovered: g.hover[i],
		})
	}
	if g.grid != nil {
		rm.Rows, rm.Cols = g.grid.Rows, g.grid.Cols
		rm.Cards = make([]CardView, 0, len(g.grid.Cards))
		for _, c := range g.grid.Cards {
			v := CardView{Rect: c.Rect, Revealed: c.Revealed(), Note: NoteHidden, Matched: c.Matched}
			if v.Revealed {
				v.Note = c.Note
			}
			rm.Cards = append(rm.Cards, v)
		}
	}
	return rm
}
