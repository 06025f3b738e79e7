package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/zucenko/trucxanh/model"
)

// PointerSource is an input device that can press on the screen.
type PointerSource interface {
	Position() (int, int)
	IsJustPressed() bool
}

// MouseSource is a PointerSource implementation of mouse.
type MouseSource struct{}

func (m *MouseSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseSource) IsJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// TouchSource is a PointerSource implementation of touch.
type TouchSource struct {
	ID int
}

func (t *TouchSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchSource) IsJustPressed() bool {
	for _, id := range inpututil.JustPressedTouchIDs() {
		if id == t.ID {
			return true
		}
	}
	return false
}

var keys = map[ebiten.Key]model.Key{
	ebiten.KeyR:      model.KeyR,
	ebiten.KeyN:      model.KeyN,
	ebiten.KeyEnter:  model.KeyEnter,
	ebiten.KeySpace:  model.KeySpace,
	ebiten.KeyEscape: model.KeyEscape,
}

// pointers returns every source pressed since the previous frame.
func pointers() []PointerSource {
	pressed := make([]PointerSource, 0, 1)
	mouse := &MouseSource{}
	if mouse.IsJustPressed() {
		pressed = append(pressed, mouse)
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		pressed = append(pressed, &TouchSource{ID: id})
	}
	return pressed
}

func justPressedKeys() []model.Key {
	pressed := make([]model.Key, 0)
	for ek, k := range keys {
		if inpututil.IsKeyJustPressed(ek) {
			pressed = append(pressed, k)
		}
	}
	return pressed
}
