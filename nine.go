package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine slice panel: corners keep their size, edges and center stretch.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	Scale               float64
	positions           [4][2]int
	x, y, width, height int
	scaleCenterWidth    float64
	scaleCenterHeight   float64
	targetPositions     [4][2]float64
}

func (n *Nine) SetRect(r image.Rectangle) {
	n.x = r.Min.X
	n.y = r.Min.Y
	n.SetSize(r.Dx(), r.Dy())
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHigh := n.targetPositions[2][1] - n.targetPositions[1][1]

	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHigh / float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) Draw(screen *ebiten.Image, clr color.Color) {
	r, g, b, _ := clr.RGBA()
	cr, cg, cb := float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff

	// column and row of the source slice, with the scale and target used for it
	scales := [3][2]float64{}
	scales[0] = [2]float64{n.Scale, n.Scale}
	scales[1] = [2]float64{n.scaleCenterWidth, n.scaleCenterHeight}
	scales[2] = [2]float64{n.Scale, n.Scale}
	targets := [3][2]float64{
		{n.targetPositions[0][0], n.targetPositions[0][1]},
		{n.targetPositions[1][0], n.targetPositions[1][1]},
		{n.targetPositions[2][0], n.targetPositions[2][1]},
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scales[col][0], scales[row][1])
			op.GeoM.Translate(targets[col][0], targets[row][1])
			op.ColorM.Scale(cr, cg, cb, n.alpha)
			src := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
