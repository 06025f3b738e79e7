package model

import (
	"errors"
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupGridSizes(t *testing.T) {
	for _, tc := range []struct {
		pairs, cols int
	}{
		{15, 6},
		{25, 10},
	} {
		grid, err := SetupGrid(tc.pairs, rand.New(rand.NewSource(7)), DefaultLayout())
		require.NoError(t, err)
		assert.Len(t, grid.Cards, 2*tc.pairs)
		assert.Equal(t, GridRows, grid.Rows)
		assert.Equal(t, tc.cols, grid.Cols)
		assert.Equal(t, grid.Rows*grid.Cols, len(grid.Cards))

		counts := map[Note]int{}
		for _, c := range grid.Cards {
			assert.True(t, c.Note.Valid())
			assert.False(t, c.Flipped)
			assert.False(t, c.Matched)
			counts[c.Note]++
		}
		for n, count := range counts {
			assert.Equal(t, 0, count%2, "note %s appears %d times", n.Name(), count)
		}
	}
}

func TestSetupGridGeometry(t *testing.T) {
	layout := DefaultLayout()
	grid, err := SetupGrid(25, rand.New(rand.NewSource(3)), layout)
	require.NoError(t, err)

	window := image.Rect(0, 0, layout.Width, layout.Height)
	for i, c := range grid.Cards {
		assert.Equal(t, layout.CardWidth, c.Rect.Dx())
		assert.Equal(t, layout.CardHeight, c.Rect.Dy())
		assert.True(t, c.Rect.In(window), "card %d outside window: %v", i, c.Rect)
		for j := i + 1; j < len(grid.Cards); j++ {
			assert.False(t, c.Rect.Overlaps(grid.Cards[j].Rect), "cards %d and %d overlap", i, j)
		}
	}

	// row major, centered
	first, last := grid.Cards[0].Rect, grid.Cards[len(grid.Cards)-1].Rect
	assert.Equal(t, first.Min.X, layout.Width-last.Max.X)
	assert.Equal(t, first.Min.Y, layout.Height-last.Max.Y)
	assert.Equal(t, first.Min.Y, grid.Cards[grid.Cols-1].Rect.Min.Y)
	assert.Equal(t, first.Min.Y+layout.CardHeight+layout.Margin, grid.Cards[grid.Cols].Rect.Min.Y)
}

func TestSetupGridDeterministicWithSeed(t *testing.T) {
	a, err := SetupGrid(15, rand.New(rand.NewSource(42)), DefaultLayout())
	require.NoError(t, err)
	b, err := SetupGrid(15, rand.New(rand.NewSource(42)), DefaultLayout())
	require.NoError(t, err)
	for i := range a.Cards {
		assert.Equal(t, a.Cards[i].Note, b.Cards[i].Note)
	}
}

func TestSetupGridInvalidConfiguration(t *testing.T) {
	for _, pairs := range []int{-5, 0, 7, 10, 16, 30} {
		grid, err := SetupGrid(pairs, rand.New(rand.NewSource(1)), DefaultLayout())
		assert.Nil(t, grid)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "pairs %d: %v", pairs, err)
	}
}

func TestGridCardAt(t *testing.T) {
	grid, err := SetupGrid(15, rand.New(rand.NewSource(1)), DefaultLayout())
	require.NoError(t, err)

	c := grid.Cards[8]
	assert.Same(t, c, grid.CardAt(c.Rect.Min))
	assert.Same(t, c, grid.CardAt(c.Rect.Max.Sub(image.Pt(1, 1))))
	// margin between two cards
	assert.Nil(t, grid.CardAt(image.Pt(c.Rect.Max.X+1, c.Rect.Min.Y)))
	assert.Nil(t, grid.CardAt(image.Pt(0, 0)))
}
