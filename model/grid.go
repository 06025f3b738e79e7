package model

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

func validPairs(pairs int) error {
	if pairs <= 0 || pairs%GridRows != 0 {
		return fmt.Errorf("%w: %d pairs is not a multiple of %d rows", ErrInvalidConfiguration, pairs, GridRows)
	}
	for _, p := range SupportedPairs {
		if p == pairs {
			return nil
		}
	}
	return fmt.Errorf("%w: %d pairs is not offered", ErrInvalidConfiguration, pairs)
}

// SetupGrid deals 2*pairs cards into GridRows rows. Notes are drawn with
// replacement, so the same note may back several pairs; matching only
// compares notes.
func SetupGrid(pairs int, rnd *rand.Rand, layout Layout) (*Grid, error) {
	if err := validPairs(pairs); err != nil {
		return nil, err
	}

	notes := make([]Note, 0, 2*pairs)
	for i := 0; i < pairs; i++ {
		n := Notes[rnd.Intn(len(Notes))]
		notes = append(notes, n, n)
	}
	rnd.Shuffle(len(notes), func(i, j int) {
		notes[i], notes[j] = notes[j], notes[i]
	})

	rows := GridRows
	cols := len(notes) / rows
	origin := layout.origin(rows, cols)
	cards := make([]*Card, 0, len(notes))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cards = append(cards, &Card{
				Note: notes[r*cols+c],
				Rect: layout.slot(origin, r, c),
			})
		}
	}
	return &Grid{Pairs: pairs, Rows: rows, Cols: cols, Cards: cards}, nil
}
