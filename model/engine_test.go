package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordedTones struct {
	notes []Note
}

func (r *recordedTones) PlayTone(n Note) {
	r.notes = append(r.notes, n)
}

func TestMatchEngineMatch(t *testing.T) {
	tones := &recordedTones{}
	e := NewMatchEngine(tones)
	a, b := &Card{Note: E}, &Card{Note: E}

	assert.Equal(t, FLIP_PENDING, e.Flip(a, 0))
	assert.True(t, a.Flipped)
	assert.Equal(t, 1, e.Selected())

	assert.Equal(t, FLIP_MATCH, e.Flip(b, 0))
	assert.True(t, a.Matched)
	assert.True(t, b.Matched)
	assert.Equal(t, 0, e.Selected())
	assert.False(t, e.Waiting())
	assert.Equal(t, []Note{E, E}, tones.notes)
}

func TestMatchEngineMismatch(t *testing.T) {
	e := NewMatchEngine(nil)
	a, b := &Card{Note: C}, &Card{Note: G}

	e.Flip(a, 100)
	assert.Equal(t, FLIP_MISMATCH, e.Flip(b, 100))
	assert.False(t, a.Matched)
	assert.False(t, b.Matched)
	assert.True(t, a.Flipped)
	assert.True(t, b.Flipped)
	assert.True(t, e.Waiting())
	assert.Equal(t, 2, e.Selected())

	assert.False(t, e.Tick(1099))
	assert.True(t, a.Flipped)
	assert.True(t, b.Flipped)

	assert.True(t, e.Tick(1100))
	assert.False(t, a.Flipped)
	assert.False(t, b.Flipped)
	assert.Equal(t, 0, e.Selected())
	assert.False(t, e.Waiting())
}

func TestMatchEngineIgnoredFlips(t *testing.T) {
	tones := &recordedTones{}
	e := NewMatchEngine(tones)

	assert.Equal(t, FLIP_IGNORED, e.Flip(nil, 0))

	matched := &Card{Note: A, Flipped: true, Matched: true}
	assert.Equal(t, FLIP_IGNORED, e.Flip(matched, 0))

	a := &Card{Note: A}
	e.Flip(a, 0)
	assert.Equal(t, FLIP_IGNORED, e.Flip(a, 0))
	assert.Equal(t, 1, e.Selected())

	// pending mismatch blocks every flip
	b, c := &Card{Note: B}, &Card{Note: A}
	e.Flip(b, 0)
	assert.Equal(t, FLIP_IGNORED, e.Flip(c, 10))
	assert.False(t, c.Flipped)
	assert.Equal(t, 2, e.Selected())
	assert.Equal(t, []Note{A, B}, tones.notes)
}

func TestMatchEngineReset(t *testing.T) {
	e := NewMatchEngine(nil)
	e.Flip(&Card{Note: C}, 0)
	e.Flip(&Card{Note: D}, 0)
	e.Reset()
	assert.False(t, e.Waiting())
	assert.Equal(t, 0, e.Selected())
	assert.False(t, e.Tick(5000))
}
