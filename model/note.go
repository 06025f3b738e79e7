package model

import (
	"fmt"
	"image/color"
)

type Note int

const (
	C Note = iota
	D
	E
	F
	G
	A
	B
	NoteCount
)

// NoteHidden stands in for the note of a face down card in render models.
const NoteHidden Note = -1

var Notes = [NoteCount]Note{C, D, E, F, G, A, B}

var noteNames = [NoteCount]string{"C", "D", "E", "F", "G", "A", "B"}

var noteColors = [NoteCount]color.RGBA{
	{255, 0, 0, 255},
	{255, 165, 0, 255},
	{255, 255, 0, 255},
	{0, 128, 0, 255},
	{0, 0, 255, 255},
	{75, 0, 130, 255},
	{238, 130, 238, 255},
}

// fourth octave, Hz
var noteFrequencies = [NoteCount]float64{
	261.63,
	293.66,
	329.63,
	349.23,
	392.00,
	440.00,
	493.88,
}

func (n Note) Valid() bool {
	return n >= 0 && n < NoteCount
}

func (n Note) Name() string {
	if !n.Valid() {
		return fmt.Sprintf("N/A(%d)", n)
	}
	return noteNames[n]
}

func (n Note) String() string {
	return n.Name()
}

func (n Note) Color() color.RGBA {
	if !n.Valid() {
		return color.RGBA{128, 128, 128, 255}
	}
	return noteColors[n]
}

func (n Note) Frequency() float64 {
	if !n.Valid() {
		return 0
	}
	return noteFrequencies[n]
}

// ToneSink plays the tone of a note. Calls must not block.
type ToneSink interface {
	PlayTone(n Note)
}

type silentTones struct{}

func (silentTones) PlayTone(Note) {}
