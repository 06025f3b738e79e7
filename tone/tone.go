// Package tone renders the sine tones played when a card is flipped.
package tone

import (
	"encoding/binary"
	"math"

	"github.com/zucenko/trucxanh/model"
)

const (
	SampleRate = 44100
	Duration   = 0.5
	Amplitude  = 0.5
	Channels   = 2
)

// Samples returns mono 16 bit samples of the note's tone.
func Samples(n model.Note, sampleRate int, seconds, amplitude float64) []int16 {
	count := int(float64(sampleRate) * seconds)
	out := make([]int16, count)
	freq := n.Frequency()
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(amplitude * math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
	}
	return out
}

// PCM returns interleaved 16 bit little endian stereo bytes, the format ebiten's audio players take.
func PCM(n model.Note, sampleRate int, amplitude float64) []byte {
	samples := Samples(n, sampleRate, Duration, amplitude)
	buf := make([]byte, len(samples)*Channels*2)
	for i, s := range samples {
		for ch := 0; ch < Channels; ch++ {
			binary.LittleEndian.PutUint16(buf[(i*Channels+ch)*2:], uint16(s))
		}
	}
	return buf
}

// Bank holds the rendered PCM of every note.
type Bank [model.NoteCount][]byte

func NewBank(sampleRate int, amplitude float64) *Bank {
	var b Bank
	for _, n := range model.Notes {
		b[n] = PCM(n, sampleRate, amplitude)
	}
	return &b
}

func (b *Bank) PCM(n model.Note) []byte {
	if !n.Valid() {
		return nil
	}
	return b[n]
}
