package tone

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/trucxanh/model"
)

func TestSamples(t *testing.T) {
	s := Samples(model.A, SampleRate, Duration, Amplitude)
	require.Len(t, s, SampleRate/2)
	assert.Equal(t, int16(0), s[0])

	var peak int16
	crossings := 0
	for i, v := range s {
		if v > peak {
			peak = v
		}
		if i > 0 && (s[i-1] < 0) != (v < 0) {
			crossings++
		}
	}
	assert.InDelta(t, Amplitude*math.MaxInt16, float64(peak), 20)
	// 440 Hz over half a second crosses zero about 440 times
	assert.InDelta(t, 440, crossings, 3)
}

func TestPCMStereo(t *testing.T) {
	b := PCM(model.C, SampleRate, Amplitude)
	require.Len(t, b, SampleRate/2*Channels*2)
	for i := 0; i < len(b); i += 4 {
		left := binary.LittleEndian.Uint16(b[i:])
		right := binary.LittleEndian.Uint16(b[i+2:])
		if !assert.Equal(t, left, right, "frame %d", i/4) {
			break
		}
	}
}

func TestBank(t *testing.T) {
	bank := NewBank(8000, Amplitude)
	for _, n := range model.Notes {
		assert.Len(t, bank.PCM(n), 4000*Channels*2)
	}
	assert.NotEqual(t, bank.PCM(model.C), bank.PCM(model.D))
	assert.Nil(t, bank.PCM(model.NoteHidden))
}
