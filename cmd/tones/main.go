package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/trucxanh/model"
	"github.com/zucenko/trucxanh/tone"
)

const (
	bitDepth      = 16
	pcmFormat     = 1
	wavPermission = 0644
)

func main() {
	out := flag.String("out", ".", "directory to write the note WAV files into")
	rate := flag.Int("rate", tone.SampleRate, "sample rate in Hz")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatal(err)
	}
	for _, n := range model.Notes {
		path := filepath.Join(*out, n.Name()+".wav")
		if err := writeTone(path, n, *rate); err != nil {
			log.Fatalf("writing %s: %v", path, err)
		}
		log.Infof("wrote %s (%.2f Hz)", path, n.Frequency())
	}
}

func writeTone(path string, n model.Note, rate int) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, wavPermission)
	if err != nil {
		return err
	}
	defer file.Close()

	samples := tone.Samples(n, rate, tone.Duration, tone.Amplitude)
	data := make([]int, 0, len(samples)*tone.Channels)
	for _, s := range samples {
		for ch := 0; ch < tone.Channels; ch++ {
			data = append(data, int(s))
		}
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: tone.Channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(file, rate, bitDepth, tone.Channels, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}
