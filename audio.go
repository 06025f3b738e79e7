package main

import (
	"github.com/hajimehoshi/ebiten/audio"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/trucxanh/config"
	"github.com/zucenko/trucxanh/model"
	"github.com/zucenko/trucxanh/tone"
)

// tonePlayer plays pre rendered note tones through ebiten's audio context.
type tonePlayer struct {
	context *audio.Context
	bank    *tone.Bank
	volume  float64
}

func newTonePlayer(cfg config.Sound) model.ToneSink {
	if !cfg.Enabled {
		return nil
	}
	context, err := audio.NewContext(tone.SampleRate)
	if err != nil {
		log.Warnf("audio disabled: %v", err)
		return nil
	}
	return &tonePlayer{
		context: context,
		bank:    tone.NewBank(tone.SampleRate, tone.Amplitude),
		volume:  cfg.Volume,
	}
}

func (t *tonePlayer) PlayTone(n model.Note) {
	p, err := audio.NewPlayerFromBytes(t.context, t.bank.PCM(n))
	if err != nil {
		log.Warnf("tone %s: %v", n.Name(), err)
		return
	}
	p.SetVolume(t.volume)
	if err := p.Play(); err != nil {
		log.Warnf("tone %s: %v", n.Name(), err)
	}
}
