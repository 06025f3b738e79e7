package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const fadeSeconds = 0.15

// Fade eases a value between 0 and 1, used for menu hover highlights.
type Fade struct {
	tween  *gween.Tween
	value  float32
	target float32
}

func (f *Fade) To(target float32) {
	if target == f.target {
		return
	}
	f.target = target
	f.tween = gween.New(f.value, target, fadeSeconds, ease.OutQuad)
}

func (f *Fade) Update(dt float32) float32 {
	if f.tween == nil {
		return f.value
	}
	current, finished := f.tween.Update(dt)
	f.value = current
	if finished {
		f.tween = nil
	}
	return f.value
}
