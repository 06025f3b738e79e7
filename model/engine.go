package model

import (
	log "github.com/sirupsen/logrus"
)

type Outcome int

const (
	FLIP_IGNORED Outcome = iota
	FLIP_PENDING
	FLIP_MATCH
	FLIP_MISMATCH
)

func (o Outcome) Name() string {
	switch o {
	case FLIP_IGNORED:
		return "IGNORED"
	case FLIP_PENDING:
		return "PENDING"
	case FLIP_MATCH:
		return "MATCH"
	case FLIP_MISMATCH:
		return "MISMATCH"
	default:
		return "N/A"
	}
}

// MatchEngine flips cards two at a time and hides mismatched pairs after UnflipDelayMillis.
type MatchEngine struct {
	selection Selection
	unflip    Countdown
	tones     ToneSink
}

func NewMatchEngine(tones ToneSink) *MatchEngine {
	if tones == nil {
		tones = silentTones{}
	}
	return &MatchEngine{
		unflip: NewCountdown(UnflipDelayMillis),
		tones:  tones,
	}
}

// Waiting reports whether a mismatched pair is still on display.
func (e *MatchEngine) Waiting() bool {
	return e.unflip.Active()
}

func (e *MatchEngine) Selected() int {
	return e.selection.Len()
}

func (e *MatchEngine) Flip(c *Card, now int64) Outcome {
	if c == nil || e.Waiting() || !c.Selectable() {
		return FLIP_IGNORED
	}
	if !e.selection.Push(c) {
		return FLIP_IGNORED
	}
	c.Flipped = true
	e.tones.PlayTone(c.Note)
	log.Debugf("MatchEngine.Flip note:%s selected:%d", c.Note.Name(), e.selection.Len())
	if e.selection.Full() {
		return e.resolve(now)
	}
	return FLIP_PENDING
}

func (e *MatchEngine) resolve(now int64) Outcome {
	a, b := e.selection.Pair()
	if a.Note == b.Note {
		a.Matched = true
		b.Matched = true
		e.selection.Clear()
		return FLIP_MATCH
	}
	e.unflip.Start(now)
	return FLIP_MISMATCH
}

// Tick hides a mismatched pair once its delay is over and reports whether it did.
func (e *MatchEngine) Tick(now int64) bool {
	if !e.unflip.Expired(now) {
		return false
	}
	a, b := e.selection.Pair()
	a.Flipped = false
	b.Flipped = false
	e.selection.Clear()
	e.unflip.Stop()
	return true
}

func (e *MatchEngine) Reset() {
	e.selection.Clear()
	e.unflip.Stop()
}
