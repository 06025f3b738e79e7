package model

// Countdown is a polled wall clock timer in milliseconds. The zero value is inactive.
type Countdown struct {
	Duration int64
	start    int64
	active   bool
}

func NewCountdown(durationMillis int64) Countdown {
	return Countdown{Duration: durationMillis}
}

func (c *Countdown) Start(now int64) {
	c.start = now
	c.active = true
}

func (c *Countdown) Stop() {
	c.active = false
	c.start = 0
}

func (c Countdown) Active() bool {
	return c.active
}

func (c Countdown) Remaining(now int64) int64 {
	if !c.active {
		return 0
	}
	left := c.Duration - (now - c.start)
	if left < 0 {
		return 0
	}
	return left
}

func (c Countdown) Expired(now int64) bool {
	return c.active && now-c.start >= c.Duration
}
