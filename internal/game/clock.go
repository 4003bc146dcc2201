package game

import "time"

// Clock supplies elapsed game time. The world samples it once per tick.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock reports time elapsed since it was created.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a controllable clock for tests and replays.
type ManualClock struct {
	now time.Duration
}

func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Duration { return c.now }

func (c *ManualClock) Set(t time.Duration) { c.now = t }

func (c *ManualClock) Advance(d time.Duration) { c.now += d }
