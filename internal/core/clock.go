package core

import (
	"context"
	"time"
)

// DefaultTimeUnit is the wall-clock length of one simulated time unit.
const DefaultTimeUnit = time.Second

// Clock measures time relative to the start of a single run.
type Clock struct {
	start time.Time
	unit  time.Duration
}

func NewClock(unit time.Duration) *Clock {
	if unit <= 0 {
		unit = DefaultTimeUnit
	}
	return &Clock{start: time.Now(), unit: unit}
}

func (c *Clock) Now() time.Time {
	return time.Now()
}

func (c *Clock) Unit() time.Duration {
	return c.unit
}

// Elapsed returns the whole time units between the run start and t.
func (c *Clock) Elapsed(t time.Time) int {
	d := t.Sub(c.start)
	if d < 0 {
		return 0
	}
	return int(d / c.unit)
}

// Sleep blocks for the given number of time units or until ctx is done.
func (c *Clock) Sleep(ctx context.Context, units int) error {
	if units <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(units) * c.unit)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
