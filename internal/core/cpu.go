package core

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// CpuMetric accumulates how long the simulated CPU spent executing.
type CpuMetric struct {
	BusyTime int
	Slices   int
}

// CpuExecute simulates running p for units time units and returns the
// instant the slice ended. p is only logged, never mutated; callers update
// its remaining burst themselves.
func CpuExecute(ctx context.Context, clock *Clock, p *Process, units int, metric *CpuMetric) (int, error) {
	log.WithFields(log.Fields{
		"pid":   p.ID,
		"units": units,
		"round": p.Round,
	}).Debug("cpu executing slice")

	if err := clock.Sleep(ctx, units); err != nil {
		return 0, err
	}
	if metric != nil {
		metric.BusyTime += units
		metric.Slices++
	}
	return clock.Elapsed(clock.Now()), nil
}
