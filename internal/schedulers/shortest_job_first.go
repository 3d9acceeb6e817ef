package schedulers

import (
	"context"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/queue"
)

// ShortestJobFirst is non-preemptive: a selected process keeps the CPU for
// its whole burst even if a shorter one arrives meanwhile.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() string { return "SJF" }

func (ShortestJobFirst) NewQueue() *ReadyQueue {
	return queue.New[*core.Process](core.ByShortestBurst)
}

func (ShortestJobFirst) Schedule(ctx context.Context, rq *ReadyQueue, run *RunState) error {
	return scheduleToCompletion(ctx, rq, run)
}
