package schedulers

import (
	"context"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/queue"
)

// Quantum is the round robin time slice in time units.
const Quantum = 2

type ReadyQueue = queue.ReadyQueue[*core.Process]

// Scheduler is a scheduling policy. NewQueue builds the ready queue ordered
// the way the policy selects processes; Schedule drains it until every
// process of the run has completed.
type Scheduler interface {
	Name() string
	NewQueue() *ReadyQueue
	Schedule(ctx context.Context, rq *ReadyQueue, run *RunState) error
}

// All returns the policies in the order a simulation runs them.
func All() []Scheduler {
	return []Scheduler{
		FirstComeFirstServe{},
		ShortestJobFirst{},
		RoundRobin{},
	}
}
