package schedulers

import (
	"context"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/queue"
)

type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string { return "FCFS" }

func (FirstComeFirstServe) NewQueue() *ReadyQueue {
	return queue.NewFIFO[*core.Process]()
}

func (FirstComeFirstServe) Schedule(ctx context.Context, rq *ReadyQueue, run *RunState) error {
	return scheduleToCompletion(ctx, rq, run)
}

// scheduleToCompletion is the non-preemptive loop shared by FCFS and SJF:
// the queue ordering alone decides which process runs next.
func scheduleToCompletion(ctx context.Context, rq *ReadyQueue, run *RunState) error {
	for !run.Finished() {
		proccess, err := rq.Pop(ctx)
		if err != nil {
			return err
		}

		start := run.Clock.Elapsed(run.Clock.Now())
		wait := start - run.Clock.Elapsed(proccess.ArrivalTime)
		// without preemption the first wait is also the response time
		run.creditWait(proccess, wait)
		run.creditResponse(proccess, wait)

		burst := proccess.BurstTime
		completion, err := core.CpuExecute(ctx, run.Clock, proccess, burst, &run.Cpu)
		if err != nil {
			return err
		}
		run.complete(proccess, completion)

		run.emit(core.EventStart, proccess, start, burst, false)
		run.emit(core.EventComplete, proccess, completion, 0, false)
	}
	return nil
}
