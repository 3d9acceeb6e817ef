package schedulers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/queue"
)

type RoundRobin struct{}

func (RoundRobin) Name() string { return "RR" }

func (RoundRobin) NewQueue() *ReadyQueue {
	return queue.NewFIFO[*core.Process]()
}

// Schedule runs each process for at most Quantum units and sends it back to
// the tail of the queue while burst remains. Every slice credits the time
// since the previous slice ended as waiting time; response time is credited
// on the first slice only.
func (RoundRobin) Schedule(ctx context.Context, rq *ReadyQueue, run *RunState) error {
	for !run.Finished() {
		proccess, err := rq.Pop(ctx)
		if err != nil {
			return err
		}

		now := run.Clock.Elapsed(run.Clock.Now())
		last := run.Clock.Elapsed(proccess.LastExecution)
		if proccess.Round == 0 {
			last = run.Clock.Elapsed(proccess.ArrivalTime)
			run.creditResponse(proccess, now-last)
		}
		run.creditWait(proccess, now-last)

		if proccess.BurstTime <= Quantum {
			burst := proccess.BurstTime
			completion, err := core.CpuExecute(ctx, run.Clock, proccess, burst, &run.Cpu)
			if err != nil {
				return err
			}
			run.complete(proccess, completion)

			run.emit(core.EventStart, proccess, now, burst, false)
			run.emit(core.EventComplete, proccess, completion, 0, false)
			continue
		}

		if _, err := core.CpuExecute(ctx, run.Clock, proccess, Quantum, &run.Cpu); err != nil {
			return err
		}
		proccess.BurstTime -= Quantum
		proccess.Round++
		proccess.LastExecution = run.Clock.Now()
		returned := run.Clock.Elapsed(proccess.LastExecution)
		remaining := proccess.BurstTime

		log.WithFields(log.Fields{"pid": proccess.ID, "remaining": remaining, "round": proccess.Round}).
			Debug("context switch, sending process back to ready queue")
		rq.Push(proccess)

		run.emit(core.EventStart, proccess, now, Quantum, true)
		run.emit(core.EventReturn, proccess, returned, remaining, false)
	}
	return nil
}
