package schedulers

import (
	log "github.com/sirupsen/logrus"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"
)

// RunState holds the statistics of one algorithm run. It is owned by the
// run's scheduler worker and read only after that worker returned.
type RunState struct {
	Algorithm string
	N         int
	Clock     *core.Clock
	Sink      core.EventSink

	Done           int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
	LastCompletion int
	Cpu            core.CpuMetric
	Details        []responses.ProcessResponse
}

func NewRunState(algorithm string, n int, clock *core.Clock, sink core.EventSink) *RunState {
	if sink == nil {
		sink = core.DiscardSink{}
	}
	return &RunState{
		Algorithm: algorithm,
		N:         n,
		Clock:     clock,
		Sink:      sink,
		Details:   make([]responses.ProcessResponse, 0, n),
	}
}

func (r *RunState) Finished() bool {
	return r.Done == r.N
}

// Averages returns the average waiting, turnaround and response time.
func (r *RunState) Averages() (waiting, turnaround, response float64) {
	return util.CalculateAverage(r.WaitingTime, r.N),
		util.CalculateAverage(r.TurnaroundTime, r.N),
		util.CalculateAverage(r.ResponseTime, r.N)
}

func (r *RunState) creditWait(p *core.Process, wait int) {
	r.WaitingTime += wait
	p.WaitingTime += wait
}

func (r *RunState) creditResponse(p *core.Process, response int) {
	r.ResponseTime += response
	p.ResponseTime = response
}

func (r *RunState) complete(p *core.Process, completion int) {
	arrival := r.Clock.Elapsed(p.ArrivalTime)
	turnaround := completion - arrival

	p.BurstTime = 0
	r.TurnaroundTime += turnaround
	r.Done++
	if completion > r.LastCompletion {
		r.LastCompletion = completion
	}

	r.Details = append(r.Details, responses.ProcessResponse{
		ProcessId:      p.ID,
		BurstTime:      p.ServiceTime,
		ArrivalTime:    arrival,
		CompletionTime: completion,
		WaitingTime:    p.WaitingTime,
		TurnAroundTime: turnaround,
		ResponseTime:   p.ResponseTime,
		Rounds:         p.Round,
	})

	log.WithFields(log.Fields{
		"algorithm":  r.Algorithm,
		"pid":        p.ID,
		"turnaround": turnaround,
		"done":       r.Done,
	}).Debug("process completed")
}

func (r *RunState) emit(kind core.EventKind, p *core.Process, at int, burst int, quantum bool) {
	r.Sink.Emit(core.Event{
		Kind:      kind,
		Algorithm: r.Algorithm,
		PID:       p.ID,
		Time:      at,
		Burst:     burst,
		Quantum:   quantum,
	})
}
