// Package simulation runs the scheduling policies against a generated
// workload, one algorithm at a time.
package simulation

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/workload"
)

// Simulator owns the single scheduler worker allowed to run at a time.
type Simulator struct {
	TimeUnit time.Duration
	Sink     core.EventSink

	// NewSource builds the workload source of a run; every algorithm of a
	// simulation gets a source built from the same seed.
	NewSource func(seed int64) workload.Source

	// AfterRun, if set, is called once an algorithm's run has finished and
	// before the next one starts.
	AfterRun func(run *schedulers.RunState)

	mu sync.Mutex
}

func New(unit time.Duration, sink core.EventSink) *Simulator {
	return &Simulator{TimeUnit: unit, Sink: sink}
}

// RunAll runs every policy in order against the same seeded workload.
func (s *Simulator) RunAll(ctx context.Context, n int, seed int64) ([]*schedulers.RunState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := make([]*schedulers.RunState, 0, 3)
	for _, sched := range schedulers.All() {
		run, err := s.run(ctx, sched, n, seed)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
		if s.AfterRun != nil {
			s.AfterRun(run)
		}
	}
	return runs, nil
}

// Run runs a single policy. The generator and the scheduler worker run
// concurrently and the run is over once both have returned.
func (s *Simulator) Run(ctx context.Context, sched schedulers.Scheduler, n int, seed int64) (*schedulers.RunState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run(ctx, sched, n, seed)
}

func (s *Simulator) run(ctx context.Context, sched schedulers.Scheduler, n int, seed int64) (*schedulers.RunState, error) {
	sink := s.Sink
	if sink == nil {
		sink = core.DiscardSink{}
	}
	logger := log.WithFields(log.Fields{"algorithm": sched.Name(), "processes": n, "seed": seed})
	logger.Info("starting run")

	clock := core.NewClock(s.TimeUnit)
	rq := sched.NewQueue()
	run := schedulers.NewRunState(sched.Name(), n, clock, sink)
	generator := &workload.Generator{
		Algorithm: sched.Name(),
		Source:    s.source(seed),
		Clock:     clock,
		Sink:      sink,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Schedule(gctx, rq, run)
	})
	g.Go(func() error {
		return generator.Generate(gctx, n, rq)
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("run aborted")
		return nil, err
	}

	waiting, turnaround, response := run.Averages()
	logger.WithFields(log.Fields{
		"avg_waiting":    waiting,
		"avg_turnaround": turnaround,
		"avg_response":   response,
	}).Info("run finished")
	return run, nil
}

func (s *Simulator) source(seed int64) workload.Source {
	if s.NewSource != nil {
		return s.NewSource(seed)
	}
	return workload.NewRandomSource(seed)
}
