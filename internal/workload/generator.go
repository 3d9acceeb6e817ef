package workload

import (
	"context"

	log "github.com/sirupsen/logrus"

	"cpu-scheduler-sim/internal/core"
)

// Pusher is the ready queue the generator feeds.
type Pusher interface {
	Push(p *core.Process)
}

// Generator creates the workload of a single run.
type Generator struct {
	Algorithm string
	Source    Source
	Clock     *core.Clock
	Sink      core.EventSink
}

// Generate creates processes 1..n, pushing each into q and then waiting a
// random gap. It returns once all n processes were pushed and the last gap
// elapsed, or early with the context error.
func (g *Generator) Generate(ctx context.Context, n int, q Pusher) error {
	sink := g.Sink
	if sink == nil {
		sink = core.DiscardSink{}
	}

	for id := 1; id <= n; id++ {
		now := g.Clock.Now()
		p := core.NewProcess(id, g.Source.Burst(), now)

		sink.Emit(core.Event{
			Kind:      core.EventCreated,
			Algorithm: g.Algorithm,
			PID:       p.ID,
			Time:      g.Clock.Elapsed(now),
			Burst:     p.BurstTime,
		})
		q.Push(p)
		log.WithFields(log.Fields{"pid": p.ID, "burst": p.BurstTime, "algorithm": g.Algorithm}).
			Debug("process created")

		if err := g.Clock.Sleep(ctx, g.Source.Gap()); err != nil {
			return err
		}
	}
	return nil
}
