package workload

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/queue"
)

func TestRandomSourceRanges(t *testing.T) {
	src := NewRandomSource(7)
	for i := 0; i < 1000; i++ {
		b := src.Burst()
		assert.GreaterOrEqual(t, b, MinBurst)
		assert.LessOrEqual(t, b, MaxBurst)

		g := src.Gap()
		assert.GreaterOrEqual(t, g, 0)
		assert.LessOrEqual(t, g, MaxGap)
	}
}

func TestRandomSourceIsReproducible(t *testing.T) {
	a, b := NewRandomSource(42), NewRandomSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Burst(), b.Burst())
		assert.Equal(t, a.Gap(), b.Gap())
	}
}

func TestScriptedSourceFallsBack(t *testing.T) {
	src := &ScriptedSource{Bursts: []int{3}, Gaps: []int{2}}
	assert.Equal(t, 3, src.Burst())
	assert.Equal(t, 2, src.Gap())
	assert.Equal(t, MinBurst, src.Burst())
	assert.Equal(t, 0, src.Gap())
}

func TestGenerateCreatesProcessesInOrder(t *testing.T) {
	clock := core.NewClock(time.Millisecond)
	log := &core.EventLog{}
	q := queue.NewFIFO[*core.Process]()
	g := &Generator{
		Algorithm: "FCFS",
		Source:    &ScriptedSource{Bursts: []int{2, 1, 3}},
		Clock:     clock,
		Sink:      log,
	}

	require.NoError(t, g.Generate(context.Background(), 3, q))

	procs := q.Drain()
	require.Len(t, procs, 3)
	for i, p := range procs {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, p.ServiceTime, p.BurstTime)
		assert.Equal(t, p.ArrivalTime, p.LastExecution)
		assert.Zero(t, p.Round)
	}
	assert.Equal(t, []int{2, 1, 3}, []int{procs[0].BurstTime, procs[1].BurstTime, procs[2].BurstTime})

	created := log.Filter("FCFS", core.EventCreated)
	require.Len(t, created, 3)
	assert.Equal(t, 1, created[0].PID)
	assert.Equal(t, 2, created[0].Burst)
}

func TestGenerateStopsOnCancel(t *testing.T) {
	clock := core.NewClock(time.Hour)
	q := queue.NewFIFO[*core.Process]()
	g := &Generator{Source: &ScriptedSource{Gaps: []int{1}}, Clock: clock}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := g.Generate(ctx, 5, q)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, q.Len())
}
