package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/workload"
)

const testUnit = 3 * time.Millisecond

func scripted(bursts, gaps []int) func(int64) workload.Source {
	return func(int64) workload.Source {
		return &workload.ScriptedSource{Bursts: bursts, Gaps: gaps}
	}
}

func bursts(run *schedulers.RunState) map[int]int {
	out := map[int]int{}
	for _, d := range run.Details {
		out[d.ProcessId] = d.BurstTime
	}
	return out
}

func TestRunAllUsesSameWorkloadForEveryAlgorithm(t *testing.T) {
	events := &core.EventLog{}
	sim := New(testUnit, events)

	var finished []string
	sim.AfterRun = func(run *schedulers.RunState) {
		finished = append(finished, run.Algorithm)
	}

	runs, err := sim.RunAll(context.Background(), 6, 1234)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"FCFS", "SJF", "RR"}, finished)

	want := bursts(runs[0])
	require.Len(t, want, 6)
	for _, run := range runs {
		assert.Equal(t, 6, run.Done)
		assert.Equal(t, want, bursts(run), run.Algorithm)

		created := events.Filter(run.Algorithm, core.EventCreated)
		require.Len(t, created, 6)
		for i, e := range created {
			assert.Equal(t, i+1, e.PID)
			assert.Equal(t, want[e.PID], e.Burst)
		}
		assert.Len(t, events.Filter(run.Algorithm, core.EventComplete), 6)
	}
}

func TestRunStartsFromFreshState(t *testing.T) {
	sim := New(testUnit, nil)
	sim.NewSource = scripted([]int{1, 1}, nil)

	first, err := sim.Run(context.Background(), schedulers.FirstComeFirstServe{}, 2, 1)
	require.NoError(t, err)
	second, err := sim.Run(context.Background(), schedulers.FirstComeFirstServe{}, 2, 1)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, first.Done)
	assert.Equal(t, 2, second.Done)
	assert.Len(t, second.Details, 2)
}

func TestFirstComeFirstServeWithSpacedArrivals(t *testing.T) {
	sim := New(testUnit, nil)
	sim.NewSource = scripted([]int{1, 2, 1, 1}, []int{3, 3, 3, 0})

	run, err := sim.Run(context.Background(), schedulers.FirstComeFirstServe{}, 4, 0)
	require.NoError(t, err)

	var order []int
	for _, d := range run.Details {
		order = append(order, d.ProcessId)
		assert.GreaterOrEqual(t, d.CompletionTime, d.ArrivalTime)
		assert.Equal(t, d.CompletionTime-d.ArrivalTime, d.TurnAroundTime)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestShortestJobFirstDoesNotPreemptRunningProcess(t *testing.T) {
	// process 1 is alone in the queue when picked; the shorter process 3
	// arrives while it runs and must wait for it to finish
	sim := New(20*time.Millisecond, nil)
	sim.NewSource = scripted([]int{3, 3, 1}, []int{1, 0, 0})

	run, err := sim.Run(context.Background(), schedulers.ShortestJobFirst{}, 3, 0)
	require.NoError(t, err)

	var order []int
	for _, d := range run.Details {
		order = append(order, d.ProcessId)
	}
	assert.Equal(t, []int{1, 3, 2}, order)
	assert.Equal(t, map[int]int{1: 3, 2: 3, 3: 1}, bursts(run))
}

func TestRoundRobinWithConcurrentArrivals(t *testing.T) {
	sim := New(testUnit, nil)
	sim.NewSource = scripted([]int{3, 3, 1, 2, 3}, []int{1, 0, 2, 1, 0})

	run, err := sim.Run(context.Background(), schedulers.RoundRobin{}, 5, 0)
	require.NoError(t, err)
	require.Equal(t, 5, run.Done)

	for _, d := range run.Details {
		assert.Equal(t, (d.BurstTime+schedulers.Quantum-1)/schedulers.Quantum-1, d.Rounds, "pid %d", d.ProcessId)
	}
	assert.Equal(t, 12, run.Cpu.BusyTime)
}

func TestRunAllHonoursCancellation(t *testing.T) {
	sim := New(time.Second, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	runs, err := sim.RunAll(ctx, 3, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, runs)
}
