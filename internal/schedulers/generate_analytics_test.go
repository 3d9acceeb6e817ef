package schedulers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
)

func TestGenerateResponse(t *testing.T) {
	run := NewRunState("RR", 4, core.NewClock(time.Second), nil)
	run.Done = 4
	run.WaitingTime = 6
	run.TurnaroundTime = 14
	run.ResponseTime = 2
	run.LastCompletion = 10
	run.Cpu = core.CpuMetric{BusyTime: 8, Slices: 5}
	run.Details = []responses.ProcessResponse{{ProcessId: 1}}

	events := []core.Event{
		{Kind: core.EventStart, Algorithm: "RR", PID: 1, Time: 0, Burst: 2, Quantum: true},
		{Kind: core.EventStart, Algorithm: "FCFS", PID: 1},
		{Kind: core.EventReturn, Algorithm: "RR", PID: 1, Time: 2, Burst: 1},
	}

	res := GenerateResponse(run, events)
	assert.Equal(t, "RR", res.Algorithm)
	assert.Equal(t, 1.5, res.AverageWaitingTime)
	assert.Equal(t, 3.5, res.AverageTurnAroundTime)
	assert.Equal(t, 0.5, res.AverageResponseTime)
	assert.Equal(t, 10, res.TotalTime)
	assert.Equal(t, 8, res.BusyTime)
	assert.Equal(t, 2, res.IdleTime)
	assert.InDelta(t, 0.8, res.CpuUtilization, 1e-9)
	assert.InDelta(t, 0.4, res.CpuThroughput, 1e-9)
	assert.Len(t, res.Details, 1)
	assert.Equal(t, []responses.EventResponse{
		{Kind: "start", PID: 1, Time: 0, Burst: 2, Quantum: true},
		{Kind: "return", PID: 1, Time: 2, Burst: 1},
	}, res.Events)
}

func TestGenerateResponseForEmptyRun(t *testing.T) {
	res := GenerateResponse(NewRunState("FCFS", 0, core.NewClock(time.Second), nil), nil)
	assert.Zero(t, res.CpuUtilization)
	assert.Zero(t, res.CpuThroughput)
	assert.Zero(t, res.AverageWaitingTime)
	assert.Nil(t, res.Events)
}
