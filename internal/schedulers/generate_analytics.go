package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
)

// GenerateResponse summarizes a finished run. events may be nil.
func GenerateResponse(run *RunState, events []core.Event) responses.ScheduleResponse {
	averageWaitingTime, averageTurnAroundTime, averageResponseTime := run.Averages()

	totalTime := run.LastCompletion
	busyTime := run.Cpu.BusyTime
	idleTime := totalTime - busyTime
	if idleTime < 0 {
		idleTime = 0
	}

	var utilization, throughput float64
	if totalTime > 0 {
		utilization = float64(busyTime) / float64(totalTime)
		throughput = float64(run.N) / float64(totalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             run.Algorithm,
		TotalTime:             totalTime,
		BusyTime:              busyTime,
		IdleTime:              idleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               run.Details,
		Events:                generateEvents(run.Algorithm, events),
	}
}

func generateEvents(algorithm string, events []core.Event) []responses.EventResponse {
	var out []responses.EventResponse
	for _, e := range events {
		if e.Algorithm != algorithm {
			continue
		}
		out = append(out, responses.EventResponse{
			Kind:    string(e.Kind),
			PID:     e.PID,
			Time:    e.Time,
			Burst:   e.Burst,
			Quantum: e.Quantum,
		})
	}
	return out
}
