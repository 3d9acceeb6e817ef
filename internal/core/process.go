package core

import "time"

// Process is a simulated job. BurstTime is the remaining service time in
// time units; only round robin decrements it before completion.
type Process struct {
	ID            int
	BurstTime     int
	ServiceTime   int
	ArrivalTime   time.Time
	LastExecution time.Time
	Round         int

	// per-process contributions to the run statistics
	WaitingTime  int
	ResponseTime int
}

func NewProcess(id int, burst int, arrival time.Time) *Process {
	return &Process{
		ID:            id,
		BurstTime:     burst,
		ServiceTime:   burst,
		ArrivalTime:   arrival,
		LastExecution: arrival,
	}
}

// ByShortestBurst orders processes by ascending remaining burst time.
func ByShortestBurst(a, b *Process) bool {
	return a.BurstTime < b.BurstTime
}
