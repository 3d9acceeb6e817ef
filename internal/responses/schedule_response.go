package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	BurstTime      int `json:"burst_time"`
	ArrivalTime    int `json:"arrival_time"`
	CompletionTime int `json:"completion_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
	ResponseTime   int `json:"response_time"`
	Rounds         int `json:"rounds"`
}

type EventResponse struct {
	Kind    string `json:"kind"`
	PID     int    `json:"pid"`
	Time    int    `json:"time"`
	Burst   int    `json:"burst"`
	Quantum bool   `json:"quantum,omitempty"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	BusyTime              int               `json:"busy_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Events                []EventResponse   `json:"events,omitempty"`
}

type SimulationResponse struct {
	ProcessCount int                `json:"process_count"`
	Seed         int64              `json:"seed"`
	Results      []ScheduleResponse `json:"results"`
}
