package responses

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/simulator"
	"cpu-scheduler/internal/util"
)

type IntervalResponse struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Duration  int    `json:"duration"`
	Kind      string `json:"type"`
	ProcessId string `json:"pid,omitempty"`
}

type ProcessResponse struct {
	ProcessId                string  `json:"pid"`
	ArrivalTime              int     `json:"arrival_time"`
	BurstTime                int     `json:"burst_time"`
	StartTime                int     `json:"start_time"`
	CompletionTime           int     `json:"completion_time"`
	TurnAroundTime           int     `json:"turnaround_time"`
	WaitingTime              int     `json:"waiting_time"`
	ResponseTime             int     `json:"response_time"`
	QuantumSlicesUsed        int     `json:"quantum_slices_used,omitempty"`
	NormalizedTurnaroundTime float64 `json:"normalized_turnaround_time,omitempty"`
}

type ScheduleResponse struct {
	Algorithm             string                    `json:"algorithm"`
	TimeQuantum           int                       `json:"quantum,omitempty"`
	GanttChart            []IntervalResponse        `json:"gantt_chart"`
	Details               []ProcessResponse         `json:"processes"`
	AverageWaitingTime    float64                   `json:"average_waiting_time"`
	AverageTurnAroundTime float64                   `json:"average_turnaround_time"`
	Analysis              string                    `json:"analysis"`
	Statistics            map[string]util.Statistic `json:"statistics,omitempty"`
	ContextSwitches       int                       `json:"context_switches,omitempty"`
	TotalTime             float64                   `json:"total_time"`
	IdleTime              float64                   `json:"idle_time"`
	CpuUtilization        float64                   `json:"cpu_utilization"`
	CpuThroughput         float64                   `json:"cpu_throughput"`
}

type StateResponse struct {
	Status       string         `json:"status"`
	Algorithm    string         `json:"algorithm"`
	TimeQuantum  int            `json:"quantum,omitempty"`
	ProcessCount int            `json:"process_count"`
	Processes    []core.Process `json:"processes"`
}

// NewScheduleResponse converts a result for the wire. Averages are rounded
// to two decimals; statistics keep full precision.
func NewScheduleResponse(result *schedulers.SimulationResult) ScheduleResponse {
	gantt := make([]IntervalResponse, 0, len(result.Timeline))
	for e := range result.Timeline.All() {
		gantt = append(gantt, IntervalResponse{
			Start:     e.Start,
			End:       e.End,
			Duration:  e.Duration(),
			Kind:      string(e.Kind),
			ProcessId: e.ProcessID,
		})
	}

	details := make([]ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, ProcessResponse{
			ProcessId:                p.ID,
			ArrivalTime:              p.ArrivalTime,
			BurstTime:                p.BurstTime,
			StartTime:                p.StartTime,
			CompletionTime:           p.CompletionTime,
			TurnAroundTime:           p.TurnaroundTime,
			WaitingTime:              p.WaitingTime,
			ResponseTime:             p.ResponseTime,
			QuantumSlicesUsed:        p.QuantumSlicesUsed,
			NormalizedTurnaroundTime: p.NormalizedTurnaroundTime,
		})
	}

	response := ScheduleResponse{
		Algorithm:             string(result.Discipline.Algorithm),
		TimeQuantum:           result.Discipline.Quantum,
		GanttChart:            gantt,
		Details:               details,
		AverageWaitingTime:    util.Round2(result.AverageWaitingTime),
		AverageTurnAroundTime: util.Round2(result.AverageTurnaroundTime),
		Analysis:              result.Analysis,
		Statistics:            result.Statistics,
		ContextSwitches:       result.ContextSwitches,
		TotalTime:             float64(result.Cpu.TotalTime),
		IdleTime:              float64(result.Cpu.IdleTime),
	}
	if result.Cpu.TotalTime > 0 {
		total := float64(result.Cpu.TotalTime)
		response.CpuUtilization = util.Round2(float64(result.Cpu.UtilizationTime) / total)
		response.CpuThroughput = util.Round2(float64(len(details)) / total)
	}
	return response
}

func NewStateResponse(state simulator.State) StateResponse {
	return StateResponse{
		Status:       string(state.Status),
		Algorithm:    string(state.Discipline.Algorithm),
		TimeQuantum:  state.Discipline.Quantum,
		ProcessCount: len(state.Processes),
		Processes:    state.Processes,
	}
}
