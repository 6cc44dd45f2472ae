package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   string `json:"pid"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

func (j Job) Process() core.Process {
	return core.Process{ID: j.ProcessId, ArrivalTime: j.ArrivalTime, BurstTime: j.BurstTime}
}

// ScheduleRequests is the body of the stateless per-algorithm endpoints.
type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum *int  `json:"quantum,omitempty"`
}

// ProcessSet validates the jobs into a fresh set bounded by maxTime.
func (r ScheduleRequests) ProcessSet(maxTime int) (*core.ProcessSet, error) {
	set := core.NewBoundedProcessSet(maxTime)
	for _, j := range r.Jobs {
		if err := set.Add(j.Process()); err != nil {
			return nil, err
		}
	}
	return set, nil
}

type AddProcessRequest = Job

type ChangeAlgorithmRequest struct {
	Algorithm   string `json:"algorithm"`
	TimeQuantum *int   `json:"quantum,omitempty"`
}
