package schedulers

import (
	"fmt"
	"log"
	"sort"

	"cpu-scheduler/internal/core"
)

type job struct {
	core.Process
	order     int
	remaining int
}

// jobsByArrival returns the processes sorted by arrival time, insertion
// order breaking ties.
func jobsByArrival(set *core.ProcessSet) []*job {
	jobs := make([]*job, 0, set.Len())
	for i, p := range set.All() {
		jobs = append(jobs, &job{Process: p, order: i, remaining: p.BurstTime})
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
	return jobs
}

// BuildTimeline runs the discipline over set on a fresh simulated cpu and
// returns the recorded cpu. A nil logger logs to log.Default().
func BuildTimeline(set *core.ProcessSet, discipline core.Discipline, logger *log.Logger) (*core.Cpu, error) {
	if err := discipline.Validate(); err != nil {
		return nil, err
	}
	if set == nil || set.Len() == 0 {
		return nil, core.ErrEmptyInput
	}

	if logger == nil {
		logger = log.Default()
	}

	var cpu *core.Cpu
	switch discipline.Algorithm {
	case core.FirstComeFirstServe:
		cpu = scheduleFirstComeFirstServe(jobsByArrival(set), logger)
	case core.ShortestJobFirst:
		cpu = scheduleShortestJobFirst(jobsByArrival(set), logger)
	case core.RoundRobin:
		cpu = scheduleRoundRobin(jobsByArrival(set), discipline.Quantum, logger)
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownDiscipline, discipline.Algorithm)
	}

	if err := cpu.Timeline().Verify(); err != nil {
		return nil, err
	}
	return cpu, nil
}
