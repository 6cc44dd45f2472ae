package schedulers

import (
	"fmt"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// ProcessMetrics is the per-process row of a simulation. QuantumSlicesUsed
// and NormalizedTurnaroundTime are only filled for round robin.
type ProcessMetrics struct {
	ID                       string
	ArrivalTime              int
	BurstTime                int
	StartTime                int
	CompletionTime           int
	TurnaroundTime           int
	WaitingTime              int
	ResponseTime             int
	QuantumSlicesUsed        int
	NormalizedTurnaroundTime float64
}

type processTrace struct {
	slices   int
	firstRun int
	lastEnd  int
	executed int
}

// generateProcessDetails derives one metrics row per process from the
// timeline, ordered by completion time.
func generateProcessDetails(set *core.ProcessSet, timeline core.Timeline, discipline core.Discipline) ([]ProcessMetrics, error) {
	traces := make(map[string]*processTrace, set.Len())
	for _, p := range set.All() {
		traces[p.ID] = &processTrace{}
	}
	for e := range timeline.All() {
		if e.Kind != core.KindProcess {
			continue
		}
		trace, ok := traces[e.ProcessID]
		if !ok {
			return nil, fmt.Errorf("%w: timeline references unknown pid %s", core.ErrInvariantViolation, e.ProcessID)
		}
		if trace.slices == 0 {
			trace.firstRun = e.Start
		}
		trace.slices++
		trace.lastEnd = e.End
		trace.executed += e.Duration()
	}

	details := make([]ProcessMetrics, 0, set.Len())
	for _, p := range set.All() {
		trace := traces[p.ID]
		if trace.executed != p.BurstTime {
			return nil, fmt.Errorf("%w: pid %s executed %d of %d burst units", core.ErrInvariantViolation, p.ID, trace.executed, p.BurstTime)
		}

		m := ProcessMetrics{
			ID:             p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			StartTime:      trace.firstRun,
			CompletionTime: trace.lastEnd,
			ResponseTime:   trace.firstRun - p.ArrivalTime,
		}
		m.TurnaroundTime = m.CompletionTime - m.ArrivalTime
		m.WaitingTime = m.TurnaroundTime - m.BurstTime
		if m.WaitingTime < 0 {
			return nil, fmt.Errorf("%w: pid %s has negative waiting time %d", core.ErrInvariantViolation, p.ID, m.WaitingTime)
		}
		if m.ResponseTime < 0 {
			return nil, fmt.Errorf("%w: pid %s has negative response time %d", core.ErrInvariantViolation, p.ID, m.ResponseTime)
		}

		if discipline.Algorithm == core.RoundRobin {
			if m.BurstTime == 0 {
				return nil, fmt.Errorf("%w: pid %s has zero burst time", core.ErrDivision, p.ID)
			}
			m.QuantumSlicesUsed = trace.slices
			m.NormalizedTurnaroundTime = float64(m.TurnaroundTime) / float64(m.BurstTime)
		}
		details = append(details, m)
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].CompletionTime < details[j].CompletionTime
	})
	return details, nil
}

func calculateAverage(details []ProcessMetrics) (averageWaitingTime, averageTurnAroundTime float64) {
	var waitingTimeSum, turnAroundTimeSum float64
	for _, d := range details {
		waitingTimeSum += float64(d.WaitingTime)
		turnAroundTimeSum += float64(d.TurnaroundTime)
	}
	count := float64(len(details))
	return waitingTimeSum / count, turnAroundTimeSum / count
}

func generateStatistics(details []ProcessMetrics, discipline core.Discipline) (map[string]util.Statistic, error) {
	columns := map[string][]float64{}
	add := func(name string, v float64) {
		columns[name] = append(columns[name], v)
	}
	for _, d := range details {
		add("burst_time", float64(d.BurstTime))
		add("completion_time", float64(d.CompletionTime))
		add("turnaround_time", float64(d.TurnaroundTime))
		add("waiting_time", float64(d.WaitingTime))
		add("response_time", float64(d.ResponseTime))
		if discipline.Algorithm == core.RoundRobin {
			add("quantum_slices_used", float64(d.QuantumSlicesUsed))
			add("normalized_turnaround_time", d.NormalizedTurnaroundTime)
		}
	}
	return util.CalculateStatistics(columns)
}
