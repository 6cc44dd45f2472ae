package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// SimulationResult bundles everything computed for one run. Averages and
// statistics keep full precision.
type SimulationResult struct {
	Discipline            core.Discipline
	Timeline              core.Timeline
	Processes             []ProcessMetrics
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	Statistics            map[string]util.Statistic
	Analysis              string
	ContextSwitches       int
	Cpu                   core.CpuMetric
}

// Schedule simulates set under discipline. It never mutates set. A nil
// logger logs to log.Default().
func Schedule(set *core.ProcessSet, discipline core.Discipline, logger *log.Logger) (*SimulationResult, error) {
	cpu, err := BuildTimeline(set, discipline, logger)
	if err != nil {
		return nil, err
	}
	timeline := cpu.Timeline()

	details, err := generateProcessDetails(set, timeline, discipline)
	if err != nil {
		return nil, err
	}
	statistics, err := generateStatistics(details, discipline)
	if err != nil {
		return nil, err
	}
	analysis, err := generateAnalysis(set, timeline, details, discipline)
	if err != nil {
		return nil, err
	}

	averageWaitingTime, averageTurnAroundTime := calculateAverage(details)
	result := &SimulationResult{
		Discipline:            discipline,
		Timeline:              timeline,
		Processes:             details,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnAroundTime,
		Statistics:            statistics,
		Analysis:              analysis,
		Cpu:                   cpu.Metric(),
	}
	if discipline.Algorithm == core.RoundRobin {
		result.ContextSwitches = contextSwitches(timeline, set.Len())
	}
	return result, nil
}
