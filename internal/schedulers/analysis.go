package schedulers

import (
	"fmt"
	"sort"
	"strings"

	"cpu-scheduler/internal/core"
)

// AnalysisSeparator joins the lines of SimulationResult.Analysis.
const AnalysisSeparator = " | "

func generateAnalysis(set *core.ProcessSet, timeline core.Timeline, details []ProcessMetrics, discipline core.Discipline) (string, error) {
	switch discipline.Algorithm {
	case core.FirstComeFirstServe:
		return analyzeConvoyEffect(set, timeline, details)
	case core.ShortestJobFirst:
		return analyzeShortestJobFirst(set, timeline), nil
	case core.RoundRobin:
		return analyzeRoundRobin(set, timeline, details, discipline.Quantum), nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownDiscipline, discipline.Algorithm)
}

// analyzeConvoyEffect reports a convoy when the longest job ran first and
// the jobs queued behind it waited longer in total than they would have if
// every job had been served in shortest-burst order.
func analyzeConvoyEffect(set *core.ProcessSet, timeline core.Timeline, details []ProcessMetrics) (string, error) {
	if set.Len() < 2 {
		return "Not enough processes to analyze the convoy effect.", nil
	}

	order := timeline.ExecutionOrder()
	byID := make(map[string]ProcessMetrics, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}
	longest := byID[order[0]]
	for _, id := range order[1:] {
		if byID[id].BurstTime > longest.BurstTime {
			longest = byID[id]
		}
	}
	if longest.ID != order[0] {
		return fmt.Sprintf("No convoy effect detected: the longest process %s (burst=%d) did not run first.", longest.ID, longest.BurstTime), nil
	}

	optimal, err := generateProcessDetails(set, scheduleShortestBurstOrder(jobsByArrival(set)).Timeline(), core.FCFS())
	if err != nil {
		return "", err
	}

	var fcfsWaiting, optimalWaiting int
	for _, d := range details {
		if d.ID != longest.ID {
			fcfsWaiting += d.WaitingTime
		}
	}
	for _, d := range optimal {
		if d.ID != longest.ID {
			optimalWaiting += d.WaitingTime
		}
	}

	if fcfsWaiting > optimalWaiting {
		return fmt.Sprintf("Convoy effect detected: %s (burst=%d) ran first and held %d process(es) behind it; their total waiting time is %d versus %d in shortest-burst order.",
			longest.ID, longest.BurstTime, len(details)-1, fcfsWaiting, optimalWaiting), nil
	}
	return fmt.Sprintf("No convoy effect detected: %s (burst=%d) ran first but the others waited %d, no more than %d in shortest-burst order.",
		longest.ID, longest.BurstTime, fcfsWaiting, optimalWaiting), nil
}

// scheduleShortestBurstOrder serves jobs strictly by burst time, idling
// until each one arrives. It is the reference ordering for convoy
// detection, not a selectable discipline.
func scheduleShortestBurstOrder(jobs []*job) *core.Cpu {
	cpu := core.NewCpu()
	cpu.Boot(jobs[0].ArrivalTime)
	sort.SliceStable(jobs, func(i, j int) bool {
		return shorterJob(jobs[i], jobs[j])
	})
	for _, j := range jobs {
		cpu.IdleUntil(j.ArrivalTime)
		cpu.Execute(j.ID, j.BurstTime)
	}
	return cpu
}

// analyzeShortestJobFirst contrasts the execution order with the pure
// burst-time order and lists jobs that overtook earlier, longer arrivals.
func analyzeShortestJobFirst(set *core.ProcessSet, timeline core.Timeline) string {
	if set.Len() < 2 {
		return "Not enough processes to analyze SJF reordering."
	}

	processes := set.Processes()
	byID := make(map[string]core.Process, len(processes))
	for _, p := range processes {
		byID[p.ID] = p
	}

	order := timeline.ExecutionOrder()
	byBurst := make([]core.Process, len(processes))
	copy(byBurst, processes)
	sort.SliceStable(byBurst, func(i, j int) bool {
		return byBurst[i].BurstTime < byBurst[j].BurstTime
	})
	bursts := make([]string, 0, len(byBurst))
	for _, p := range byBurst {
		bursts = append(bursts, fmt.Sprintf("%s(%d)", p.ID, p.BurstTime))
	}

	analysis := []string{
		"Execution order: " + strings.Join(order, " -> "),
		"Burst order: " + strings.Join(bursts, ", "),
	}

	for i, id := range order {
		p := byID[id]
		overtaken := make([]string, 0)
		for _, laterID := range order[i+1:] {
			later := byID[laterID]
			if later.ArrivalTime < p.ArrivalTime && later.BurstTime > p.BurstTime {
				overtaken = append(overtaken, laterID)
			}
		}
		if len(overtaken) > 0 {
			analysis = append(analysis, fmt.Sprintf("%s (burst=%d) ran before %s which arrived earlier", p.ID, p.BurstTime, strings.Join(overtaken, ", ")))
		}
	}

	analysis = append(analysis,
		"Minimizes average waiting time",
		"Non-preemptive: long processes may starve while shorter ones keep arriving")
	return strings.Join(analysis, AnalysisSeparator)
}

func analyzeRoundRobin(set *core.ProcessSet, timeline core.Timeline, details []ProcessMetrics, quantum int) string {
	slicesByID := make(map[string]int, len(details))
	for _, d := range details {
		slicesByID[d.ID] = d.QuantumSlicesUsed
	}
	perProcess := make([]string, 0, set.Len())
	for _, p := range set.All() {
		perProcess = append(perProcess, fmt.Sprintf("%s=%d", p.ID, slicesByID[p.ID]))
	}

	return strings.Join([]string{
		fmt.Sprintf("Quantum: %d", quantum),
		fmt.Sprintf("Context switches: %d", contextSwitches(timeline, set.Len())),
		"Slices: " + strings.Join(perProcess, ", "),
	}, AnalysisSeparator)
}

// contextSwitches counts every slice except each process's first one.
func contextSwitches(timeline core.Timeline, processCount int) int {
	slices := 0
	for e := range timeline.All() {
		if e.Kind == core.KindProcess {
			slices++
		}
	}
	return slices - processCount
}
