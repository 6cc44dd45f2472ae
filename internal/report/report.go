package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

// Render writes a human readable report of result: Gantt chart, per
// process table, statistics and analysis.
func Render(w io.Writer, result *schedulers.SimulationResult) {
	outputTitle(w, result.Discipline.String())
	outputGantt(w, result.Timeline)
	outputSchedule(w, result)
	outputStatistics(w, result)
	_, _ = fmt.Fprintln(w, "Analysis")
	for _, line := range strings.Split(result.Analysis, schedulers.AnalysisSeparator) {
		_, _ = fmt.Fprintln(w, "  "+line)
	}
	_, _ = fmt.Fprintln(w)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline core.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for e := range timeline.All() {
		label := e.ProcessID
		if e.Kind == core.KindIdle {
			label = "idle"
		}
		padding := strings.Repeat(" ", max(8-len(label), 0)/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for e := range timeline.All() {
		_, _ = fmt.Fprint(w, e.Start, "\t")
	}
	_, _ = fmt.Fprintf(w, "%d\n\n", timeline.Makespan())
}

func outputSchedule(w io.Writer, result *schedulers.SimulationResult) {
	roundRobin := result.Discipline.Algorithm == core.RoundRobin
	header := []string{"ID", "Arrival", "Burst", "Start", "Completion", "Turnaround", "Wait", "Response"}
	if roundRobin {
		header = append(header, "Slices", "Normalized")
	}

	rows := make([][]string, 0, len(result.Processes))
	for _, p := range result.Processes {
		row := []string{
			p.ID,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ResponseTime),
		}
		if roundRobin {
			row = append(row, fmt.Sprint(p.QuantumSlicesUsed), fmt.Sprintf("%.2f", p.NormalizedTurnaroundTime))
		}
		rows = append(rows, row)
	}

	footer := make([]string, len(header))
	footer[5] = fmt.Sprintf("Average\n%.2f", result.AverageTurnaroundTime)
	footer[6] = fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime)
	if roundRobin {
		footer[8] = fmt.Sprintf("Switches\n%d", result.ContextSwitches)
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()
}

func outputStatistics(w io.Writer, result *schedulers.SimulationResult) {
	names := make([]string, 0, len(result.Statistics))
	for name := range result.Statistics {
		names = append(names, name)
	}
	sort.Strings(names)

	_, _ = fmt.Fprintln(w, "Statistics")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Mean", "Std dev", "Min", "Max"})
	for _, name := range names {
		s := result.Statistics[name]
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", s.Mean),
			fmt.Sprintf("%.2f", s.StdDev),
			fmt.Sprintf("%.2f", s.Min),
			fmt.Sprintf("%.2f", s.Max),
		})
	}
	table.SetFooter([]string{"", "", "", "Utilization", fmt.Sprintf("%d/%d", result.Cpu.UtilizationTime, result.Cpu.TotalTime)})
	table.Render()
}
