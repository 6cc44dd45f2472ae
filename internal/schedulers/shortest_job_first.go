package schedulers

import (
	"log"
	"slices"

	"cpu-scheduler/internal/core"
)

// scheduleShortestJobFirst is non-preemptive: whenever the cpu frees up it
// picks the shortest job that has already arrived and runs it to
// completion, even if a shorter one arrives meanwhile. A long job that
// arrives early can therefore starve while short jobs keep arriving.
func scheduleShortestJobFirst(jobs []*job, logger *log.Logger) *core.Cpu {
	logger.Println("running sjf algorithm ...")
	cpu := core.NewCpu()
	cpu.Boot(jobs[0].ArrivalTime)

	pending := jobs
	for len(pending) > 0 {
		shortest := -1
		for i, j := range pending {
			if j.ArrivalTime > cpu.Clock() {
				break // pending is sorted by arrival
			}
			if shortest == -1 || shorterJob(j, pending[shortest]) {
				shortest = i
			}
		}
		if shortest == -1 {
			cpu.IdleUntil(pending[0].ArrivalTime)
			continue
		}

		j := pending[shortest]
		pending = slices.Delete(pending, shortest, shortest+1)
		logger.Println("pid:", j.ID, "dispatched at", cpu.Clock())
		cpu.Execute(j.ID, j.BurstTime)
	}
	return cpu
}

func shorterJob(a, b *job) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.order < b.order
}
