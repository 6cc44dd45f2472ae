package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
)

// scheduleFirstComeFirstServe runs every job to completion in arrival
// order. jobs must already be sorted by arrival.
func scheduleFirstComeFirstServe(jobs []*job, logger *log.Logger) *core.Cpu {
	logger.Println("running fcfs algorithm ...")
	cpu := core.NewCpu()
	cpu.Boot(jobs[0].ArrivalTime)

	for _, j := range jobs {
		cpu.IdleUntil(j.ArrivalTime)
		cpu.Execute(j.ID, j.BurstTime)
	}
	return cpu
}
