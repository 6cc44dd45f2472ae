package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
)

// scheduleRoundRobin grants each ready job at most timeQuantum units per
// activation. Jobs that arrive during a slice (its end included) join the
// ready queue before the preempted job is put back.
func scheduleRoundRobin(jobs []*job, timeQuantum int, logger *log.Logger) *core.Cpu {
	logger.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)
	cpu := core.NewCpu()
	cpu.Boot(jobs[0].ArrivalTime)

	// a job is in the queue at most once, so len(jobs) never blocks
	roundRobinChannel := make(chan *job, len(jobs))
	next := 0
	admit := func(until int) {
		for next < len(jobs) && jobs[next].ArrivalTime <= until {
			roundRobinChannel <- jobs[next]
			next++
		}
	}
	admit(cpu.Clock())

	for {
		select {
		case j := <-roundRobinChannel:
			slice := min(timeQuantum, j.remaining)
			cpu.Execute(j.ID, slice)
			j.remaining -= slice
			admit(cpu.Clock())
			if j.remaining > 0 {
				roundRobinChannel <- j
				continue
			}
			logger.Println("pid:", j.ID, "completed at", cpu.Clock())
		default:
			if next == len(jobs) {
				return cpu
			}
			cpu.IdleUntil(jobs[next].ArrivalTime)
			admit(cpu.Clock())
		}
	}
}
