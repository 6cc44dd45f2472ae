package core

import (
	"fmt"
	"iter"
)

type IntervalKind string

const (
	KindProcess IntervalKind = "process"
	KindIdle    IntervalKind = "idle"
)

// ExecutionInterval is one bar of the Gantt chart: either a single run
// slice of a process or a stretch where nothing was ready.
type ExecutionInterval struct {
	Kind      IntervalKind
	ProcessID string
	Start     int
	End       int
}

func (e ExecutionInterval) Duration() int {
	return e.End - e.Start
}

// Timeline is the ordered, contiguous interval sequence of one run.
type Timeline []ExecutionInterval

func (t Timeline) All() iter.Seq[ExecutionInterval] {
	return func(yield func(ExecutionInterval) bool) {
		for _, e := range t {
			if !yield(e) {
				return
			}
		}
	}
}

func (t Timeline) Start() int {
	if len(t) == 0 {
		return 0
	}
	return t[0].Start
}

func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// ExecutionOrder returns process ids in the order they were first
// dispatched.
func (t Timeline) ExecutionOrder() []string {
	seen := make(map[string]bool)
	order := make([]string, 0)
	for _, e := range t {
		if e.Kind != KindProcess || seen[e.ProcessID] {
			continue
		}
		seen[e.ProcessID] = true
		order = append(order, e.ProcessID)
	}
	return order
}

// Verify checks that intervals are non-empty, contiguous and that no two
// idle intervals are adjacent.
func (t Timeline) Verify() error {
	for i, e := range t {
		if e.End <= e.Start {
			return fmt.Errorf("%w: interval %d [%d,%d) is empty", ErrInvariantViolation, i, e.Start, e.End)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if prev.End != e.Start {
			return fmt.Errorf("%w: interval %d starts at %d, previous ended at %d", ErrInvariantViolation, i, e.Start, prev.End)
		}
		if prev.Kind == KindIdle && e.Kind == KindIdle {
			return fmt.Errorf("%w: adjacent idle intervals at %d", ErrInvariantViolation, e.Start)
		}
	}
	return nil
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core driven by a discrete clock. Schedulers
// dispatch work onto it and it records the resulting timeline.
type Cpu struct {
	clock    int
	start    int
	timeline Timeline
	metric   CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// Boot sets the clock to the first arrival. The timeline starts there.
func (c *Cpu) Boot(at int) {
	c.clock = at
	c.start = at
}

// Execute runs pid for d time units starting at the current clock.
func (c *Cpu) Execute(pid string, d int) ExecutionInterval {
	interval := ExecutionInterval{Kind: KindProcess, ProcessID: pid, Start: c.clock, End: c.clock + d}
	c.timeline = append(c.timeline, interval)
	c.clock = interval.End
	c.metric.UtilizationTime += d
	return interval
}

// IdleUntil advances the clock to t, recording an idle interval when t is
// in the future.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.timeline = append(c.timeline, ExecutionInterval{Kind: KindIdle, Start: c.clock, End: t})
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

func (c *Cpu) Timeline() Timeline {
	out := make(Timeline, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock - c.start
	return m
}
