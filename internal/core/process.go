package core

import (
	"fmt"
	"iter"
	"strings"
)

// Process is the static descriptor of a job submitted to the simulator.
type Process struct {
	ID          string `json:"pid"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

func (p Process) validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: process id must not be empty", ErrInvalidValue)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: pid %s arrival time %d is negative", ErrInvalidValue, p.ID, p.ArrivalTime)
	}
	if p.BurstTime <= 0 {
		return fmt.Errorf("%w: pid %s burst time %d must be positive", ErrInvalidValue, p.ID, p.BurstTime)
	}
	return nil
}

// DefaultMaxTime bounds simulated time when no limit is configured.
const DefaultMaxTime = 1_000_000

// ProcessSet keeps processes in insertion order. The position of a process
// in the set is its tie-break rank for every discipline.
//
// Every process must finish its burst by maxTime even if it ran alone, and
// the bursts of the whole set must fit in maxTime. Together these keep the
// makespan within 2*maxTime and the timeline within maxTime intervals.
type ProcessSet struct {
	processes  []Process
	ids        map[string]struct{}
	maxTime    int
	totalBurst int
}

func NewProcessSet() *ProcessSet {
	return NewBoundedProcessSet(DefaultMaxTime)
}

// NewBoundedProcessSet returns an empty set limited to maxTime. A
// non-positive maxTime selects DefaultMaxTime.
func NewBoundedProcessSet(maxTime int) *ProcessSet {
	if maxTime <= 0 {
		maxTime = DefaultMaxTime
	}
	return &ProcessSet{ids: make(map[string]struct{}), maxTime: maxTime}
}

// Add validates p and appends it. The id is stored with surrounding
// whitespace trimmed.
func (s *ProcessSet) Add(p Process) error {
	p.ID = strings.TrimSpace(p.ID)
	if err := p.validate(); err != nil {
		return err
	}
	if _, ok := s.ids[p.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
	}
	// compared by subtraction so huge inputs cannot overflow
	if p.ArrivalTime > s.maxTime || p.BurstTime > s.maxTime-p.ArrivalTime {
		return fmt.Errorf("%w: pid %s arrival %d + burst %d exceeds max time %d", ErrInvalidValue, p.ID, p.ArrivalTime, p.BurstTime, s.maxTime)
	}
	if p.BurstTime > s.maxTime-s.totalBurst {
		return fmt.Errorf("%w: pid %s burst %d brings total burst over max time %d", ErrInvalidValue, p.ID, p.BurstTime, s.maxTime)
	}
	s.ids[p.ID] = struct{}{}
	s.processes = append(s.processes, p)
	s.totalBurst += p.BurstTime
	return nil
}

func (s *ProcessSet) Clear() {
	s.processes = nil
	s.ids = make(map[string]struct{})
	s.totalBurst = 0
}

func (s *ProcessSet) Len() int {
	return len(s.processes)
}

// All yields (insertion index, process) pairs. The sequence can be ranged
// over any number of times.
func (s *ProcessSet) All() iter.Seq2[int, Process] {
	return func(yield func(int, Process) bool) {
		for i, p := range s.processes {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Processes returns a copy of the processes in insertion order.
func (s *ProcessSet) Processes() []Process {
	out := make([]Process, len(s.processes))
	copy(out, s.processes)
	return out
}

// Clone returns an independent snapshot of the set.
func (s *ProcessSet) Clone() *ProcessSet {
	c := NewBoundedProcessSet(s.maxTime)
	c.processes = s.Processes()
	c.totalBurst = s.totalBurst
	for id := range s.ids {
		c.ids[id] = struct{}{}
	}
	return c
}

// NewProcessSetFrom builds a set from ps, failing on the first invalid or
// duplicate entry.
func NewProcessSetFrom(ps []Process) (*ProcessSet, error) {
	set := NewProcessSet()
	for _, p := range ps {
		if err := set.Add(p); err != nil {
			return nil, err
		}
	}
	return set, nil
}
