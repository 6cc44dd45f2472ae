package simulator

import (
	"log"
	"sync"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusConfigured Status = "configured"
	StatusScheduled  Status = "scheduled"
)

// State is a read-only snapshot of the simulator.
type State struct {
	Status     Status
	Processes  []core.Process
	Discipline core.Discipline
}

// Simulator owns the current process set and discipline shared between
// requests. All methods are safe for concurrent use. A schedule run works
// on a snapshot of the set and only commits its result if nothing changed
// while it computed.
type Simulator struct {
	mu sync.Mutex

	defaultDiscipline core.Discipline
	defaultQuantum    int
	logger            *log.Logger

	processes  *core.ProcessSet
	discipline core.Discipline
	status     Status
	result     *schedulers.SimulationResult
	version    int
}

// NewSimulator returns an idle simulator. defaultQuantum is used when RR is
// selected without an explicit quantum and maxTime bounds every timing value
// (zero means core.DefaultMaxTime); a nil logger logs to log.Default().
func NewSimulator(defaultDiscipline core.Discipline, defaultQuantum, maxTime int, logger *log.Logger) (*Simulator, error) {
	if err := defaultDiscipline.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Simulator{
		defaultDiscipline: defaultDiscipline,
		defaultQuantum:    defaultQuantum,
		logger:            logger,
		processes:         core.NewBoundedProcessSet(maxTime),
		discipline:        defaultDiscipline,
		status:            StatusIdle,
	}, nil
}

// AddProcess appends a process. Adding to a scheduled simulator discards
// the stored result.
func (s *Simulator) AddProcess(id string, arrivalTime, burstTime int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := core.Process{ID: id, ArrivalTime: arrivalTime, BurstTime: burstTime}
	if err := s.processes.Add(p); err != nil {
		s.logger.Println("add process rejected:", err)
		return err
	}
	s.logger.Printf("pid: %s added (arrival=%d, burst=%d)", id, arrivalTime, burstTime)
	s.version++
	s.result = nil
	s.status = StatusConfigured
	return nil
}

// SetDiscipline switches the active discipline by name. quantum may be nil,
// in which case round robin uses the default quantum.
func (s *Simulator) SetDiscipline(name string, quantum *int) error {
	d, err := core.ParseDiscipline(name, quantum, s.defaultQuantum)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.discipline = d
	s.version++
	s.result = nil
	if s.processes.Len() > 0 {
		s.status = StatusConfigured
	}
	s.logger.Println("discipline changed to", d)
	return nil
}

// Schedule computes the result for the current set and discipline. Calling
// it again without changes recomputes the same result. The lock is not held
// while the timeline is built; a result computed against a set that changed
// meanwhile is returned to the caller but not stored.
func (s *Simulator) Schedule() (*schedulers.SimulationResult, error) {
	s.mu.Lock()
	if s.processes.Len() == 0 {
		s.mu.Unlock()
		return nil, core.ErrEmptyInput
	}
	set := s.processes.Clone()
	discipline := s.discipline
	version := s.version
	s.mu.Unlock()

	result, err := schedulers.Schedule(set, discipline, s.logger)
	if err != nil {
		s.logger.Println("schedule failed:", err)
		return nil, err
	}
	if !s.commit(version, result) {
		s.logger.Println("schedule result discarded, simulator changed while computing")
	}
	return result, nil
}

// commit stores result if the simulator is still at version.
func (s *Simulator) commit(version int, result *schedulers.SimulationResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != version {
		return false
	}
	s.result = result
	s.status = StatusScheduled
	return true
}

// Result returns the last computed result, or nil unless the simulator is
// in the scheduled state.
func (s *Simulator) Result() *schedulers.SimulationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Reset clears every process and restores the default discipline.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processes.Clear()
	s.discipline = s.defaultDiscipline
	s.version++
	s.result = nil
	s.status = StatusIdle
	s.logger.Println("simulator reset")
}

func (s *Simulator) CurrentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Status:     s.status,
		Processes:  s.processes.Processes(),
		Discipline: s.discipline,
	}
}
