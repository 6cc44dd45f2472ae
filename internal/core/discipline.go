package core

import (
	"fmt"
	"strings"
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "FCFS"
	ShortestJobFirst    Algorithm = "SJF"
	RoundRobin          Algorithm = "RR"
)

// Algorithms lists every supported discipline in display order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin}

// Discipline is the active scheduling policy. Quantum is only meaningful
// for RoundRobin and is zero otherwise.
type Discipline struct {
	Algorithm Algorithm `json:"algorithm"`
	Quantum   int       `json:"quantum,omitempty"`
}

func FCFS() Discipline { return Discipline{Algorithm: FirstComeFirstServe} }

func SJF() Discipline { return Discipline{Algorithm: ShortestJobFirst} }

func RR(quantum int) Discipline { return Discipline{Algorithm: RoundRobin, Quantum: quantum} }

func (d Discipline) String() string {
	if d.Algorithm == RoundRobin {
		return fmt.Sprintf("%s(q=%d)", d.Algorithm, d.Quantum)
	}
	return string(d.Algorithm)
}

func (d Discipline) Validate() error {
	switch d.Algorithm {
	case FirstComeFirstServe, ShortestJobFirst:
		return nil
	case RoundRobin:
		if d.Quantum <= 0 {
			return fmt.Errorf("%w: time quantum %d must be positive", ErrInvalidValue, d.Quantum)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDiscipline, d.Algorithm)
	}
}

// ParseAlgorithm accepts the usual spellings of each discipline name,
// case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "FCFS", "FIFO", "FIRST_COME_FIRST_SERVE":
		return FirstComeFirstServe, nil
	case "SJF", "SHORTEST_JOB_FIRST":
		return ShortestJobFirst, nil
	case "RR", "ROUND_ROBIN", "ROUNDROBIN":
		return RoundRobin, nil
	}
	return "", fmt.Errorf("%w: %q (supported: FCFS, SJF, RR)", ErrUnknownDiscipline, name)
}

// ParseDiscipline resolves name and an optional quantum into a validated
// Discipline. A nil quantum for RR falls back to defaultQuantum.
func ParseDiscipline(name string, quantum *int, defaultQuantum int) (Discipline, error) {
	algorithm, err := ParseAlgorithm(name)
	if err != nil {
		return Discipline{}, err
	}
	d := Discipline{Algorithm: algorithm}
	if algorithm == RoundRobin {
		d.Quantum = defaultQuantum
		if quantum != nil {
			d.Quantum = *quantum
		}
	}
	if err := d.Validate(); err != nil {
		return Discipline{}, err
	}
	return d, nil
}
