package core

import "errors"

var (
	ErrInvalidValue       = errors.New("invalid value")
	ErrDuplicateID        = errors.New("duplicate process id")
	ErrEmptyInput         = errors.New("no processes to schedule")
	ErrUnknownDiscipline  = errors.New("unknown scheduling discipline")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrDivision           = errors.New("division by zero")
)
