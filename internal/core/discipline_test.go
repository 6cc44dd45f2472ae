package core

import (
	"errors"
	"testing"
)

func TestParseDiscipline(t *testing.T) {
	three, zero := 3, 0
	tests := []struct {
		name    string
		quantum *int
		want    Discipline
		wantErr error
	}{
		{"fcfs", nil, FCFS(), nil},
		{"Sjf", nil, SJF(), nil},
		{"rr", &three, RR(3), nil},
		{"round_robin", nil, RR(2), nil},
		{"RR", &zero, Discipline{}, ErrInvalidValue},
		{"priority", nil, Discipline{}, ErrUnknownDiscipline},
		{"", nil, Discipline{}, ErrUnknownDiscipline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDiscipline(tt.name, tt.quantum, 2)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDisciplineValidate(t *testing.T) {
	if err := (Discipline{Algorithm: "MLFQ"}).Validate(); !errors.Is(err, ErrUnknownDiscipline) {
		t.Errorf("expected ErrUnknownDiscipline, got %v", err)
	}
	if err := RR(-1).Validate(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
	if s := RR(4).String(); s != "RR(q=4)" {
		t.Errorf("String() = %q", s)
	}
}
