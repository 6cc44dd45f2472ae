package util

import (
	"errors"
	"math"
	"testing"

	"cpu-scheduler/internal/core"
)

func TestCalculateStatistic(t *testing.T) {
	stat, err := CalculateStatistic([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatal(err)
	}
	// population standard deviation of the classic example is exactly 2
	if stat.Mean != 5 || stat.StdDev != 2 || stat.Min != 2 || stat.Max != 9 {
		t.Errorf("stat = %+v", stat)
	}

	single, err := CalculateStatistic([]float64{3})
	if err != nil {
		t.Fatal(err)
	}
	if single.StdDev != 0 || single.Min != 3 || single.Max != 3 {
		t.Errorf("single = %+v", single)
	}
}

func TestCalculateStatisticEmpty(t *testing.T) {
	if _, err := CalculateStatistic(nil); !errors.Is(err, core.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := CalculateStatistics(map[string][]float64{"waiting_time": {}}); !errors.Is(err, core.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCalculateStatistics(t *testing.T) {
	stats, err := CalculateStatistics(map[string][]float64{
		"waiting_time":    {0, 7, 8, 8},
		"turnaround_time": {8, 9, 9, 12},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := stats["waiting_time"].Mean; got != 5.75 {
		t.Errorf("waiting mean = %v", got)
	}
	want := math.Sqrt((2.25 + 0.25 + 0.25 + 6.25) / 4)
	if got := stats["turnaround_time"].StdDev; math.Abs(got-want) > 1e-12 {
		t.Errorf("turnaround std dev = %v, want %v", got, want)
	}
}

func TestRound2(t *testing.T) {
	tests := map[float64]float64{
		5.75:     5.75,
		4.333333: 4.33,
		2.666666: 2.67,
		0:        0,
	}
	for in, want := range tests {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}
