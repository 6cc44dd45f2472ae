package util

import (
	"fmt"
	"math"

	"cpu-scheduler/internal/core"
)

// Statistic summarizes one numeric column. StdDev is the population
// standard deviation.
type Statistic struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func CalculateStatistic(values []float64) (Statistic, error) {
	if len(values) == 0 {
		return Statistic{}, fmt.Errorf("%w: statistics need at least one value", core.ErrEmptyInput)
	}
	mean := Mean(values)
	stat := Statistic{Mean: mean, Min: values[0], Max: values[0]}

	var squares float64
	for _, v := range values {
		squares += (v - mean) * (v - mean)
		stat.Min = math.Min(stat.Min, v)
		stat.Max = math.Max(stat.Max, v)
	}
	stat.StdDev = math.Sqrt(squares / float64(len(values)))
	return stat, nil
}

// CalculateStatistics aggregates every named column. All columns are
// expected to have one value per process.
func CalculateStatistics(columns map[string][]float64) (map[string]Statistic, error) {
	stats := make(map[string]Statistic, len(columns))
	for name, values := range columns {
		stat, err := CalculateStatistic(values)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		stats[name] = stat
	}
	return stats, nil
}

// Round2 rounds to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
