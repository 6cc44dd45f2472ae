package requests

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrInvalidJobFile = errors.New("invalid job file")

// LoadJobsCSV reads "pid,arrival_time,burst_time" rows. A first row whose
// time columns are not numeric is treated as a header.
func LoadJobsCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidJobFile, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: line %d has %d columns, want 3", ErrInvalidJobFile, i+1, len(row))
		}
		arrival, errArrival := strconv.Atoi(strings.TrimSpace(row[1]))
		burst, errBurst := strconv.Atoi(strings.TrimSpace(row[2]))
		if errArrival != nil || errBurst != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidJobFile, i+1, core.ErrInvalidValue)
		}
		jobs = append(jobs, Job{ProcessId: row[0], ArrivalTime: arrival, BurstTime: burst})
	}
	return jobs, nil
}

// LoadJobsJSON accepts either a bare array of jobs or a ScheduleRequests
// object.
func LoadJobsJSON(r io.Reader) ([]Job, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err == nil {
		return jobs, nil
	}
	var request ScheduleRequests
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJobFile, err)
	}
	return request.Jobs, nil
}
