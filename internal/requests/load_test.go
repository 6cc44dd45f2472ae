package requests

import (
	"errors"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
)

func TestLoadJobsCSV(t *testing.T) {
	input := `pid,arrival_time,burst_time
# reference set
P1, 0, 8
P2, 1, 2
`
	jobs, err := LoadJobsCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 2 {
		t.Fatalf("jobs = %+v", jobs)
	}
	if jobs[1] != (Job{ProcessId: "P2", ArrivalTime: 1, BurstTime: 2}) {
		t.Errorf("jobs[1] = %+v", jobs[1])
	}
}

func TestLoadJobsCSVErrors(t *testing.T) {
	if _, err := LoadJobsCSV(strings.NewReader("P1,0\n")); !errors.Is(err, ErrInvalidJobFile) {
		t.Errorf("short row: %v", err)
	}
	_, err := LoadJobsCSV(strings.NewReader("P1,0,1\nP2,x,1\n"))
	if !errors.Is(err, ErrInvalidJobFile) || !errors.Is(err, core.ErrInvalidValue) {
		t.Errorf("non-numeric row: %v", err)
	}
}

func TestLoadJobsJSON(t *testing.T) {
	bare := `[{"pid":"A","arrival_time":0,"burst_time":2}]`
	wrapped := `{"jobs":[{"pid":"A","arrival_time":0,"burst_time":2}],"quantum":3}`
	for _, input := range []string{bare, wrapped} {
		jobs, err := LoadJobsJSON(strings.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		if len(jobs) != 1 || jobs[0].ProcessId != "A" || jobs[0].BurstTime != 2 {
			t.Errorf("jobs = %+v", jobs)
		}
	}
	if _, err := LoadJobsJSON(strings.NewReader("{")); !errors.Is(err, ErrInvalidJobFile) {
		t.Errorf("broken json: %v", err)
	}
}

func TestScheduleRequestsProcessSet(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 1},
		{ProcessId: "A", ArrivalTime: 1, BurstTime: 1},
	}}
	if _, err := request.ProcessSet(0); !errors.Is(err, core.ErrDuplicateID) {
		t.Errorf("expected duplicate id error, got %v", err)
	}
}

func TestScheduleRequestsProcessSetMaxTime(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 60},
		{ProcessId: "B", ArrivalTime: 0, BurstTime: 60},
	}}
	if _, err := request.ProcessSet(100); !errors.Is(err, core.ErrInvalidValue) {
		t.Errorf("total burst over limit: %v", err)
	}
	set, err := request.ProcessSet(120)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d", set.Len())
	}
}
