package responses

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/simulator"
)

func TestNewScheduleResponse(t *testing.T) {
	set, err := core.NewProcessSetFrom([]core.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 3},
		{ID: "P2", ArrivalTime: 5, BurstTime: 1},
		{ID: "P3", ArrivalTime: 5, BurstTime: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := schedulers.Schedule(set, core.RR(2), nil)
	if err != nil {
		t.Fatal(err)
	}
	response := NewScheduleResponse(result)

	if response.Algorithm != "RR" || response.TimeQuantum != 2 {
		t.Errorf("algorithm = %s q=%d", response.Algorithm, response.TimeQuantum)
	}
	// P1 0-2, P1 2-3, idle 3-5, P2 5-6, P3 6-8
	if len(response.GanttChart) != 5 {
		t.Fatalf("gantt = %+v", response.GanttChart)
	}
	idle := response.GanttChart[2]
	if idle.Kind != "idle" || idle.ProcessId != "" || idle.Duration != 2 {
		t.Errorf("idle interval = %+v", idle)
	}
	// waiting 0, 0, 1
	if response.AverageWaitingTime != 0.33 {
		t.Errorf("average waiting = %v, want 0.33", response.AverageWaitingTime)
	}
	if response.CpuUtilization != 0.75 || response.TotalTime != 8 || response.IdleTime != 2 {
		t.Errorf("cpu = %v util, %v total, %v idle", response.CpuUtilization, response.TotalTime, response.IdleTime)
	}
	if response.ContextSwitches != 1 {
		t.Errorf("context switches = %d", response.ContextSwitches)
	}

	raw, err := json.Marshal(response)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"gantt_chart", "processes", "average_waiting_time", "average_turnaround_time", "analysis", "statistics"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("serialized response missing %q", key)
		}
	}
}

func TestResetRoundTripIsByteIdentical(t *testing.T) {
	sim, err := simulator.NewSimulator(core.FCFS(), 2, 0, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	run := func() []byte {
		for _, p := range []core.Process{
			{ID: "P1", ArrivalTime: 0, BurstTime: 8},
			{ID: "P2", ArrivalTime: 1, BurstTime: 2},
			{ID: "P3", ArrivalTime: 2, BurstTime: 1},
			{ID: "P4", ArrivalTime: 3, BurstTime: 4},
		} {
			if err := sim.AddProcess(p.ID, p.ArrivalTime, p.BurstTime); err != nil {
				t.Fatal(err)
			}
		}
		if err := sim.SetDiscipline("RR", nil); err != nil {
			t.Fatal(err)
		}
		result, err := sim.Schedule()
		if err != nil {
			t.Fatal(err)
		}
		raw, err := json.Marshal(NewScheduleResponse(result))
		if err != nil {
			t.Fatal(err)
		}
		return raw
	}

	first := run()
	sim.Reset()
	second := run()
	if !bytes.Equal(first, second) {
		t.Errorf("results differ after reset:\n%s\n%s", first, second)
	}
}

func TestNewStateResponse(t *testing.T) {
	state := simulator.State{
		Status:     simulator.StatusConfigured,
		Processes:  []core.Process{{ID: "P1", ArrivalTime: 0, BurstTime: 1}},
		Discipline: core.SJF(),
	}
	response := NewStateResponse(state)
	if response.Status != "configured" || response.Algorithm != "SJF" || response.TimeQuantum != 0 || response.ProcessCount != 1 {
		t.Errorf("response = %+v", response)
	}
}
