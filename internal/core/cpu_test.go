package core

import (
	"errors"
	"testing"
)

func TestCpuRecordsTimeline(t *testing.T) {
	cpu := NewCpu()
	cpu.Boot(1)
	cpu.Execute("P1", 2)
	cpu.IdleUntil(3) // no-op, clock already at 3
	cpu.IdleUntil(5)
	cpu.Execute("P2", 1)

	want := Timeline{
		{Kind: KindProcess, ProcessID: "P1", Start: 1, End: 3},
		{Kind: KindIdle, Start: 3, End: 5},
		{Kind: KindProcess, ProcessID: "P2", Start: 5, End: 6},
	}
	got := cpu.Timeline()
	if len(got) != len(want) {
		t.Fatalf("timeline = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interval %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if err := got.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}

	m := cpu.Metric()
	if m.TotalTime != 5 || m.UtilizationTime != 3 || m.IdleTime != 2 {
		t.Errorf("metric = %+v", m)
	}
	if got.Start() != 1 || got.Makespan() != 6 {
		t.Errorf("Start/Makespan = %d/%d", got.Start(), got.Makespan())
	}
}

func TestTimelineExecutionOrder(t *testing.T) {
	timeline := Timeline{
		{Kind: KindProcess, ProcessID: "A", Start: 0, End: 2},
		{Kind: KindProcess, ProcessID: "B", Start: 2, End: 4},
		{Kind: KindProcess, ProcessID: "A", Start: 4, End: 5},
		{Kind: KindIdle, Start: 5, End: 6},
		{Kind: KindProcess, ProcessID: "C", Start: 6, End: 7},
	}
	order := timeline.ExecutionOrder()
	if len(order) != 3 || order[0] != "A" || order[1] != "B" || order[2] != "C" {
		t.Errorf("ExecutionOrder() = %v", order)
	}
}

func TestTimelineVerify(t *testing.T) {
	tests := []struct {
		name     string
		timeline Timeline
	}{
		{"gap", Timeline{{Kind: KindProcess, ProcessID: "A", Start: 0, End: 2}, {Kind: KindProcess, ProcessID: "B", Start: 3, End: 4}}},
		{"overlap", Timeline{{Kind: KindProcess, ProcessID: "A", Start: 0, End: 2}, {Kind: KindProcess, ProcessID: "B", Start: 1, End: 4}}},
		{"empty interval", Timeline{{Kind: KindProcess, ProcessID: "A", Start: 2, End: 2}}},
		{"double idle", Timeline{{Kind: KindIdle, Start: 0, End: 2}, {Kind: KindIdle, Start: 2, End: 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.timeline.Verify(); !errors.Is(err, ErrInvariantViolation) {
				t.Errorf("Verify() = %v, want ErrInvariantViolation", err)
			}
		})
	}
}
