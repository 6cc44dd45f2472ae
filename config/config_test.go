package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cpu-scheduler/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
port: 8080
scheduler:
  default_algorithm: rr
  max_time: 5000
  round_robin:
    time_quantum: 4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8080 || cfg.DefaultAlgorithm != core.RoundRobin || cfg.RoundRobinTimeQuantum != 4 || cfg.MaxTime != 5000 {
		t.Errorf("cfg = %+v", cfg)
	}
	if d := cfg.DefaultDiscipline(); d != core.RR(4) {
		t.Errorf("DefaultDiscipline() = %+v", d)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "port: 9000\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultAlgorithm != core.FirstComeFirstServe || cfg.RoundRobinTimeQuantum != 2 || cfg.MaxTime != core.DefaultMaxTime {
		t.Errorf("cfg = %+v", cfg)
	}
	if d := cfg.DefaultDiscipline(); d != core.FCFS() {
		t.Errorf("DefaultDiscipline() = %+v", d)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	cfg, err := Load(writeConfig(t, "port: 9000\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RoundRobinTimeQuantum != 7 {
		t.Errorf("quantum = %d, want 7 from environment", cfg.RoundRobinTimeQuantum)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]struct {
		body    string
		wantErr error
	}{
		"zero quantum":      {"scheduler:\n  round_robin:\n    time_quantum: 0\n", core.ErrInvalidValue},
		"unknown algorithm": {"scheduler:\n  default_algorithm: lottery\n", core.ErrUnknownDiscipline},
		"bad port":          {"port: 70000\n", core.ErrInvalidValue},
		"zero max time":     {"scheduler:\n  max_time: 0\n", core.ErrInvalidValue},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("explicit missing config file must fail")
	}
}
