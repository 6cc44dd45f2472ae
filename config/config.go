package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"cpu-scheduler/internal/core"
)

type SchedulerConfig struct {
	Port                  int
	DefaultAlgorithm      core.Algorithm
	RoundRobinTimeQuantum int
	MaxTime               int
}

// DefaultDiscipline is the discipline the simulator starts with and
// returns to on reset.
func (c *SchedulerConfig) DefaultDiscipline() core.Discipline {
	if c.DefaultAlgorithm == core.RoundRobin {
		return core.RR(c.RoundRobinTimeQuantum)
	}
	return core.Discipline{Algorithm: c.DefaultAlgorithm}
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits the process if it
// is invalid.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads the config file at path, or config.yaml from the working
// directory when path is empty. A missing default file is not an error.
// Every key can be overridden by a CPUSCHED_ environment variable, e.g.
// CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.default_algorithm", string(core.FirstComeFirstServe))
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_time", core.DefaultMaxTime)

	v.SetEnvPrefix("cpusched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		log.Println("no config file found, using defaults")
	}

	algorithm, err := core.ParseAlgorithm(v.GetString("scheduler.default_algorithm"))
	if err != nil {
		return nil, err
	}
	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		DefaultAlgorithm:      algorithm,
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxTime:               v.GetInt("scheduler.max_time"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("%w: scheduler.round_robin.time_quantum must be positive, got %d", core.ErrInvalidValue, cfg.RoundRobinTimeQuantum)
	}
	if cfg.MaxTime <= 0 {
		return nil, fmt.Errorf("%w: scheduler.max_time must be positive, got %d", core.ErrInvalidValue, cfg.MaxTime)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", core.ErrInvalidValue, cfg.Port)
	}
	return cfg, nil
}
