// cpu-scheduler simulates FCFS, non-preemptive SJF and round robin CPU
// scheduling over a set of processes, either as an HTTP service or from
// the command line.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/simulator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "cpu-scheduler",
		Short:        "CPU scheduling simulator (FCFS, SJF, RR)",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml)")

	loadConfig := func() (*config.SchedulerConfig, error) {
		if configPath == "" {
			return config.GetSchedulerConfig(), nil
		}
		return config.Load(configPath)
	}

	var servePort int
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if servePort > 0 {
				cfg.Port = servePort
			}
			sim, err := simulator.NewSimulator(cfg.DefaultDiscipline(), cfg.RoundRobinTimeQuantum, cfg.MaxTime, nil)
			if err != nil {
				return err
			}
			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, sim))
			log.Printf("listening on :%d", cfg.Port)
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")

	var (
		simulateFile      string
		simulateAlgorithm string
		simulateQuantum   int
		simulateJSON      bool
	)
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scheduling simulation over a process file",
		Long: `Reads processes from a CSV (pid,arrival_time,burst_time) or JSON file
and prints the Gantt chart, per-process metrics, statistics and analysis.
--algorithm accepts FCFS, SJF, RR or all.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			set, err := loadProcessSet(simulateFile, cfg.MaxTime)
			if err != nil {
				return err
			}

			var quantum *int
			if cmd.Flags().Changed("quantum") {
				quantum = &simulateQuantum
			}
			names := []string{simulateAlgorithm}
			if strings.EqualFold(simulateAlgorithm, "all") {
				names = names[:0]
				for _, a := range core.Algorithms {
					names = append(names, string(a))
				}
			}

			results := make([]*schedulers.SimulationResult, 0, len(names))
			for _, name := range names {
				discipline, err := core.ParseDiscipline(name, quantum, cfg.RoundRobinTimeQuantum)
				if err != nil {
					return err
				}
				result, err := schedulers.Schedule(set, discipline, nil)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			out := cmd.OutOrStdout()
			if simulateJSON {
				payload := make([]responses.ScheduleResponse, 0, len(results))
				for _, r := range results {
					payload = append(payload, responses.NewScheduleResponse(r))
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}
			for _, r := range results {
				report.Render(out, r)
			}
			return nil
		},
	}
	simulateCmd.Flags().StringVarP(&simulateFile, "file", "f", "", "process file (.csv or .json)")
	simulateCmd.Flags().StringVarP(&simulateAlgorithm, "algorithm", "a", "all", "FCFS, SJF, RR or all")
	simulateCmd.Flags().IntVarP(&simulateQuantum, "quantum", "q", 0, "round robin time quantum (default from config)")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "print results as JSON")
	_ = simulateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(serveCmd, simulateCmd)
	return rootCmd
}

func loadProcessSet(path string, maxTime int) (*core.ProcessSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var jobs []requests.Job
	if strings.EqualFold(filepath.Ext(path), ".json") {
		jobs, err = requests.LoadJobsJSON(f)
	} else {
		jobs, err = requests.LoadJobsCSV(f)
	}
	if err != nil {
		return nil, err
	}
	return requests.ScheduleRequests{Jobs: jobs}.ProcessSet(maxTime)
}
