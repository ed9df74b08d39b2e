package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/internal/service"
)

// Exit codes.
const (
	exitError  = 1
	exitNoPath = 2
)

// app is the state shared by subcommands once the root pre-run has
// resolved the configuration.
type app struct {
	cfg      config.Config
	log      *logrus.Logger
	registry *prometheus.Registry
	svc      *service.Service
}

// newRootCmd builds the command tree. Each call returns independent state,
// so tests can execute it repeatedly.
func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "gridpath finds the cheapest turn-penalized route through a grid",
		Long:          `gridpath solves '#'/'S'/'E' text grids where turning costs 1000 and moving costs 1, and counts the one-wall shortcuts that shorten the plain step-counted route.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("budget", 0, "Maximum states a search may finalize (0 = unlimited)")
	rootCmd.PersistentFlags().Bool("color", true, "Colour rendered grids")

	rootCmd.AddCommand(
		newSolveCmd(a),
		newCheatsCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration, applies explicitly set flags over it and
// builds the logger, metrics and service.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("budget") {
		cfg.StepBudget, _ = flags.GetInt("budget")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetBool("color")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.registry = prometheus.NewRegistry()
	a.svc = service.New(log, metrics.New(a.registry), cfg.StepBudget)
	return nil
}

// load opens and parses a grid file; "-" reads standard input.
func (a *app) load(cmd *cobra.Command, path string) (*gridmap.GridMap, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	m, err := a.svc.Load(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if service.IsNoPath(err) {
		return exitNoPath
	}
	return exitError
}

// Execute runs the command tree and exits on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		os.Exit(exitCode(err))
	}
}
