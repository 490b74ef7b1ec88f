package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/springs/aggregate"
	"github.com/katalvlaran/springs/internal/config"
	"github.com/katalvlaran/springs/internal/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg     *config.Config
	logger  *zap.Logger
	metrics *aggregate.Metrics
	reg     *prometheus.Registry
}

// newRootCmd builds a fresh command tree; tests call it once per case.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:   "springs",
		Short: "springs - count arrangements of damaged-spring condition records",
		Long: `springs reads condition records, one per line:

  ???.### 1,1,3

and counts how many ways the unknown positions ('?') can be resolved to
damaged ('#') or operational ('.') so that the runs of damaged springs match
the run list exactly.

Settings come from flags, SPRINGS_* environment variables and an optional
YAML config file (default .springs.yaml in the working directory).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is .springs.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.Bool("log-json", false, "emit JSON log lines")
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log.json", pf.Lookup("log-json"))

	root.AddCommand(newCountCmd(a), newSolveCmd(a), newExpandCmd(a))

	return root
}

// bindRunFlags registers the flags shared by count and solve.
func (a *app) bindRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("workers", "w", 0, "concurrent records (default GOMAXPROCS)")
	f.StringP("strategy", "s", "automaton", "counting strategy: automaton or brute-force")
	f.String("on-error", "skip", "malformed lines: skip or abort")
	f.StringP("format", "f", "text", "output format: text, json or yaml")
	f.Bool("per-record", false, "print every record's count")
	f.String("metrics-file", "", "write Prometheus metrics to this textfile")

	// Bindings are resolved when the command runs, after flags are parsed.
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		for key, name := range map[string]string{
			"workers":             "workers",
			"strategy":            "strategy",
			"on_error":            "on-error",
			"output.format":       "format",
			"output.per_record":   "per-record",
			"output.metrics_file": "metrics-file",
		} {
			if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return err
			}
		}

		return a.load()
	}
}

// initConfig reads the config file and environment, then builds the logger.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		a.v.AddConfigPath(cwd)
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".springs")
	}
	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level := a.v.GetString("log.level")
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, JSON: a.v.GetBool("log.json")})
	if err != nil {
		return err
	}
	a.logger = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", zap.String("path", used))
	}

	return nil
}

// load unmarshals and validates the configuration.
func (a *app) load() error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Output.MetricsFile != "" {
		a.reg = prometheus.NewRegistry()
		a.metrics = aggregate.NewMetrics(a.reg)
	}

	return nil
}

// options returns the aggregate options for one run at multiplicity m.
func (a *app) options(m int) ([]aggregate.Option, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}

	return append(opts,
		aggregate.WithMultiplicity(m),
		aggregate.WithLogger(a.logger),
		aggregate.WithMetrics(a.metrics),
	), nil
}

// writeMetrics flushes the private registry to the configured textfile.
func (a *app) writeMetrics() error {
	if a.reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Output.MetricsFile, a.reg); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}
