package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"open-atmos/mechanism-configuration/pkg/cli"
	"open-atmos/mechanism-configuration/pkg/config"
	"open-atmos/mechanism-configuration/pkg/history"
	"open-atmos/mechanism-configuration/pkg/runner"
	"open-atmos/mechanism-configuration/pkg/telemetry/logging"
	"open-atmos/mechanism-configuration/pkg/telemetry/metrics"
	"open-atmos/mechanism-configuration/pkg/telemetry/tracing"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()

	cmd := newRootCmd()
	err := cmd.ExecuteContext(ctx)

	var failed *cli.ValidationFailedError
	if err != nil && !errors.As(err, &failed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}

// flagBindings maps persistent flags to configuration keys. The same keys
// are read from MECHCFG_* environment variables.
var flagBindings = map[string]string{
	"config":     "config",
	"verbose":    "verbose",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("MECHCFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "mechcfg",
		Short: "Validate atmospheric chemistry mechanism configurations",
		Long: `mechcfg parses and validates mechanism configurations for atmospheric
chemistry models.

It supports the v1 and development (2.x) single-document formats in YAML or
JSON, and the legacy v0 CAMP directory format. Every problem is reported
with its file, line and column.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "tool configuration file (YAML or TOML)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: json, text, console")

	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagBindings[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})

	cmd.AddCommand(
		newValidateCmd(v),
		newLintCmd(v),
		newParseCmd(v),
		newWatchCmd(v),
		newHistoryCmd(v),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return cmd
}

// app holds the services shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *logging.Logger
	metrics *metrics.Collector
	tracer  *tracing.Tracer
	store   history.Store
	runner  *runner.Runner
}

type appOptions struct {
	// openStore opens the history store even when history is disabled in
	// the configuration.
	openStore bool
}

// loadConfig reads the tool configuration and applies flag and environment
// overrides bound through viper.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(v.GetString("config"))
	if err != nil {
		return nil, cli.NewConfigError("config", err.Error())
	}

	if level := v.GetString("logging.level"); level != "" {
		cfg.Logging.Level = level
	}
	if format := v.GetString("logging.format"); format != "" {
		cfg.Logging.Format = format
	}
	if v.GetBool("verbose") {
		cfg.Logging.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, cli.NewConfigError("flags", err.Error())
	}
	config.SetConfig(cfg)
	return cfg, nil
}

func newApp(cmd *cobra.Command, v *viper.Viper, opts appOptions) (*app, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Writer:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, cli.NewConfigError("logging", err.Error())
	}

	tracer, err := tracing.New(&cfg.Tracing, tracing.WithVersion(Version), tracing.WithWriter(cmd.ErrOrStderr()))
	if err != nil {
		return nil, cli.NewCommandError(cmd.Name(), fmt.Errorf("failed to set up tracing: %w", err))
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.NewCollector(&cfg.Metrics, nil),
		tracer:  tracer,
	}

	if cfg.History.Enabled || opts.openStore {
		store, err := history.Open(cfg.History, logger.Slog())
		if err != nil {
			a.close(cmd.Context())
			return nil, cli.NewCommandError(cmd.Name(), fmt.Errorf("failed to open history: %w", err))
		}
		a.store = store
	}

	a.runner = runner.New(runner.Options{
		Config:  cfg,
		Logger:  logger,
		Metrics: a.metrics,
		Tracer:  tracer.Tracer(),
		Store:   a.store,
	})
	return a, nil
}

func (a *app) close(ctx context.Context) {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("failed to close history store", "error", err)
		}
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("failed to flush traces", "error", err)
		}
	}
	_ = a.logger.Shutdown()
}

func printerFor(w io.Writer, format string) (*cli.Printer, error) {
	f, err := cli.ParseOutputFormat(format)
	if err != nil {
		return nil, err
	}
	return cli.NewPrinter(w, f), nil
}

// summarize turns a batch of reports into the command result.
func summarize(reports []*runner.Report) error {
	invalid := 0
	for _, r := range reports {
		if !r.Run.Valid {
			invalid++
		}
	}
	if invalid > 0 {
		return &cli.ValidationFailedError{Invalid: invalid, Total: len(reports)}
	}
	return nil
}
