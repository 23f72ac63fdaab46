package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"open-atmos/mechanism-configuration/pkg/cli"
	"open-atmos/mechanism-configuration/pkg/history"
	"open-atmos/mechanism-configuration/pkg/runner"
	"open-atmos/mechanism-configuration/pkg/source"
	"open-atmos/mechanism-configuration/pkg/telemetry/health"
)

type watchOptions struct {
	format string
	listen string
}

func newWatchCmd(v *viper.Viper) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <path>",
		Short: "Re-validate a configuration whenever it changes",
		Long: `Validate a configuration, then watch it and validate again after every
change. A directory is watched recursively.

While watching, the metrics endpoint and /healthz and /readyz are served on
the metrics listen address. /readyz fails while the configuration is
invalid. When history is enabled, runs are recorded and pruned on the
configured schedule.

Examples:
  mechcfg watch mechanism.yaml
  mechcfg watch --listen :9464 camp_data/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, v, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json")
	cmd.Flags().StringVar(&opts.listen, "listen", "", "override the metrics listen address")
	return cmd
}

func runWatch(cmd *cobra.Command, v *viper.Viper, opts *watchOptions, path string) error {
	printer, err := printerFor(cmd.OutOrStdout(), opts.format)
	if err != nil {
		return err
	}

	a, err := newApp(cmd, v, appOptions{})
	if err != nil {
		return err
	}
	defer a.close(cmd.Context())

	if opts.listen != "" {
		a.cfg.Metrics.ListenAddress = opts.listen
	}

	var last atomic.Pointer[runner.Report]
	validate := func(ctx context.Context) error {
		report, err := a.runner.RunPath(ctx, path)
		if err != nil {
			return err
		}
		last.Store(report)
		return printer.Reports([]*runner.Report{report})
	}

	checker := health.New(0)
	checker.RegisterCheck("configuration", func(context.Context) error {
		report := last.Load()
		if report == nil {
			return errors.New("not validated yet")
		}
		if !report.Run.Valid {
			return fmt.Errorf("%d errors", report.Run.ErrorCount)
		}
		return nil
	})
	if a.store != nil {
		checker.RegisterCheck("history", a.store.Ping)
	}

	watcher, err := source.NewWatcher(path, a.cfg.Watch.Debounce, a.logger.Slog())
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	ctx := cmd.Context()
	if err := validate(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	if a.store != nil {
		if err := startPruning(ctx, a); err != nil {
			return cli.NewCommandError("watch", err)
		}
	}

	if a.cfg.Metrics.Enabled {
		srv, ln, err := newServer(a, checker)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		a.logger.Info("serving metrics", "address", ln.Addr().String(), "path", a.cfg.Metrics.Path)
		g.Go(func() error {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		return watcher.Watch(ctx, validate)
	})

	return g.Wait()
}

func newServer(a *app, checker *health.Checker) (*http.Server, net.Listener, error) {
	mux := http.NewServeMux()
	mux.Handle(a.cfg.Metrics.Path, a.metrics.Handler())
	health.Register(mux, checker)

	ln, err := net.Listen("tcp", a.cfg.Metrics.ListenAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on %s: %w", a.cfg.Metrics.ListenAddress, err)
	}
	return &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}, ln, nil
}

func startPruning(ctx context.Context, a *app) error {
	pruner := history.NewPruner(a.store, prunerConfig(a), a.logger.Slog()).
		OnPruned(a.metrics.RecordPruned)
	return history.NewScheduler(pruner).Start(ctx)
}

func prunerConfig(a *app) history.PrunerConfig {
	return history.PrunerConfig{
		RetentionDays: a.cfg.History.RetentionDays,
		MaxRecords:    a.cfg.History.MaxRecords,
		PruneSchedule: a.cfg.History.PruneSchedule,
	}
}
