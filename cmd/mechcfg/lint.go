package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"open-atmos/mechanism-configuration/pkg/cli"
	"open-atmos/mechanism-configuration/pkg/runner"
	"open-atmos/mechanism-configuration/pkg/source"
	"open-atmos/mechanism-configuration/pkg/telemetry/tracing"
)

type lintOptions struct {
	dir      string
	format   string
	context  bool
	record   bool
	progress bool
}

func newLintCmd(v *viper.Viper) *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Validate every configuration under a directory",
		Long: `Recursively validate every *.yaml, *.yml and *.json document under a
directory. Hidden files and directories are skipped.

Examples:
  # Lint a directory
  mechcfg lint --dir configs/

  # JSON output with a progress bar on stderr
  mechcfg lint --dir configs/ --format json --progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, v, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "directory of configurations")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json")
	cmd.Flags().BoolVar(&opts.context, "context", false, "show source lines around each error")
	cmd.Flags().BoolVar(&opts.record, "record", false, "record the runs in the history store")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "show a progress bar on stderr")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func runLint(cmd *cobra.Command, v *viper.Viper, opts *lintOptions) error {
	printer, err := printerFor(cmd.OutOrStdout(), opts.format)
	if err != nil {
		return err
	}

	files, err := source.Walk(opts.dir)
	if err != nil {
		return cli.NewCommandError("lint", err)
	}
	if len(files) == 0 {
		return cli.NewCommandError("lint", fmt.Errorf("no configurations found under %s", opts.dir))
	}

	a, err := newApp(cmd, v, appOptions{openStore: opts.record})
	if err != nil {
		return err
	}
	defer a.close(cmd.Context())

	ctx := tracing.ExtractFromEnv(cmd.Context())

	var progress cli.ProgressReporter = cli.NoProgress{}
	if opts.progress {
		progress = cli.NewProgressReporter(cmd.ErrOrStderr(), "Linting")
	}
	progress.Start(len(files))

	reports := make([]*runner.Report, 0, len(files))
	for _, file := range files {
		report, err := a.runner.RunPath(ctx, file)
		if err != nil {
			return err
		}
		if opts.context {
			addContext(report, a.cfg.Parser.ContextLines)
		}
		reports = append(reports, report)
		progress.Increment()
	}
	progress.Finish()

	if err := printer.Reports(reports); err != nil {
		return err
	}
	return summarize(reports)
}
