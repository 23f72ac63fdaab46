package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"open-atmos/mechanism-configuration/pkg/cli"
	"open-atmos/mechanism-configuration/pkg/history"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

var validSchemas = map[string]types.Schema{
	"v0":          types.SchemaV0,
	"v1":          types.SchemaV1,
	"development": types.SchemaDevelopment,
}

func newHistoryCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and prune recorded validation runs",
		Long: `Inspect and prune the validation history.

Runs are recorded by validate, lint and watch when history is enabled in
the tool configuration. These commands open the configured store even
when recording is disabled.

Examples:
  mechcfg history list --invalid --since 24h
  mechcfg history prune --retention-days 7`,
	}
	cmd.AddCommand(newHistoryListCmd(v), newHistoryPruneCmd(v))
	return cmd
}

type historyListOptions struct {
	source  string
	schema  string
	valid   bool
	invalid bool
	since   time.Duration
	limit   int
	offset  int
	format  string
}

func newHistoryListCmd(v *viper.Viper) *cobra.Command {
	opts := &historyListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer, err := printerFor(cmd.OutOrStdout(), opts.format)
			if err != nil {
				return err
			}
			q, err := opts.query()
			if err != nil {
				return err
			}

			a, err := newApp(cmd, v, appOptions{openStore: true})
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			runs, err := a.store.Query(cmd.Context(), q)
			if err != nil {
				return cli.NewCommandError("history list", err)
			}
			return printer.Runs(runs)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.source, "source", "", "only runs of this source")
	flags.StringVar(&opts.schema, "schema", "", "only runs of this schema: v0, v1, development")
	flags.BoolVar(&opts.valid, "valid", false, "only valid runs")
	flags.BoolVar(&opts.invalid, "invalid", false, "only invalid runs")
	flags.DurationVar(&opts.since, "since", 0, "only runs started within this duration")
	flags.IntVar(&opts.limit, "limit", 20, "max results, 0 for all")
	flags.IntVar(&opts.offset, "offset", 0, "pagination offset")
	flags.StringVarP(&opts.format, "format", "f", "text", "output format: text, json")
	cmd.MarkFlagsMutuallyExclusive("valid", "invalid")
	return cmd
}

func (o *historyListOptions) query() (history.Query, error) {
	q := history.Query{
		Source: o.source,
		Limit:  o.limit,
		Offset: o.offset,
	}
	if o.limit < 0 {
		return q, cli.NewConfigError("limit", "must not be negative")
	}
	if o.offset < 0 {
		return q, cli.NewConfigError("offset", "must not be negative")
	}
	if o.schema != "" {
		schema, ok := validSchemas[o.schema]
		if !ok {
			return q, cli.NewConfigError("schema", fmt.Sprintf("unknown schema %q: must be 'v0', 'v1' or 'development'", o.schema))
		}
		q.Schema = schema
	}
	if o.valid || o.invalid {
		valid := o.valid
		q.Valid = &valid
	}
	if o.since > 0 {
		since := time.Now().Add(-o.since)
		q.Since = &since
	}
	return q, nil
}

type historyPruneOptions struct {
	retentionDays int
	maxRecords    int64
}

func newHistoryPruneCmd(v *viper.Viper) *cobra.Command {
	opts := &historyPruneOptions{}

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old runs now",
		Long: `Delete runs older than the retention period and, when a cap is set, the
oldest runs beyond it. Flags override the history settings of the tool
configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, v, appOptions{openStore: true})
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			pc := prunerConfig(a)
			if cmd.Flags().Changed("retention-days") {
				pc.RetentionDays = opts.retentionDays
			}
			if cmd.Flags().Changed("max-records") {
				pc.MaxRecords = opts.maxRecords
			}
			if pc.RetentionDays < 0 || pc.MaxRecords < 0 {
				return cli.NewConfigError("prune", "retention days and max records must not be negative")
			}

			deleted, err := history.NewPruner(a.store, pc, a.logger.Slog()).
				OnPruned(a.metrics.RecordPruned).
				Prune(cmd.Context())
			if err != nil {
				return cli.NewCommandError("history prune", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d runs\n", deleted)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.retentionDays, "retention-days", 0, "delete runs older than this many days, 0 keeps all")
	cmd.Flags().Int64Var(&opts.maxRecords, "max-records", 0, "keep at most this many runs, 0 for no cap")
	return cmd
}
