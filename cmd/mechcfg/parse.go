package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"open-atmos/mechanism-configuration/pkg/cli"
	"open-atmos/mechanism-configuration/pkg/runner"
	"open-atmos/mechanism-configuration/pkg/telemetry/tracing"
)

func newParseCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <path>",
		Short: "Print a parsed mechanism as JSON",
		Long: `Parse a configuration and print the resulting mechanism as JSON.

The output is for inspection; it is not a configuration format. When the
configuration is invalid the errors are printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, v, appOptions{})
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			report, err := a.runner.RunPath(tracing.ExtractFromEnv(cmd.Context()), args[0])
			if err != nil {
				return err
			}

			if !report.Result.OK() {
				addContext(report, a.cfg.Parser.ContextLines)
				reports := []*runner.Report{report}
				if err := cli.NewPrinter(cmd.ErrOrStderr(), cli.FormatText).Reports(reports); err != nil {
					return err
				}
				return summarize(reports)
			}
			return cli.NewPrinter(cmd.OutOrStdout(), cli.FormatJSON).JSON(report.Result.Mechanism)
		},
	}
}
