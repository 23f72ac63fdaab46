/*
Package cli provides the building blocks of the mechcfg command: typed
command errors with exit codes, a Printer for text and JSON results, a
progress bar for batch linting, and signal handling.

Output:

	printer := cli.NewPrinter(os.Stdout, cli.FormatText)
	if err := printer.Reports(reports); err != nil {
		return err
	}

Text output is styled with lipgloss when stdout is a terminal and plain
otherwise. JSON output is stable and intended for scripts.

Signal handling:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
