// Package logging provides the structured logger of the mechcfg tool.
//
// The Logger wraps log/slog with json, text and console output, masks
// credentials (tokens in git URLs, bearer headers, values under keys such as
// "token") and adds the run fields stored in a context:
//
//	ctx = logging.WithRunID(ctx, run.ID)
//	ctx = logging.WithSource(ctx, path)
//	logger.InfoContext(ctx, "configuration valid", "reactions", n)
//
// Packages that take a plain *slog.Logger get one from Logger.Slog.
package logging
