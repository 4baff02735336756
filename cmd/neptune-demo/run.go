package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/monejava/neptune-demo/cmd/neptune-demo/internal"
	"github.com/monejava/neptune-demo/internal/config"
	"github.com/monejava/neptune-demo/internal/demo"
	"github.com/monejava/neptune-demo/internal/observability"
)

const tracingShutdownTimeout = 5 * time.Second

// loadConfiguration resolves and validates the configuration named by the flags.
func loadConfiguration(flags *GlobalFlags) (*config.Config, error) {
	loader := config.NewConfigLoader(config.NewValidator())
	cfg, err := loader.Load(flags.ConfigFile)
	if err != nil {
		return nil, internal.WrapError(internal.ExitConfigError, "invalid configuration", err)
	}
	return cfg, nil
}

// runDemo loads configuration, sets up logging and tracing, builds the client for
// kind and runs the demo. The report goes to stdout and logs to stderr.
func runDemo(cmd *cobra.Command, kind demo.Kind) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfiguration(globalFlags)
	if err != nil {
		return err
	}

	runID := observability.NewRunID()
	logger, err := observability.NewLogger(cmd.ErrOrStderr(), globalFlags.LogLevel(cfg.Logging.Level), cfg.Logging.Format, runID.String())
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "invalid logging configuration", err)
	}
	slog.SetDefault(logger)

	tp, err := observability.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to initialize tracing", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
		defer cancel()
		if err := observability.ShutdownTracing(shutdownCtx, tp); err != nil {
			logger.Warn("Failed to flush traces", "error", err)
		}
	}()

	endpoint := demo.Endpoint(cfg, kind)
	logger.Info("Starting "+kind.Title(),
		"endpoint", endpoint,
		"region", cfg.AWS.Region,
		"iam_auth", cfg.Neptune.IAMAuth)

	client, err := demo.NewClient(ctx, cfg, kind)
	if err != nil {
		logger.Error("Failed to create client", "error", err)
		return internal.WrapError(internal.ExitCodeFor(err), "Error running demo", err)
	}

	d, err := demo.ForKind(kind)
	if err != nil {
		return err
	}

	report, runErr := demo.NewRunner(client, logger,
		demo.WithRunID(runID),
		demo.WithEndpoint(endpoint),
	).Run(ctx, d)

	if !(globalFlags.Quiet && globalFlags.GetOutputFormat() == internal.FormatText) {
		formatter := internal.NewFormatter(globalFlags.GetOutputFormat(), cmd.OutOrStdout())
		if err := formatter.PrintReport(report); err != nil {
			logger.Warn("Failed to print report", "error", err)
		}
	}

	if runErr != nil {
		return internal.WrapError(internal.ExitCodeFor(runErr), "Error running demo", runErr)
	}
	return nil
}
