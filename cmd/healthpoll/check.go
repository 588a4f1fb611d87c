package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hazz-dev/healthpoll/internal/config"
	"github.com/hazz-dev/healthpoll/internal/poller"
	"github.com/hazz-dev/healthpoll/internal/report"
)

func executeCheck(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return runChecks(ctx, cmd.OutOrStdout(), cfg, logger)
}

// runChecks polls every endpoint and prints the report. Unhealthy or
// unreachable endpoints are reported, not returned as errors.
func runChecks(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	results := poller.New(cfg, nil, logger).Run(ctx)

	if err := report.Write(out, results); err != nil {
		return fmt.Errorf("printing report: %w", err)
	}

	sum := report.Summary(results)
	level := slog.LevelInfo
	if sum.UnexpectedStatus+sum.Unreachable > 0 {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "poll complete",
		"healthy", sum.Healthy,
		"unexpected_status", sum.UnexpectedStatus,
		"unreachable", sum.Unreachable,
	)
	return nil
}
