package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazz-dev/healthpoll/internal/placeholder"
	"github.com/hazz-dev/healthpoll/internal/version"
)

const shutdownTimeout = 30 * time.Second

var (
	address string
	name    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "placeholder",
		Short:        "Placeholder web service answering GET / with a fixed message",
		SilenceUsage: true,
	}

	root.AddCommand(versionCmd())
	root.AddCommand(serveCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String("placeholder"))
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the placeholder service",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&address, "address", ":5002", "listen address")
	cmd.Flags().StringVar(&name, "name", placeholder.DefaultName, "service name shown in the response body")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()

	srv := placeholder.New(name, logger)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "address", address, "name", name)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("HTTP server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
