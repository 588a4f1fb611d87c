package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazz-dev/healthpoll/internal/config"
	"github.com/hazz-dev/healthpoll/internal/version"
)

var (
	cfgFile  string
	timeout  time.Duration
	parallel bool
	verbose  bool
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
		Use:          "healthpoll",
		Short:        "Poll service endpoints once and report their health",
		SilenceUsage: true,
		RunE:         runCheck,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file path (default: built-in service mapping)")
	flags.DurationVar(&timeout, "timeout", config.DefaultTimeout, "per-request timeout")
	flags.BoolVar(&parallel, "parallel", false, "check endpoints concurrently")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(versionCmd())
	root.AddCommand(checkCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String("healthpoll"))
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run a one-off check of all configured endpoints",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config loaded", "endpoints", len(cfg.Endpoints), "source", configSource())

	return executeCheck(cmd, cfg, logger)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadConfig returns the file config, or the built-in mapping when no file
// is given, with explicitly set flags taking precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if cfgFile == "" {
		cfg = config.Default()
	} else {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration{Duration: timeout}
	}
	if flags.Changed("parallel") {
		cfg.Parallel = parallel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configSource() string {
	if cfgFile == "" {
		return "built-in"
	}
	return cfgFile
}
