package poller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hazz-dev/healthpoll/internal/checker"
	"github.com/hazz-dev/healthpoll/internal/config"
)

// CheckerFactory creates a Checker for a given endpoint.
type CheckerFactory func(ep config.Endpoint) checker.Checker

// Poller runs one health check per configured endpoint.
type Poller struct {
	cfg     *config.Config
	factory CheckerFactory
	logger  *slog.Logger
}

// New creates a new Poller. A nil factory uses the HTTP checker with the
// configured timeout; a nil logger uses slog.Default().
func New(cfg *config.Config, factory CheckerFactory, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if factory == nil {
		timeout := cfg.Timeout.Duration
		factory = func(ep config.Endpoint) checker.Checker {
			return checker.NewHTTP(ep, timeout)
		}
	}
	return &Poller{
		cfg:     cfg,
		factory: factory,
		logger:  logger,
	}
}

// Run checks every endpoint once and returns the results in endpoint order.
// A failing endpoint never stops the remaining checks.
func (p *Poller) Run(ctx context.Context) []checker.CheckResult {
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)
	logger.Debug("poll started",
		"endpoints", len(p.cfg.Endpoints),
		"parallel", p.cfg.Parallel,
		"timeout", p.cfg.Timeout.Duration,
	)

	results := make([]checker.CheckResult, len(p.cfg.Endpoints))
	if p.cfg.Parallel {
		var wg sync.WaitGroup
		for i, ep := range p.cfg.Endpoints {
			wg.Add(1)
			go func(i int, ep config.Endpoint) {
				defer wg.Done()
				results[i] = p.check(ctx, logger, ep)
			}(i, ep)
		}
		wg.Wait()
	} else {
		for i, ep := range p.cfg.Endpoints {
			results[i] = p.check(ctx, logger, ep)
		}
	}

	logger.Debug("poll finished", "results", len(results))
	return results
}

func (p *Poller) check(ctx context.Context, logger *slog.Logger, ep config.Endpoint) checker.CheckResult {
	result := p.factory(ep).Check(ctx)
	// Checkers may leave the endpoint unset; the report depends on it.
	result.Endpoint = ep

	attrs := []any{
		"service", ep.Name,
		"url", ep.URL,
		"outcome", result.Outcome,
		"response_time", result.ResponseTime,
	}
	if result.StatusCode != 0 {
		attrs = append(attrs, "status_code", result.StatusCode)
	}
	if result.Reason != "" {
		attrs = append(attrs, "reason", result.Reason)
	}
	// Results reach stdout through the report; stderr only sees them at debug.
	logger.Debug("check result", attrs...)
	return result
}
