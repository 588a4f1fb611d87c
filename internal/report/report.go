// Package report renders health check results as human-readable lines.
package report

import (
	"fmt"
	"io"

	"github.com/hazz-dev/healthpoll/internal/checker"
)

// Line markers, one per outcome.
const (
	MarkerHealthy     = "✅"
	MarkerWarning     = "⚠️ "
	MarkerUnreachable = "❌"
)

// Line formats a single result.
func Line(r checker.CheckResult) string {
	switch r.Outcome {
	case checker.OutcomeHealthy:
		return fmt.Sprintf("%s %s is healthy at %s", MarkerHealthy, r.Endpoint.Name, r.Endpoint.URL)
	case checker.OutcomeUnexpectedStatus:
		return fmt.Sprintf("%s %s returned status %d", MarkerWarning, r.Endpoint.Name, r.StatusCode)
	default:
		return fmt.Sprintf("%s %s health check failed: %s", MarkerUnreachable, r.Endpoint.Name, r.Reason)
	}
}

// Write writes one line per result, in order.
func Write(w io.Writer, results []checker.CheckResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, Line(r)); err != nil {
			return fmt.Errorf("writing report line for %q: %w", r.Endpoint.Name, err)
		}
	}
	return nil
}

// Counts tallies results per outcome.
type Counts struct {
	Healthy          int
	UnexpectedStatus int
	Unreachable      int
}

// Summary counts results by outcome.
func Summary(results []checker.CheckResult) Counts {
	var c Counts
	for _, r := range results {
		switch r.Outcome {
		case checker.OutcomeHealthy:
			c.Healthy++
		case checker.OutcomeUnexpectedStatus:
			c.UnexpectedStatus++
		default:
			c.Unreachable++
		}
	}
	return c
}
