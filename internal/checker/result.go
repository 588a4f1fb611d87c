package checker

import (
	"time"

	"github.com/hazz-dev/healthpoll/internal/config"
)

// Outcome classifies a single health check.
type Outcome string

const (
	// OutcomeHealthy means the endpoint answered 200 within the timeout.
	OutcomeHealthy Outcome = "healthy"
	// OutcomeUnexpectedStatus means a response arrived with any other status code.
	OutcomeUnexpectedStatus Outcome = "unexpected_status"
	// OutcomeUnreachable means no response arrived: timeout, refused connection, DNS failure.
	OutcomeUnreachable Outcome = "unreachable"
)

// CheckResult is the outcome of a single health check.
// StatusCode is set when a response was received; Reason only when Unreachable.
type CheckResult struct {
	Endpoint     config.Endpoint
	Outcome      Outcome
	StatusCode   int
	Reason       string
	ResponseTime time.Duration
	CheckedAt    time.Time
}

// Healthy reports whether the endpoint answered 200.
func (r CheckResult) Healthy() bool {
	return r.Outcome == OutcomeHealthy
}
