package checker

import "context"

// Checker performs a single health check.
type Checker interface {
	Check(ctx context.Context) CheckResult
}
