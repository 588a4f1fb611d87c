package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hazz-dev/healthpoll/internal/config"
)

// maxDrain caps how much of a response body is read before closing it.
const maxDrain = 64 << 10

type httpChecker struct {
	ep     config.Endpoint
	client *http.Client
}

// NewHTTP returns a Checker that issues one GET against ep.URL, bounded by timeout.
func NewHTTP(ep config.Endpoint, timeout time.Duration) Checker {
	return &httpChecker{
		ep:     ep,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *httpChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{
		Endpoint:  c.ep,
		CheckedAt: start,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ep.URL, nil)
	if err != nil {
		result.Outcome = OutcomeUnreachable
		result.Reason = fmt.Sprintf("creating request: %v", err)
		result.ResponseTime = time.Since(start)
		return result
	}

	resp, err := c.client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Outcome = OutcomeUnreachable
		result.Reason = err.Error()
		return result
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		result.Outcome = OutcomeUnexpectedStatus
		return result
	}

	result.Outcome = OutcomeHealthy
	return result
}
