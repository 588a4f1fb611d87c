package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hazz-dev/healthpoll/internal/checker"
	"github.com/hazz-dev/healthpoll/internal/config"
	"github.com/hazz-dev/healthpoll/internal/report"
)

func result(name, url string, outcome checker.Outcome) checker.CheckResult {
	return checker.CheckResult{
		Endpoint: config.Endpoint{Name: name, URL: url},
		Outcome:  outcome,
	}
}

func TestLine_Healthy(t *testing.T) {
	r := result("auth", "http://auth-service:5000", checker.OutcomeHealthy)
	r.StatusCode = 200

	got := report.Line(r)
	want := "✅ auth is healthy at http://auth-service:5000"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLine_UnexpectedStatus(t *testing.T) {
	r := result("payment", "http://payment-service:5002", checker.OutcomeUnexpectedStatus)
	r.StatusCode = 503

	got := report.Line(r)
	if !strings.HasPrefix(got, report.MarkerWarning) {
		t.Errorf("expected warning marker prefix, got %q", got)
	}
	if !strings.Contains(got, "payment returned status 503") {
		t.Errorf("expected 'payment returned status 503', got %q", got)
	}
}

func TestLine_Unreachable(t *testing.T) {
	r := result("svc1", "http://localhost:9999", checker.OutcomeUnreachable)
	r.Reason = `Get "http://localhost:9999": dial tcp [::1]:9999: connect: connection refused`

	got := report.Line(r)
	if !strings.HasPrefix(got, report.MarkerUnreachable) {
		t.Errorf("expected failure marker prefix, got %q", got)
	}
	if !strings.Contains(got, "svc1 health check failed: ") {
		t.Errorf("expected failure text, got %q", got)
	}
	if !strings.Contains(got, "connection refused") {
		t.Errorf("expected reason in line, got %q", got)
	}
}

func TestWrite_OneLinePerResult(t *testing.T) {
	results := []checker.CheckResult{
		result("auth", "http://a", checker.OutcomeHealthy),
		result("user", "http://u", checker.OutcomeUnreachable),
		result("payment", "http://p", checker.OutcomeUnexpectedStatus),
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(results) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(results), len(lines), buf.String())
	}
	for i, r := range results {
		if !strings.Contains(lines[i], r.Endpoint.Name) {
			t.Errorf("line %d: expected %q, got %q", i, r.Endpoint.Name, lines[i])
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := report.Write(failingWriter{}, []checker.CheckResult{result("auth", "http://a", checker.OutcomeHealthy)})
	if err == nil {
		t.Fatal("expected error from failing writer, got nil")
	}
	if !strings.Contains(err.Error(), "auth") {
		t.Errorf("error should mention the service: %v", err)
	}
}

func TestSummary(t *testing.T) {
	c := report.Summary([]checker.CheckResult{
		result("a", "http://a", checker.OutcomeHealthy),
		result("b", "http://b", checker.OutcomeHealthy),
		result("c", "http://c", checker.OutcomeUnexpectedStatus),
		result("d", "http://d", checker.OutcomeUnreachable),
	})
	if c.Healthy != 2 || c.UnexpectedStatus != 1 || c.Unreachable != 1 {
		t.Errorf("unexpected counts: %+v", c)
	}
}
