package testutil

import (
	"context"
	"testing"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/metrics"
)

// NewRecorderWithShutdown returns a recorder and a no-op shutdown to simplify tests.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}

// AssertProviderCalls fails the test when the recorder's counters for provider differ.
func AssertProviderCalls(t *testing.T, rec *metrics.Recorder, provider string, calls, errs int) {
	t.Helper()
	snap := rec.Snapshot(provider)
	if snap.Calls != calls || snap.Errors != errs {
		t.Fatalf("provider %s: expected %d calls/%d errors, got %d/%d", provider, calls, errs, snap.Calls, snap.Errors)
	}
}

// AssertIndexLoads fails the test when the recorded index load counters differ.
func AssertIndexLoads(t *testing.T, rec *metrics.Recorder, attempts, failures int) {
	t.Helper()
	gotAttempts, gotFailures := rec.IndexLoads()
	if gotAttempts != attempts || gotFailures != failures {
		t.Fatalf("index loads: expected %d attempts/%d failures, got %d/%d", attempts, failures, gotAttempts, gotFailures)
	}
}
