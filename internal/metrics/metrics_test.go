package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderCountsProviderAttempts(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("sportsdata", 20*time.Millisecond, nil)
	rec.RecordProviderAttempt("sportsdata", 30*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("sportsdata"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("sportsdata"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("sportsdata"); got != 30*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", got)
	}
}

func TestRecorderCountsPublishes(t *testing.T) {
	rec := NewRecorder()

	rec.RecordPublish("updates.nba", 5*time.Millisecond, nil)
	rec.RecordPublish("updates.nba", 5*time.Millisecond, errors.New("down"))
	rec.RecordPublish("other", time.Millisecond, nil)

	if got := rec.PublishAttempts("updates.nba"); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
	if got := rec.PublishErrors("updates.nba"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.PublishAttempts("other"); got != 1 {
		t.Fatalf("expected separate topic tracking, got %d", got)
	}
}

func TestRecorderCountsRunCycles(t *testing.T) {
	rec := NewRecorder()

	rec.RecordRunCycle(time.Second, 200)
	rec.RecordRunCycle(time.Second, 500)
	rec.RecordRunCycle(time.Second, 404)

	if got := rec.RunCycles(); got != 3 {
		t.Fatalf("expected 3 cycles, got %d", got)
	}
	if got := rec.RunErrors(); got != 2 {
		t.Fatalf("expected 2 failed cycles, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.RecordProviderAttempt("p", time.Second, nil)
	rec.RecordPublish("t", time.Second, nil)
	rec.RecordRunCycle(time.Second, 200)
	rec.RecordHTTPRequest("GET", "/run", 200, time.Second)

	if rec.ProviderCalls("p") != 0 || rec.RunCycles() != 0 {
		t.Fatal("expected zero counts from nil recorder")
	}
}

func TestSetupDisabledReturnsRecorderWithoutHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected noop shutdown, got %v", err)
	}
}

func TestSetupEnabledBuildsPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}
	rec.RecordRunCycle(time.Second, 200)
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
