package providers

import (
	"context"
	"errors"
	"testing"

	"nba-update-service/internal/domain"
	"nba-update-service/internal/metrics"
	"nba-update-service/internal/testutil"
)

func TestInstrumentedProviderPassesThroughGames(t *testing.T) {
	inner := &testutil.StubProvider{Games: []domain.Game{{}, {}}}
	rec := metrics.NewRecorder()
	provider := NewInstrumentedProvider(inner, "sportsdata", testutil.NewTestLogger(), rec)

	games, err := provider.FetchGames(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected games passed through, got %d", len(games))
	}
	if inner.LastDate != "2024-01-01" {
		t.Fatalf("expected date forwarded, got %s", inner.LastDate)
	}
	if rec.ProviderCalls("sportsdata") != 1 || rec.ProviderErrors("sportsdata") != 0 {
		t.Fatalf("expected one clean attempt, got %d/%d", rec.ProviderCalls("sportsdata"), rec.ProviderErrors("sportsdata"))
	}
}

func TestInstrumentedProviderRecordsFailures(t *testing.T) {
	cause := errors.New("boom")
	inner := &testutil.StubProvider{Err: cause}
	rec := metrics.NewRecorder()
	provider := NewInstrumentedProvider(inner, "sportsdata", testutil.NewTestLogger(), rec)

	_, err := provider.FetchGames(context.Background(), "2024-01-01")
	if !errors.Is(err, cause) {
		t.Fatalf("expected error passed through untouched, got %v", err)
	}
	if rec.ProviderErrors("sportsdata") != 1 {
		t.Fatalf("expected error recorded, got %d", rec.ProviderErrors("sportsdata"))
	}
}

func TestInstrumentedProviderDefaultsName(t *testing.T) {
	inner := &testutil.StubProvider{}
	rec := metrics.NewRecorder()
	provider := NewInstrumentedProvider(inner, "", nil, rec)

	if _, err := provider.FetchGames(context.Background(), "2024-01-01"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.ProviderCalls("provider") != 1 {
		t.Fatal("expected fallback provider name in metrics")
	}
}
