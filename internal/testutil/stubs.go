package testutil

import (
	"context"
	"io"
	"log/slog"

	"nba-update-service/internal/domain"
)

// StubProvider returns canned games or a canned error and records calls.
type StubProvider struct {
	Games    []domain.Game
	Err      error
	Calls    int
	LastDate string
}

func (s *StubProvider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	s.Calls++
	s.LastDate = date
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}

// StubSink records published messages and optionally fails.
type StubSink struct {
	Err         error
	Calls       int
	LastSubject string
	LastBody    string
}

func (s *StubSink) Publish(ctx context.Context, subject, body string) error {
	s.Calls++
	s.LastSubject = subject
	s.LastBody = body
	return s.Err
}

// NewTestLogger returns a logger that discards output, keeping tests quiet.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// StrPtr returns a pointer to the given string.
func StrPtr(s string) *string { return &s }

// IntPtr returns a pointer to the given int.
func IntPtr(n int) *int { return &n }
