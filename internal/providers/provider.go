package providers

import (
	"context"

	"nba-update-service/internal/domain"
)

// GameProvider defines how one day's games are fetched from the upstream API.
// The date parameter must be a YYYY-MM-DD string naming which day to fetch.
type GameProvider interface {
	FetchGames(ctx context.Context, date string) ([]domain.Game, error)
}
