package fixture

import (
	"context"

	"nba-update-service/internal/domain"
)

// Provider returns a static set of games useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchGames returns a deterministic set of example games for any date.
func (p *Provider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	_ = ctx

	startTime := date + "T19:00"
	games := []domain.Game{
		{
			Status:        strPtr("Final"),
			AwayTeam:      strPtr("Lakers"),
			HomeTeam:      strPtr("Celtics"),
			AwayTeamScore: intPtr(101),
			HomeTeamScore: intPtr(99),
			DateTime:      &startTime,
			Channel:       strPtr("ESPN"),
			Quarters: []domain.Quarter{
				{Number: 1, AwayScore: intPtr(25), HomeScore: intPtr(20)},
				{Number: 2, AwayScore: intPtr(28), HomeScore: intPtr(30)},
				{Number: 3, AwayScore: intPtr(22), HomeScore: intPtr(24)},
				{Number: 4, AwayScore: intPtr(26), HomeScore: intPtr(25)},
			},
		},
		{
			Status:   strPtr("Scheduled"),
			AwayTeam: strPtr("Warriors"),
			HomeTeam: strPtr("Heat"),
			DateTime: &startTime,
			Channel:  strPtr("NBA TV"),
		},
	}

	return games, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
