package format

import (
	"strings"
	"testing"

	"nba-update-service/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func finalGame() domain.Game {
	return domain.Game{
		Status:        strPtr("Final"),
		AwayTeam:      strPtr("Lakers"),
		HomeTeam:      strPtr("Celtics"),
		AwayTeamScore: intPtr(101),
		HomeTeamScore: intPtr(99),
		DateTime:      strPtr("2024-01-01T19:00"),
		Channel:       strPtr("ESPN"),
		Quarters: []domain.Quarter{
			{Number: 1, AwayScore: intPtr(25), HomeScore: intPtr(20)},
			{Number: 2, AwayScore: intPtr(30), HomeScore: intPtr(28)},
		},
	}
}

func TestFinalGameBlock(t *testing.T) {
	block := Game(finalGame())

	for _, want := range []string{
		"Game Status: Final",
		"Lakers vs Celtics",
		"Final Score: 101-99",
		"Start Time: 2024-01-01T19:00",
		"Channel: ESPN",
		"Quarter Scores: Q1: 25-20, Q2: 30-28",
	} {
		if !strings.Contains(block, want) {
			t.Fatalf("expected block to contain %q, got:\n%s", want, block)
		}
	}
}

func TestFinalGameQuartersInInputOrder(t *testing.T) {
	block := Game(finalGame())
	q1 := strings.Index(block, "Q1:")
	q2 := strings.Index(block, "Q2:")
	if q1 < 0 || q2 < 0 || q1 > q2 {
		t.Fatalf("expected quarters rendered in input order, got:\n%s", block)
	}
}

func TestInProgressGameBlock(t *testing.T) {
	game := domain.Game{
		Status:        strPtr("InProgress"),
		AwayTeam:      strPtr("Suns"),
		HomeTeam:      strPtr("Nuggets"),
		AwayTeamScore: intPtr(55),
		HomeTeamScore: intPtr(60),
		LastPlay:      strPtr("Jokic layup"),
		Channel:       strPtr("TNT"),
		Quarters:      []domain.Quarter{{Number: 1, AwayScore: intPtr(30), HomeScore: intPtr(31)}},
	}

	block := Game(game)

	if !strings.Contains(block, "Current Score: 55-60") {
		t.Fatalf("expected current score, got:\n%s", block)
	}
	if !strings.Contains(block, "Last Play: Jokic layup") {
		t.Fatalf("expected last play, got:\n%s", block)
	}
	if strings.Contains(block, "Quarter Scores") {
		t.Fatalf("expected no quarter breakdown for in-progress game, got:\n%s", block)
	}
}

func TestInProgressMissingLastPlayUsesPlaceholder(t *testing.T) {
	game := domain.Game{Status: strPtr("InProgress")}
	if !strings.Contains(Game(game), "Last Play: N/A") {
		t.Fatal("expected last play placeholder")
	}
}

func TestScheduledGameOmitsScores(t *testing.T) {
	game := domain.Game{
		Status:        strPtr("Scheduled"),
		AwayTeam:      strPtr("Bulls"),
		HomeTeam:      strPtr("Knicks"),
		AwayTeamScore: intPtr(0),
		HomeTeamScore: intPtr(0),
		DateTime:      strPtr("2024-01-02T19:30"),
		Channel:       strPtr("NBA TV"),
	}

	block := Game(game)

	if strings.Contains(block, "Score") {
		t.Fatalf("expected no score text for scheduled game, got:\n%s", block)
	}
	if !strings.Contains(block, "Start Time: 2024-01-02T19:30") {
		t.Fatalf("expected start time, got:\n%s", block)
	}
}

func TestUnknownStatusFallsBack(t *testing.T) {
	game := domain.Game{
		Status:   strPtr("Postponed"),
		AwayTeam: strPtr("Jazz"),
		HomeTeam: strPtr("Spurs"),
	}

	block := Game(game)

	if !strings.Contains(block, "Game Status: Postponed") {
		t.Fatalf("expected raw status echoed, got:\n%s", block)
	}
	if !strings.Contains(block, "Details are unavailable at the moment.") {
		t.Fatalf("expected generic fallback line, got:\n%s", block)
	}
}

func TestEmptyGameNeverPanics(t *testing.T) {
	block := Game(domain.Game{})

	if !strings.Contains(block, "Game Status: Unknown") {
		t.Fatalf("expected status placeholder, got:\n%s", block)
	}
	if !strings.Contains(block, "Unknown vs Unknown") {
		t.Fatalf("expected team placeholders, got:\n%s", block)
	}
}

func TestFinalMissingScoresUsePlaceholder(t *testing.T) {
	game := domain.Game{Status: strPtr("Final")}
	block := Game(game)
	if !strings.Contains(block, "Final Score: N/A-N/A") {
		t.Fatalf("expected score placeholders, got:\n%s", block)
	}
}

func TestEmptyQuartersRenderEmptyList(t *testing.T) {
	game := domain.Game{Status: strPtr("Final"), Quarters: []domain.Quarter{}}
	block := Game(game)
	if !strings.Contains(block, "Quarter Scores: \n") {
		t.Fatalf("expected empty quarter list, got:\n%s", block)
	}
}

func TestQuarterMissingScoresUsePlaceholder(t *testing.T) {
	game := domain.Game{
		Status:   strPtr("Final"),
		Quarters: []domain.Quarter{{Number: 3}},
	}
	if !strings.Contains(Game(game), "Q3: N/A-N/A") {
		t.Fatal("expected quarter score placeholders")
	}
}
