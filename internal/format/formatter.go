package format

import (
	"fmt"
	"strconv"
	"strings"

	"nba-update-service/internal/domain"
)

// Placeholders substituted for absent upstream fields.
const (
	unknown      = "Unknown"
	notAvailable = "N/A"
)

// Game renders one game as a multi-line text block. It never fails: absent
// fields degrade to placeholders and unknown statuses get a generic rendering.
func Game(g domain.Game) string {
	status := stringOr(g.Status, unknown)
	score := fmt.Sprintf("%s-%s", intOr(g.AwayTeamScore), intOr(g.HomeTeamScore))

	var b strings.Builder
	fmt.Fprintf(&b, "Game Status: %s\n", status)
	fmt.Fprintf(&b, "%s vs %s\n", stringOr(g.AwayTeam, unknown), stringOr(g.HomeTeam, unknown))

	switch domain.GameStatus(status) {
	case domain.StatusFinal:
		fmt.Fprintf(&b, "Final Score: %s\n", score)
		fmt.Fprintf(&b, "Start Time: %s\n", stringOr(g.DateTime, unknown))
		fmt.Fprintf(&b, "Channel: %s\n", stringOr(g.Channel, unknown))
		fmt.Fprintf(&b, "Quarter Scores: %s\n", quarterScores(g.Quarters))
	case domain.StatusInProgress:
		fmt.Fprintf(&b, "Current Score: %s\n", score)
		fmt.Fprintf(&b, "Last Play: %s\n", stringOr(g.LastPlay, notAvailable))
		fmt.Fprintf(&b, "Channel: %s\n", stringOr(g.Channel, unknown))
	case domain.StatusScheduled:
		fmt.Fprintf(&b, "Start Time: %s\n", stringOr(g.DateTime, unknown))
		fmt.Fprintf(&b, "Channel: %s\n", stringOr(g.Channel, unknown))
	default:
		b.WriteString("Details are unavailable at the moment.\n")
	}

	return b.String()
}

func quarterScores(quarters []domain.Quarter) string {
	parts := make([]string, 0, len(quarters))
	for _, q := range quarters {
		parts = append(parts, fmt.Sprintf("Q%d: %s-%s", q.Number, intOr(q.AwayScore), intOr(q.HomeScore)))
	}
	return strings.Join(parts, ", ")
}

func stringOr(val *string, fallback string) string {
	if val == nil || *val == "" {
		return fallback
	}
	return *val
}

func intOr(val *int) string {
	if val == nil {
		return notAvailable
	}
	return strconv.Itoa(*val)
}
