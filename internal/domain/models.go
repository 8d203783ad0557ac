package domain

// GameStatus mirrors the status strings the upstream scores API emits.
// The set is open ended; unknown values fall through to a generic rendering.
type GameStatus string

const (
	StatusFinal      GameStatus = "Final"
	StatusInProgress GameStatus = "InProgress"
	StatusScheduled  GameStatus = "Scheduled"
)

// Quarter is one scoring period's partial score within a game.
type Quarter struct {
	Number    int  `json:"Number"`
	AwayScore *int `json:"AwayScore"`
	HomeScore *int `json:"HomeScore"`
}

// Game is one game's data as returned by the upstream API for a date.
// Fields are pointers because the payload is externally supplied and any of
// them may be absent; rendering substitutes placeholders, never fails.
type Game struct {
	Status        *string   `json:"Status"`
	AwayTeam      *string   `json:"AwayTeam"`
	HomeTeam      *string   `json:"HomeTeam"`
	AwayTeamScore *int      `json:"AwayTeamScore"`
	HomeTeamScore *int      `json:"HomeTeamScore"`
	DateTime      *string   `json:"DateTime"`
	Channel       *string   `json:"Channel"`
	LastPlay      *string   `json:"LastPlay"`
	Quarters      []Quarter `json:"Quarters"`
}
