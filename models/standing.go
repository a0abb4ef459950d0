package models

// StandingRow is derived from match records on every request and is never
// persisted. OpponentMatchWins is the sum of wins accumulated by the
// player's opponents, used as the tie-break when win counts are equal.
type StandingRow struct {
	PlayerID          int    `json:"player_id"`
	Name              string `json:"name"`
	Wins              int    `json:"wins"`
	GamesPlayed       int    `json:"games_played"`
	OpponentMatchWins int    `json:"opponent_match_wins"`
}

// Pairing is a single next-round matchup between two players adjacent in
// the standings.
type Pairing struct {
	Player1ID   int    `json:"player1_id"`
	Player1Name string `json:"player1_name"`
	Player2ID   int    `json:"player2_id"`
	Player2Name string `json:"player2_name"`
}

// TournamentSummary is the per-scope dashboard row.
type TournamentSummary struct {
	TournamentID int          `json:"tournament_id"`
	Players      int          `json:"players"`
	Matches      int          `json:"matches"`
	Leader       *StandingRow `json:"leader,omitempty"`
}
