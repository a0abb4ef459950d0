package models

import "time"

// ScopeAll is the distinguished unscoped tournament id: it selects every
// recorded match and every registered player, regardless of which
// tournament (if any) they belong to.
const ScopeAll = 0

// Match is an immutable outcome record. Rows are only ever appended or
// bulk-deleted; no individual result is updated or removed.
type Match struct {
	ID           int       `json:"id"`
	WinnerID     int       `json:"winner_id"`
	LoserID      int       `json:"loser_id"`
	TournamentID int       `json:"tournament_id"`
	CreatedAt    time.Time `json:"created_at"`
}
