package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
	"github.com/lib/pq"
)

var ErrMatchPlayerUnknown = errors.New("match references an unknown player")

// MatchRepository is the read/write boundary the standings and pairing
// engine consumes. Every read takes an optional SQLExecutor so that one
// standings computation can run all of its queries inside a single
// read-only transaction and observe one consistent snapshot.
//
// A scope of models.ScopeAll selects all matches; any positive scope
// restricts queries to that tournament.
type MatchRepository interface {
	Append(ctx context.Context, exec SQLExecutor, match *models.Match) error
	CountByScope(ctx context.Context, exec SQLExecutor, scope int) (int, error)
	CountPlayersByScope(ctx context.Context, exec SQLExecutor, scope int) (int, error)
	ListPlayersWithGamesPlayed(ctx context.Context, exec SQLExecutor, scope int) ([]models.StandingRow, error)
	OpponentWinsByPlayer(ctx context.Context, exec SQLExecutor, scope int, countRematches bool) (map[int]int, error)
	ListScopes(ctx context.Context, exec SQLExecutor) ([]int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// Append records one immutable match outcome. There is deliberately no
// winner != loser or already-played check here: result validation is a
// caller policy, not a storage concern. The only constraint enforced is
// the foreign key to the players table.
func (r *postgresMatchRepository) Append(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `
		INSERT INTO matches (winner_id, loser_id, tournament_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		match.WinnerID,
		match.LoserID,
		match.TournamentID,
	).Scan(&match.ID, &match.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return ErrMatchPlayerUnknown
		}
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (r *postgresMatchRepository) CountByScope(ctx context.Context, exec SQLExecutor, scope int) (int, error) {
	query := `
		SELECT COUNT(id)
		FROM matches
		WHERE $1 = 0 OR tournament_id = $1`

	var count int
	if err := r.getExecutor(exec).QueryRowContext(ctx, query, scope).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches for scope %d: %w", scope, err)
	}
	return count, nil
}

// CountPlayersByScope counts the distinct players who appear in at least
// one match of the scope, on either side of the result.
func (r *postgresMatchRepository) CountPlayersByScope(ctx context.Context, exec SQLExecutor, scope int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM (
			SELECT winner_id AS player_id FROM matches WHERE $1 = 0 OR tournament_id = $1
			UNION
			SELECT loser_id FROM matches WHERE $1 = 0 OR tournament_id = $1
		) AS participants`

	var count int
	if err := r.getExecutor(exec).QueryRowContext(ctx, query, scope).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count participants for scope %d: %w", scope, err)
	}
	return count, nil
}

// ListPlayersWithGamesPlayed returns one row per player with win and
// games-played counts for the scope, in registration order. For the
// unscoped value every registered player is returned, including those with
// no games; for a tournament scope only players with at least one game
// there are included. OpponentMatchWins is left zero; the standings
// service fills it in from OpponentWinsByPlayer.
func (r *postgresMatchRepository) ListPlayersWithGamesPlayed(ctx context.Context, exec SQLExecutor, scope int) ([]models.StandingRow, error) {
	query := `
		SELECT p.id, p.name,
		       COALESCE(SUM(CASE WHEN m.winner_id = p.id THEN 1 ELSE 0 END), 0) AS wins,
		       COUNT(m.id) AS games_played
		FROM players p
		LEFT JOIN matches m
		  ON (m.winner_id = p.id OR m.loser_id = p.id)
		 AND ($1 = 0 OR m.tournament_id = $1)
		GROUP BY p.id, p.name
		HAVING $1 = 0 OR COUNT(m.id) > 0
		ORDER BY p.id`

	rows, err := r.getExecutor(exec).QueryContext(ctx, query, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list player records for scope %d: %w", scope, err)
	}
	defer rows.Close()

	var records []models.StandingRow
	for rows.Next() {
		var rec models.StandingRow
		if err := rows.Scan(&rec.PlayerID, &rec.Name, &rec.Wins, &rec.GamesPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan player record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("player record rows iteration error: %w", err)
	}
	return records, nil
}

// OpponentWinsByPlayer computes the OMW tie-break as a two-pass aggregate:
// first a win count per player, then a sum of those counts over each
// player's opponents. Both passes are plain queries over the matches
// table; the join happens in memory so no database view is required.
//
// With countRematches false each distinct opponent's win total is counted
// once no matter how many times the pair met; with countRematches true it
// is counted once per encounter.
func (r *postgresMatchRepository) OpponentWinsByPlayer(ctx context.Context, exec SQLExecutor, scope int, countRematches bool) (map[int]int, error) {
	executor := r.getExecutor(exec)

	winsQuery := `
		SELECT winner_id, COUNT(id)
		FROM matches
		WHERE $1 = 0 OR tournament_id = $1
		GROUP BY winner_id`

	rows, err := executor.QueryContext(ctx, winsQuery, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate wins for scope %d: %w", scope, err)
	}
	wins := make(map[int]int)
	for rows.Next() {
		var playerID, winCount int
		if err := rows.Scan(&playerID, &winCount); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan win aggregate: %w", err)
		}
		wins[playerID] = winCount
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("win aggregate rows iteration error: %w", err)
	}
	rows.Close()

	pairsQuery := `
		SELECT winner_id, loser_id
		FROM matches
		WHERE $1 = 0 OR tournament_id = $1`

	rows, err = executor.QueryContext(ctx, pairsQuery, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list match pairs for scope %d: %w", scope, err)
	}
	defer rows.Close()

	omw := make(map[int]int)
	seen := make(map[[2]int]bool)
	addOpponent := func(playerID, opponentID int) {
		if !countRematches {
			key := [2]int{playerID, opponentID}
			if seen[key] {
				return
			}
			seen[key] = true
		}
		omw[playerID] += wins[opponentID]
	}
	for rows.Next() {
		var winnerID, loserID int
		if err := rows.Scan(&winnerID, &loserID); err != nil {
			return nil, fmt.Errorf("failed to scan match pair: %w", err)
		}
		addOpponent(winnerID, loserID)
		addOpponent(loserID, winnerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("match pair rows iteration error: %w", err)
	}
	return omw, nil
}

func (r *postgresMatchRepository) ListScopes(ctx context.Context, exec SQLExecutor) ([]int, error) {
	query := `
		SELECT DISTINCT tournament_id
		FROM matches
		ORDER BY tournament_id`

	rows, err := r.getExecutor(exec).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament scopes: %w", err)
	}
	defer rows.Close()

	var scopes []int
	for rows.Next() {
		var scope int
		if err := rows.Scan(&scope); err != nil {
			return nil, fmt.Errorf("failed to scan tournament scope: %w", err)
		}
		scopes = append(scopes, scope)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tournament scope rows iteration error: %w", err)
	}
	return scopes, nil
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	return nil
}
