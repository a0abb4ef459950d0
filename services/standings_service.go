package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
	"github.com/Deesus/Swiss-Tournament-Scheduler/repositories"
)

// StandingsService derives the ranked standings of a tournament scope from
// the recorded matches. It holds no state between calls; every computation
// is one read-derive cycle over a single storage snapshot.
type StandingsService interface {
	ComputeStandings(ctx context.Context, scope int) ([]models.StandingRow, error)
}

type standingsService struct {
	db         *sql.DB
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository

	// countRematches selects the OMW multiplicity rule: false counts each
	// distinct opponent's wins once, true counts them once per encounter.
	// Both variants exist in Swiss-pairing practice; distinct-once is the
	// default everywhere in this repository.
	countRematches bool
}

// NewStandingsService builds the calculator. db may be nil when the
// repositories are not SQL-backed (tests); with a non-nil db every
// computation runs inside one read-only transaction so wins and OMW are
// derived from the same snapshot of the matches table.
func NewStandingsService(
	db *sql.DB,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	countRematches bool,
) StandingsService {
	return &standingsService{
		db:             db,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		countRematches: countRematches,
	}
}

func (s *standingsService) ComputeStandings(ctx context.Context, scope int) ([]models.StandingRow, error) {
	if scope < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScope, scope)
	}

	var rows []models.StandingRow
	err := s.withSnapshot(ctx, func(exec repositories.SQLExecutor) error {
		var err error
		rows, err = s.compute(ctx, exec, scope)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *standingsService) compute(ctx context.Context, exec repositories.SQLExecutor, scope int) ([]models.StandingRow, error) {
	totalMatches, err := s.matchRepo.CountByScope(ctx, exec, scope)
	if err != nil {
		return nil, fmt.Errorf("standings for scope %d: %w", scope, err)
	}

	// Bootstrap case: before any match has been played in the scope, every
	// registered player stands at 0 wins / 0 games so pairings for round
	// one can be generated. Store-native order is kept as-is.
	if totalMatches == 0 {
		players, err := s.playerRepo.ListAll(ctx, exec)
		if err != nil {
			return nil, fmt.Errorf("standings bootstrap for scope %d: %w", scope, err)
		}
		if len(players) == 0 {
			return nil, fmt.Errorf("standings for scope %d: %w", scope, ErrNotFound)
		}
		rows := make([]models.StandingRow, 0, len(players))
		for _, p := range players {
			rows = append(rows, models.StandingRow{PlayerID: p.ID, Name: p.Name})
		}
		return rows, nil
	}

	rows, err := s.matchRepo.ListPlayersWithGamesPlayed(ctx, exec, scope)
	if err != nil {
		return nil, fmt.Errorf("standings for scope %d: %w", scope, err)
	}

	omw, err := s.matchRepo.OpponentWinsByPlayer(ctx, exec, scope, s.countRematches)
	if err != nil {
		return nil, fmt.Errorf("standings for scope %d: %w", scope, err)
	}
	for i := range rows {
		rows[i].OpponentMatchWins = omw[rows[i].PlayerID]
	}

	// Rank by wins, then opponent match wins, then fewest games played.
	// The last criterion rewards players who reached the same record in
	// fewer games; residual ties keep store-native order, hence the
	// stable sort.
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.OpponentMatchWins != b.OpponentMatchWins {
			return a.OpponentMatchWins > b.OpponentMatchWins
		}
		return a.GamesPlayed < b.GamesPlayed
	})
	return rows, nil
}

// withSnapshot runs fn against a single read-only transaction when a
// database handle is available, so that the match count, win aggregates
// and OMW aggregates all observe the same committed state.
func (s *standingsService) withSnapshot(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	if s.db == nil {
		return fn(nil)
	}
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("failed to begin standings transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit standings transaction: %w", err)
	}
	return nil
}
