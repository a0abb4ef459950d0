package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Deesus/Swiss-Tournament-Scheduler/repositories"
)

// AdminService covers the destructive bulk operations: clearing all match
// records, or clearing the whole database. Both exist to reset the system
// between tournaments of record; individual matches and players are never
// deleted.
type AdminService interface {
	ResetMatches(ctx context.Context) error
	ResetAll(ctx context.Context) error
}

type adminService struct {
	db         *sql.DB
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewAdminService(db *sql.DB, playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) AdminService {
	return &adminService{
		db:         db,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *adminService) ResetMatches(ctx context.Context) error {
	if err := s.matchRepo.DeleteAll(ctx, nil); err != nil {
		return fmt.Errorf("failed to reset matches: %w", err)
	}
	return nil
}

// ResetAll removes every match and every player in one transaction, so a
// failure partway leaves the database untouched.
func (s *adminService) ResetAll(ctx context.Context) error {
	if s.db == nil {
		if err := s.matchRepo.DeleteAll(ctx, nil); err != nil {
			return fmt.Errorf("failed to reset matches: %w", err)
		}
		if err := s.playerRepo.DeleteAll(ctx, nil); err != nil {
			return fmt.Errorf("failed to reset players: %w", err)
		}
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.matchRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("failed to reset matches: %w", err)
	}
	if err := s.playerRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("failed to reset players: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset transaction: %w", err)
	}
	return nil
}
