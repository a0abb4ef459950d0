package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
	"github.com/Deesus/Swiss-Tournament-Scheduler/repositories"
)

type PlayerService interface {
	Register(ctx context.Context, name string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	// Count returns the number of registered players for the unscoped
	// value, or the number of players with at least one game in the
	// given tournament.
	Count(ctx context.Context, scope int) (int, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *playerService) Register(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	// Names need not be unique; identity is the generated id.
	player := &models.Player{Name: name}
	if err := s.playerRepo.Create(ctx, nil, player); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) Count(ctx context.Context, scope int) (int, error) {
	if scope < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidScope, scope)
	}
	if scope == models.ScopeAll {
		count, err := s.playerRepo.CountAll(ctx, nil)
		if err != nil {
			return 0, fmt.Errorf("failed to count registered players: %w", err)
		}
		return count, nil
	}
	count, err := s.matchRepo.CountPlayersByScope(ctx, nil, scope)
	if err != nil {
		return 0, fmt.Errorf("failed to count players for tournament %d: %w", scope, err)
	}
	return count, nil
}
