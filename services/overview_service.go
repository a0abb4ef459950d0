package services

import (
	"context"
	"fmt"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
	"github.com/Deesus/Swiss-Tournament-Scheduler/repositories"
	"golang.org/x/sync/errgroup"
)

// overviewConcurrency caps the per-scope fan-out so a dashboard request
// cannot monopolize the connection pool.
const overviewConcurrency = 4

// OverviewService summarizes every tournament scope that has recorded
// matches: participant count, match count, and the current leader.
type OverviewService interface {
	ListTournaments(ctx context.Context) ([]models.TournamentSummary, error)
}

type overviewService struct {
	matchRepo repositories.MatchRepository
	standings StandingsService
}

func NewOverviewService(matchRepo repositories.MatchRepository, standings StandingsService) OverviewService {
	return &overviewService{
		matchRepo: matchRepo,
		standings: standings,
	}
}

func (s *overviewService) ListTournaments(ctx context.Context) ([]models.TournamentSummary, error) {
	scopes, err := s.matchRepo.ListScopes(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	summaries := make([]models.TournamentSummary, len(scopes))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(overviewConcurrency)

	for i, scope := range scopes {
		i, scope := i, scope
		g.Go(func() error {
			summary, err := s.summarize(gCtx, scope)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *overviewService) summarize(ctx context.Context, scope int) (models.TournamentSummary, error) {
	summary := models.TournamentSummary{TournamentID: scope}

	matches, err := s.matchRepo.CountByScope(ctx, nil, scope)
	if err != nil {
		return summary, fmt.Errorf("summary for tournament %d: %w", scope, err)
	}
	summary.Matches = matches

	players, err := s.matchRepo.CountPlayersByScope(ctx, nil, scope)
	if err != nil {
		return summary, fmt.Errorf("summary for tournament %d: %w", scope, err)
	}
	summary.Players = players

	rows, err := s.standings.ComputeStandings(ctx, scope)
	if err != nil {
		return summary, fmt.Errorf("summary for tournament %d: %w", scope, err)
	}
	if len(rows) > 0 {
		leader := rows[0]
		summary.Leader = &leader
	}
	return summary, nil
}
