package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Deesus/Swiss-Tournament-Scheduler/live"
	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
	"github.com/Deesus/Swiss-Tournament-Scheduler/repositories"
)

// StandingsBroadcaster pushes a message to every live subscriber of a
// tournament room. Satisfied by *live.Hub.
type StandingsBroadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

type ReportMatchInput struct {
	WinnerID     int `json:"winner_id"`
	LoserID      int `json:"loser_id"`
	TournamentID int `json:"tournament_id"`
}

type MatchService interface {
	Report(ctx context.Context, input ReportMatchInput) (*models.Match, error)
}

type matchService struct {
	matchRepo repositories.MatchRepository
	standings StandingsService
	hub       StandingsBroadcaster
	logger    *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	standings StandingsService,
	hub StandingsBroadcaster,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		standings: standings,
		hub:       hub,
		logger:    logger,
	}
}

// Report appends one immutable match record. Identifier shape is checked
// up front; whether winner and loser differ or have already met is not
// checked. Recording is append-only and any such rule belongs to the
// caller.
func (s *matchService) Report(ctx context.Context, input ReportMatchInput) (*models.Match, error) {
	if input.WinnerID <= 0 {
		return nil, fmt.Errorf("%w: winner_id %d", ErrInvalidPlayerID, input.WinnerID)
	}
	if input.LoserID <= 0 {
		return nil, fmt.Errorf("%w: loser_id %d", ErrInvalidPlayerID, input.LoserID)
	}
	if input.TournamentID < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScope, input.TournamentID)
	}

	match := &models.Match{
		WinnerID:     input.WinnerID,
		LoserID:      input.LoserID,
		TournamentID: input.TournamentID,
	}
	if err := s.matchRepo.Append(ctx, nil, match); err != nil {
		if errors.Is(err, repositories.ErrMatchPlayerUnknown) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to record match: %w", err)
	}

	s.broadcastStandings(ctx, match.TournamentID)
	return match, nil
}

// broadcastStandings pushes the recomputed standings of the match's scope
// to live subscribers. Failures here never fail the report itself; the
// match is already committed.
func (s *matchService) broadcastStandings(ctx context.Context, scope int) {
	if s.hub == nil {
		return
	}
	rows, err := s.standings.ComputeStandings(ctx, scope)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to compute standings for live update",
				slog.Int("tournament_id", scope), slog.Any("error", err))
		}
		return
	}
	s.hub.BroadcastToRoom(strconv.Itoa(scope), live.Message{
		Type:    live.MessageStandingsUpdated,
		RoomID:  strconv.Itoa(scope),
		Payload: rows,
	})
}
