package services

import (
	"context"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
)

// PairingService produces the next round's matchups for a scope. Because
// the standings order already places players with equal or nearly-equal
// records next to each other, walking that order in consecutive pairs is
// the whole Swiss pairing policy: no distance metric or matching
// optimization is needed.
type PairingService interface {
	GeneratePairings(ctx context.Context, scope int) ([]models.Pairing, error)
}

type pairingService struct {
	standings StandingsService
}

func NewPairingService(standings StandingsService) PairingService {
	return &pairingService{standings: standings}
}

func (s *pairingService) GeneratePairings(ctx context.Context, scope int) ([]models.Pairing, error) {
	rows, err := s.standings.ComputeStandings(ctx, scope)
	if err != nil {
		return nil, err
	}

	// An even player count is assumed. With an odd standings length the
	// trailing player is left out of this round without a bye record,
	// matching the documented limitation of the system.
	pairings := make([]models.Pairing, 0, len(rows)/2)
	for i := 1; i < len(rows); i += 2 {
		pairings = append(pairings, models.Pairing{
			Player1ID:   rows[i-1].PlayerID,
			Player1Name: rows[i-1].Name,
			Player2ID:   rows[i].PlayerID,
			Player2Name: rows[i].Name,
		})
	}
	return pairings, nil
}
