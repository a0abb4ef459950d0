package services

import (
	"context"
	"testing"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
	"github.com/stretchr/testify/require"
)

func TestResetMatches(t *testing.T) {
	_, playerRepo, matchRepo := newMemStore()
	standings := NewStandingsService(nil, playerRepo, matchRepo, false)
	svc := NewAdminService(nil, playerRepo, matchRepo)

	ids := registerPlayers(t, playerRepo, "a", "b")
	reportMatch(t, matchRepo, ids[0], ids[1], models.ScopeAll)

	require.NoError(t, svc.ResetMatches(context.Background()))

	rows, err := standings.ComputeStandings(context.Background(), models.ScopeAll)
	require.NoError(t, err)
	require.Len(t, rows, 2, "players survive a match reset")
	for _, row := range rows {
		require.Zero(t, row.GamesPlayed)
	}
}

func TestResetAll(t *testing.T) {
	_, playerRepo, matchRepo := newMemStore()
	standings := NewStandingsService(nil, playerRepo, matchRepo, false)
	svc := NewAdminService(nil, playerRepo, matchRepo)

	ids := registerPlayers(t, playerRepo, "a", "b")
	reportMatch(t, matchRepo, ids[0], ids[1], models.ScopeAll)

	require.NoError(t, svc.ResetAll(context.Background()))

	_, err := standings.ComputeStandings(context.Background(), models.ScopeAll)
	require.ErrorIs(t, err, ErrNotFound)
}
