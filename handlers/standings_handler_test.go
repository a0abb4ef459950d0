package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
	"github.com/Deesus/Swiss-Tournament-Scheduler/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStandingsService struct {
	gotScope int
	rows     []models.StandingRow
	err      error
}

func (s *stubStandingsService) ComputeStandings(_ context.Context, scope int) ([]models.StandingRow, error) {
	s.gotScope = scope
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func newStandingsRouter(svc services.StandingsService) *chi.Mux {
	h := NewStandingsHandler(svc)
	router := chi.NewRouter()
	router.Get("/standings", h.Get)
	router.Get("/tournaments/{tournamentID}/standings", h.Get)
	return router
}

func TestStandingsHandlerGet(t *testing.T) {
	stub := &stubStandingsService{rows: []models.StandingRow{
		{PlayerID: 1, Name: "Attila", Wins: 2, GamesPlayed: 2, OpponentMatchWins: 1},
		{PlayerID: 2, Name: "Bleda", Wins: 0, GamesPlayed: 2, OpponentMatchWins: 2},
	}}
	router := newStandingsRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tournaments/7/standings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, stub.gotScope)

	var body struct {
		Standings []models.StandingRow `json:"standings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Standings, 2)
	assert.Equal(t, "Attila", body.Standings[0].Name)
}

func TestStandingsHandlerDefaultsToUnscoped(t *testing.T) {
	stub := &stubStandingsService{rows: []models.StandingRow{}}
	router := newStandingsRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/standings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ScopeAll, stub.gotScope)
}

func TestStandingsHandlerNotFound(t *testing.T) {
	stub := &stubStandingsService{err: services.ErrNotFound}
	router := newStandingsRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/standings", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStandingsHandlerBadScope(t *testing.T) {
	stub := &stubStandingsService{}
	router := newStandingsRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/standings?tournament_id=abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
