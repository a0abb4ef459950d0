package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
	"github.com/Deesus/Swiss-Tournament-Scheduler/repositories"
)

// memStore is a shared in-memory stand-in for the players and matches
// tables. The repository fakes over it mirror the SQL implementations'
// semantics, including registration order and the unscoped tournament id.
type memStore struct {
	mu      sync.Mutex
	players []models.Player
	matches []models.Match
}

func newMemStore() (*memStore, repositories.PlayerRepository, repositories.MatchRepository) {
	store := &memStore{}
	return store, &memPlayerRepo{store: store}, &memMatchRepo{store: store}
}

func inScope(m models.Match, scope int) bool {
	return scope == models.ScopeAll || m.TournamentID == scope
}

type memPlayerRepo struct {
	store *memStore
}

func (r *memPlayerRepo) Create(_ context.Context, _ repositories.SQLExecutor, player *models.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	player.ID = len(r.store.players) + 1
	player.CreatedAt = time.Now()
	r.store.players = append(r.store.players, *player)
	return nil
}

func (r *memPlayerRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.players {
		if p.ID == id {
			player := p
			return &player, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *memPlayerRepo) ListAll(_ context.Context, _ repositories.SQLExecutor) ([]models.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	players := make([]models.Player, len(r.store.players))
	copy(players, r.store.players)
	return players, nil
}

func (r *memPlayerRepo) CountAll(_ context.Context, _ repositories.SQLExecutor) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.players), nil
}

func (r *memPlayerRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.players = nil
	r.store.matches = nil // matches cascade on player deletion
	return nil
}

type memMatchRepo struct {
	store *memStore
}

func (r *memMatchRepo) Append(_ context.Context, _ repositories.SQLExecutor, match *models.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	known := map[int]bool{}
	for _, p := range r.store.players {
		known[p.ID] = true
	}
	if !known[match.WinnerID] || !known[match.LoserID] {
		return repositories.ErrMatchPlayerUnknown
	}
	match.ID = len(r.store.matches) + 1
	match.CreatedAt = time.Now()
	r.store.matches = append(r.store.matches, *match)
	return nil
}

func (r *memMatchRepo) CountByScope(_ context.Context, _ repositories.SQLExecutor, scope int) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	count := 0
	for _, m := range r.store.matches {
		if inScope(m, scope) {
			count++
		}
	}
	return count, nil
}

func (r *memMatchRepo) CountPlayersByScope(_ context.Context, _ repositories.SQLExecutor, scope int) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	participants := map[int]bool{}
	for _, m := range r.store.matches {
		if inScope(m, scope) {
			participants[m.WinnerID] = true
			participants[m.LoserID] = true
		}
	}
	return len(participants), nil
}

func (r *memMatchRepo) ListPlayersWithGamesPlayed(_ context.Context, _ repositories.SQLExecutor, scope int) ([]models.StandingRow, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var rows []models.StandingRow
	for _, p := range r.store.players {
		row := models.StandingRow{PlayerID: p.ID, Name: p.Name}
		for _, m := range r.store.matches {
			if !inScope(m, scope) {
				continue
			}
			if m.WinnerID == p.ID {
				row.Wins++
				row.GamesPlayed++
			} else if m.LoserID == p.ID {
				row.GamesPlayed++
			}
		}
		if scope != models.ScopeAll && row.GamesPlayed == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *memMatchRepo) OpponentWinsByPlayer(_ context.Context, _ repositories.SQLExecutor, scope int, countRematches bool) (map[int]int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	wins := map[int]int{}
	for _, m := range r.store.matches {
		if inScope(m, scope) {
			wins[m.WinnerID]++
		}
	}

	omw := map[int]int{}
	seen := map[[2]int]bool{}
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
	for _, m := range r.store.matches {
		if inScope(m, scope) {
			addOpponent(m.WinnerID, m.LoserID)
			addOpponent(m.LoserID, m.WinnerID)
		}
	}
	return omw, nil
}

func (r *memMatchRepo) ListScopes(_ context.Context, _ repositories.SQLExecutor) ([]int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	distinct := map[int]bool{}
	for _, m := range r.store.matches {
		distinct[m.TournamentID] = true
	}
	scopes := make([]int, 0, len(distinct))
	for scope := range distinct {
		scopes = append(scopes, scope)
	}
	sort.Ints(scopes)
	return scopes, nil
}

func (r *memMatchRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.matches = nil
	return nil
}

// recordingBroadcaster captures messages pushed after a match report.
type recordingBroadcaster struct {
	mu       sync.Mutex
	rooms    []string
	messages []interface{}
}

func (b *recordingBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms = append(b.rooms, roomID)
	b.messages = append(b.messages, message)
}
