package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Deesus/Swiss-Tournament-Scheduler/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error)
	ListAll(ctx context.Context, exec SQLExecutor) ([]models.Player, error)
	CountAll(ctx context.Context, exec SQLExecutor) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPlayerRepository) Create(ctx context.Context, exec SQLExecutor, player *models.Player) error {
	query := `
		INSERT INTO players (name)
		VALUES ($1)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query, player.Name).
		Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error) {
	query := `
		SELECT id, name, created_at
		FROM players
		WHERE id = $1`

	player := &models.Player{}
	err := r.getExecutor(exec).QueryRowContext(ctx, query, id).
		Scan(&player.ID, &player.Name, &player.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player by id %d: %w", id, err)
	}
	return player, nil
}

func (r *postgresPlayerRepository) ListAll(ctx context.Context, exec SQLExecutor) ([]models.Player, error) {
	query := `
		SELECT id, name, created_at
		FROM players
		ORDER BY id`

	rows, err := r.getExecutor(exec).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("player rows iteration error: %w", err)
	}
	return players, nil
}

func (r *postgresPlayerRepository) CountAll(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	err := r.getExecutor(exec).QueryRowContext(ctx, `SELECT COUNT(id) FROM players`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

// DeleteAll removes every player record. Match records reference players
// with ON DELETE CASCADE, so callers that want matches preserved must not
// call this; the admin service always clears matches in the same
// transaction.
func (r *postgresPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}
	return nil
}
