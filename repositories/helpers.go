package repositories

import (
	"context"
	"database/sql"
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx, so every repository
// method can run either against the pooled handle or inside a transaction a
// service opened for snapshot consistency.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
