package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *sql.DB, *sql.Tx e *Connection
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
