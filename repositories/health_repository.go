package repositories

import (
	"context"
	"database/sql"
)

// HealthRepository checks store liveness
type HealthRepository interface {
	Ping(ctx context.Context) error
}

type sqlHealthRepository struct {
	db *sql.DB
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(db *sql.DB) HealthRepository {
	return &sqlHealthRepository{db: db}
}

// Ping verifies a connection to the store can be used
func (r *sqlHealthRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
