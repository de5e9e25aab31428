package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/table-admin/config"
)

// Identity describes which store the process is connected to
type Identity struct {
	Driver   string
	Host     string
	Database string
	User     string
}

// Store is the process-wide connection pool together with its dialect
type Store struct {
	DB       *sql.DB
	Dialect  Dialect
	Identity Identity
}

// OpenDB opens the connection pool and verifies the store is reachable
func OpenDB(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	dialect, err := Lookup(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	if dsn == "" {
		dsn, err = dialect.DSN(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s DSN: %w", dialect.Name(), err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Callers queue for a free connection once the pool is exhausted
	db.SetMaxOpenConns(cfg.PoolSize)
	db.SetMaxIdleConns(cfg.PoolSize)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		DB:      db,
		Dialect: dialect,
		Identity: Identity{
			Driver:   dialect.Name(),
			Host:     cfg.Host,
			Database: cfg.Name,
			User:     cfg.User,
		},
	}, nil
}

// InitializeDatabase opens the store and prepares the audit table when asked to
func InitializeDatabase(ctx context.Context, cfg *config.Config) (*Store, error) {
	store, err := OpenDB(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Audit.Bootstrap {
		if err := EnsureAuditTable(ctx, store, cfg.Audit.Table); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to prepare audit table: %w", err)
		}
	}

	fmt.Printf("✅ %s connected: %s@%s/%s\n", store.Identity.Driver, store.Identity.User, store.Identity.Host, store.Identity.Database)
	return store, nil
}

// Ping checks that the store still answers
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close closes the connection pool
func (s *Store) Close() error {
	if s != nil && s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
