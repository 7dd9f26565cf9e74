package store

import (
	"context"

	"phishguard/internal/config"
	"phishguard/internal/logger"
)

// Storages bundles every persistence dependency the service layer needs.
type Storages struct {
	Credentials CredentialStore
}

// NewStorages selects and initializes the credential store backend:
// PostgreSQL when a DSN is configured, SQLite when a file path is
// configured, and the in-memory store otherwise. SQL backends are migrated
// before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch {
	case cfg.DB.DSN != "":
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, err
		}
		return &Storages{Credentials: NewUserRepository(db, log)}, nil

	case cfg.DB.SQLitePath != "":
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, err
		}
		return &Storages{Credentials: NewUserRepository(db, log)}, nil

	default:
		return &Storages{Credentials: NewMemoryStore(log)}, nil
	}
}
