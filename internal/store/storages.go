package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

// Storages groups the storage components handed to the service layer.
type Storages struct {
	HistoryStorage HistoryStorage

	// db is nil for the in-memory history.
	db *DB
}

// NewStorages builds the server storage: PostgreSQL when a DSN is configured,
// process memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		log.Warn().Msg("no database DSN configured, history is kept in memory")
		return &Storages{
			HistoryStorage: NewHistoryStorage(NewMemoryHistoryRepository(), cfg.History, log),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		HistoryStorage: NewHistoryStorage(NewHistoryRepository(db, log), cfg.History, log),
		db:             db,
	}, nil
}

// NewClientStorages opens (creating if needed) the local SQLite history file
// and migrates it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		HistoryStorage: NewHistoryStorage(NewHistoryRepository(db, log), cfg.History, log),
		db:             db,
	}, nil
}

// Ping reports whether the backing database is reachable. The in-memory
// history is always ready.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
