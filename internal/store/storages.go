package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/crud-clients/internal/config"
	"github.com/MKhiriev/crud-clients/internal/logger"
)

// Storages groups the repositories and the transactor built on one
// database connection.
type Storages struct {
	DB               *DB
	ClientRepository ClientRepository
	Transactor       Transactor
}

// NewStorages connects to the configured database, applies migrations and
// wires the repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Info().Str("dialect", db.Dialect()).Msg("database schema is up to date")

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:               db,
		ClientRepository: NewClientRepository(db, log),
		Transactor:       NewTransactor(db),
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
