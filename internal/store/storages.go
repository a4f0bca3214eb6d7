package store

import (
	"context"
	"fmt"

	"github.com/ivmikh/notes-keeper/internal/config"
	"github.com/ivmikh/notes-keeper/internal/logger"
)

// Storages bundles the repositories behind one constructor so the service
// layer receives a single dependency.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending schema migrations and
// constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
