package store

import (
	"context"

	"github.com/mdpad/go-note-keeper/internal/config"
	"github.com/mdpad/go-note-keeper/internal/logger"
)

// Storages aggregates every persistence-layer component consumed by the
// service layer.
type Storages struct {
	NoteRepository     NoteRepository
	RevisionRepository RevisionRepository
	MediaStorage       MediaStorage
	HistoryRepository  HistoryRepository
	UserRepository     UserRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories and storages on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		NoteRepository:     NewNoteRepository(db, log),
		RevisionRepository: NewRevisionRepository(db, log),
		MediaStorage:       NewMediaStorage(db, cfg, log),
		HistoryRepository:  NewHistoryRepository(db, log),
		UserRepository:     NewUserRepository(db, log),
	}, nil
}
