package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mdpad/go-note-keeper/internal/logger"
)

// historyRepository is the PostgreSQL-backed implementation of
// [HistoryRepository]. The (user_id, note_id) primary key guarantees at most
// one entry per pair; writes go through ON CONFLICT upserts.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// TouchHistoryEntry upserts the last-visited marker for the (user, note)
// pair. Callers treat the write as best-effort; the repository still reports
// errors so they can be logged and, when classified retryable, repeated.
func (r *historyRepository) TouchHistoryEntry(ctx context.Context, userID int64, noteID string, visitedAt time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchHistoryEntry, userID, noteID, visitedAt); err != nil {
		log.Err(err).
			Str("func", "*historyRepository.TouchHistoryEntry").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: upserting history entry")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
