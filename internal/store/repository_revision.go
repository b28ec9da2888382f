package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/models"
)

// revisionRepository is the PostgreSQL-backed implementation of
// [RevisionRepository]. The "revisions" table is append-only from its point
// of view: rows are written by [NoteRepository.CreateNote] and by the editing
// pipeline, and disappear only through the note-deletion cascade.
type revisionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRevisionRepository constructs a [RevisionRepository] backed by the
// provided database connection and logger.
func NewRevisionRepository(db *DB, logger *logger.Logger) RevisionRepository {
	logger.Debug().Msg("creating revision repository")
	return &revisionRepository{
		db:     db,
		logger: logger,
	}
}

// ListMetadataByNote returns revision metadata for the note, ordered
// ascending by sequence identifier. Content payloads are not fetched; the
// query derives the length column server-side.
func (r *revisionRepository) ListMetadataByNote(ctx context.Context, noteID string) ([]models.RevisionMetadata, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRevisionMetadata, noteID)
	if err != nil {
		log.Err(err).Str("func", "*revisionRepository.ListMetadataByNote").Msg("error: querying revision metadata")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	metadata := make([]models.RevisionMetadata, 0)
	for rows.Next() {
		var m models.RevisionMetadata
		if err := rows.Scan(&m.Seq, &m.Length, &m.CreatedAt); err != nil {
			log.Err(err).Str("func", "*revisionRepository.ListMetadataByNote").Msg("error: scanning metadata row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		metadata = append(metadata, m)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*revisionRepository.ListMetadataByNote").Msg("error: iterating metadata rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return metadata, nil
}

// GetRevision retrieves a single revision addressed by the (note, seq) pair.
// The WHERE clause matches both columns, so a seq value that exists under a
// different note cannot leak across note boundaries.
//
// Error handling:
//   - sql.ErrNoRows → [ErrRevisionNotFound].
//   - Any other error → wrapped as "unexpected DB error".
func (r *revisionRepository) GetRevision(ctx context.Context, noteID string, seq int64) (models.Revision, error) {
	log := logger.FromContext(ctx)

	var revision models.Revision
	row := r.db.QueryRowContext(ctx, getRevision, noteID, seq)

	if err := row.Scan(&revision.NoteID, &revision.Seq, &revision.Content, &revision.Patch, &revision.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Revision{}, ErrRevisionNotFound
		}

		log.Err(err).Str("func", "*revisionRepository.GetRevision").Msg("error: scanning revision row")
		return models.Revision{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return revision, nil
}
