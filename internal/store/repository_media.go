package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/models"
)

// mediaRepository is the PostgreSQL-backed implementation of
// [MediaRepository]. It only manages metadata rows in "media_uploads";
// physical file contents are the concern of [MediaFileStorage].
type mediaRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMediaRepository constructs a [MediaRepository] backed by the provided
// database connection and logger.
func NewMediaRepository(db *DB, logger *logger.Logger) MediaRepository {
	logger.Debug().Msg("creating media repository")
	return &mediaRepository{
		db:     db,
		logger: logger,
	}
}

// ListUploadsByNote returns the uploads attached to the note, ordered
// ascending by creation time. The listing is a snapshot at query time;
// concurrent detaches or deletes are not reflected in an already-returned
// slice.
func (r *mediaRepository) ListUploadsByNote(ctx context.Context, noteID string) ([]models.MediaUpload, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "note_id", "owner_id", "file_name", "created_at").
		From(models.MediaUpload{}.TableName()).
		Where(sq.Eq{"note_id": noteID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.ListUploadsByNote").Msg("error: building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.ListUploadsByNote").Msg("error: querying media uploads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	uploads := make([]models.MediaUpload, 0)
	for rows.Next() {
		var upload models.MediaUpload
		if err := rows.Scan(&upload.ID, &upload.NoteID, &upload.OwnerID, &upload.FileName, &upload.CreatedAt); err != nil {
			log.Err(err).Str("func", "*mediaRepository.ListUploadsByNote").Msg("error: scanning media row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		uploads = append(uploads, upload)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*mediaRepository.ListUploadsByNote").Msg("error: iterating media rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return uploads, nil
}

// RemoveNoteFromUpload clears the note association of the upload. The UPDATE
// writes NULL unconditionally, which makes the operation idempotent: running
// it against an already-detached or already-deleted upload affects zero rows
// and reports success.
func (r *mediaRepository) RemoveNoteFromUpload(ctx context.Context, mediaID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeNoteFromUpload, mediaID); err != nil {
		log.Err(err).Str("func", "*mediaRepository.RemoveNoteFromUpload").Msg("error: detaching media upload")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteUploadMetadata removes the metadata row of the upload. Zero affected
// rows is not an error: a retried cleanup simply finds the row already gone.
func (r *mediaRepository) DeleteUploadMetadata(ctx context.Context, mediaID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteUploadMetadata, mediaID); err != nil {
		log.Err(err).Str("func", "*mediaRepository.DeleteUploadMetadata").Msg("error: deleting media metadata")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
