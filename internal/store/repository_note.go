package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It handles note rows in the "notes" table and writes the initial revision
// row at creation time.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note row and its first revision inside one
// transaction, so a note is never observable without its revision history
// origin. The returned [models.Note] carries the server-assigned CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAliasAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: beginning transaction")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	var saved models.Note
	row := tx.QueryRowContext(ctx, createNote, note.ID, note.Alias, note.OwnerID, note.Content)

	// insert note row and scan the canonical representation
	if err := row.Scan(&saved.ID, &saved.Alias, &saved.OwnerID, &saved.Content, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: inserting note")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Note{}, ErrAliasAlreadyExists
		default:
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// the first revision snapshots the initial content; its patch is the
	// full text since there is no predecessor to diff against
	if _, err := tx.ExecContext(ctx, createRevision, saved.ID, models.FirstRevisionSeq, saved.Content, saved.Content); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: inserting first revision")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: committing transaction")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindNoteByID retrieves a note record by its internal id.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoteNotFound].
//   - Any other error → wrapped as "unexpected DB error".
func (r *noteRepository) FindNoteByID(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, findNoteByID, id)

	if err := row.Scan(&note.ID, &note.Alias, &note.OwnerID, &note.Content, &note.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("error: scanning note row")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// FindNoteByAlias retrieves a note record by its human-chosen alias.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoteNotFound].
//   - Any other error → wrapped as "unexpected DB error".
func (r *noteRepository) FindNoteByAlias(ctx context.Context, alias string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, findNoteByAlias, alias)

	if err := row.Scan(&note.ID, &note.Alias, &note.OwnerID, &note.Content, &note.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.FindNoteByAlias").Msg("error: scanning note row")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// DeleteNote removes the note row. Revisions and history entries disappear
// through the schema's ON DELETE CASCADE, which keeps the multi-table
// cleanup atomic at the database level.
//
// Error handling:
//   - zero rows affected → [ErrNoteNotFound] (the note was already gone;
//     a concurrent retry of the same delete lands here and stays harmless).
//   - Any other error → wrapped as "unexpected DB error".
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: deleting note")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
