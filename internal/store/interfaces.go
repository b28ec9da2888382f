package store

import (
	"context"
	"time"

	"github.com/mdpad/go-note-keeper/models"
)

// NoteRepository provides persistence operations for notes and their
// revision history. A note exclusively owns its revisions: creating a note
// writes the initial revision in the same transaction, and deleting a note
// cascades to all of its revisions at the database level.
type NoteRepository interface {
	// CreateNote persists a new note together with its first revision and
	// returns the canonical database representation. Returns
	// ErrAliasAlreadyExists when the requested alias is already taken.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// FindNoteByID retrieves a note by its internal id.
	// Returns ErrNoteNotFound when no such note exists.
	FindNoteByID(ctx context.Context, id string) (models.Note, error)

	// FindNoteByAlias retrieves a note by its alias.
	// Returns ErrNoteNotFound when no note holds the alias.
	FindNoteByAlias(ctx context.Context, alias string) (models.Note, error)

	// DeleteNote removes a note and, through the schema cascade, all of
	// its revisions and history entries. Returns ErrNoteNotFound when the
	// note is already gone, keeping repeated deletes observable but safe.
	DeleteNote(ctx context.Context, id string) error
}

// RevisionRepository provides read access to the append-only revision
// history of a note.
type RevisionRepository interface {
	// ListMetadataByNote returns the metadata of every revision of the
	// note, ordered ascending by sequence identifier.
	ListMetadataByNote(ctx context.Context, noteID string) ([]models.RevisionMetadata, error)

	// GetRevision retrieves one revision addressed by the (note, seq)
	// pair. Both parts are matched; a seq that only exists under another
	// note yields ErrRevisionNotFound.
	GetRevision(ctx context.Context, noteID string, seq int64) (models.Revision, error)
}

// MediaRepository provides persistence operations for media upload metadata.
// Physical file contents live in [MediaFileStorage].
type MediaRepository interface {
	// ListUploadsByNote returns every upload attached to the note, ordered
	// ascending by creation time. The result is a snapshot at call time.
	ListUploadsByNote(ctx context.Context, noteID string) ([]models.MediaUpload, error)

	// RemoveNoteFromUpload clears the note association of an upload.
	// Idempotent: detaching an already-detached upload is a no-op.
	RemoveNoteFromUpload(ctx context.Context, mediaID string) error

	// DeleteUploadMetadata removes the metadata row of an upload.
	// Idempotent: deleting an already-deleted row is a no-op.
	DeleteUploadMetadata(ctx context.Context, mediaID string) error
}

// MediaFileStorage abstracts the physical file store holding uploaded media
// contents.
type MediaFileStorage interface {
	// DeleteFile removes the stored file identified by fileName. A file
	// that is already gone counts as successfully deleted, so retries of a
	// partially-failed media cleanup stay safe.
	DeleteFile(ctx context.Context, fileName string) error
}

// MediaStorage is the media registry consumed by the service layer. It
// coordinates metadata rows and physical files so that a failed physical
// deletion never silently drops the metadata pointing at the file.
type MediaStorage interface {
	// ListUploadsByNote returns every upload attached to the note, ordered
	// ascending by creation time.
	ListUploadsByNote(ctx context.Context, noteID string) ([]models.MediaUpload, error)

	// RemoveAssociation clears the upload's note association, orphaning
	// the upload. Idempotent; never fails on an already-detached upload.
	RemoveAssociation(ctx context.Context, media models.MediaUpload) error

	// DeletePermanently removes the physical file and then the metadata
	// row. When the physical deletion fails the metadata row is kept and
	// ErrFileStorage is returned, leaving a retryable state.
	DeletePermanently(ctx context.Context, media models.MediaUpload) error
}

// HistoryRepository records per-(user, note) last-viewed markers.
type HistoryRepository interface {
	// TouchHistoryEntry upserts the history entry for the (user, note)
	// pair, setting its last-visited timestamp. At most one row exists per
	// pair.
	TouchHistoryEntry(ctx context.Context, userID int64, noteID string, visitedAt time.Time) error
}

// UserRepository provides lookups of acting-user identities resolved by the
// transport layer.
type UserRepository interface {
	// FindUserByID retrieves a user record by internal id.
	// Returns ErrUserNotFound when no such user exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ErrorClassificator classifies database errors as retryable or not, letting
// callers decide whether a failed operation is worth repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
