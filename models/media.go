package models

import "time"

// MediaUpload represents a stored file associated with zero or one note.
//
// The association is metadata, not ownership: deleting a note does not imply
// deleting its media. Once the association is cleared (NoteID set to nil) the
// upload is orphaned and never implicitly reattached.
type MediaUpload struct {
	// ID is the internal immutable upload identifier (UUID).
	ID string `json:"id"`

	// NoteID references the note this upload is attached to.
	// Nil for orphaned uploads.
	NoteID *string `json:"note_id,omitempty"`

	// OwnerID references the user who uploaded the file.
	OwnerID int64 `json:"-"`

	// FileName is the storage key of the physical file inside the media
	// file store.
	FileName string `json:"file_name"`

	// CreatedAt is the timestamp when the file was uploaded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the MediaUpload model.
func (m MediaUpload) TableName() string {
	return "media_uploads"
}
