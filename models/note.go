package models

import "time"

// Note represents a markdown document with a stable internal identity and an
// optional human-chosen alias.
//
// Identity rules:
//   - ID is immutable and assigned at creation time (UUID v7).
//   - Alias, when set, is globally unique across all notes and resolves to
//     exactly one note at any point in time.
//
// Content holds the text of the latest revision. The revision history itself
// lives in the revisions table and is owned exclusively by the note: deleting
// a note cascades to all of its revisions.
type Note struct {
	// ID is the internal immutable note identifier (UUID).
	ID string `json:"id"`

	// Alias is the optional human-readable identifier of the note.
	// Nil when the note was created anonymously.
	Alias *string `json:"alias,omitempty"`

	// OwnerID references the user owning this note.
	// Nil for ownerless notes, which are allowed to exist.
	OwnerID *int64 `json:"-"`

	// Content is the markdown text of the latest revision.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// Title derives a short display/file name for the note: the alias when one is
// set, otherwise the internal id.
func (n Note) Title() string {
	if n.Alias != nil && *n.Alias != "" {
		return *n.Alias
	}

	return n.ID
}
