package models

import "time"

// Revision is an immutable snapshot of a note's content at a point in time.
//
// Revisions of a note form a gap-free total order by Seq, starting at
// [FirstRevisionSeq]. A revision is never mutated after creation and is
// removed only as a cascade of its note's deletion. The content of the most
// recent revision always equals [Note.Content].
type Revision struct {
	// NoteID references the note this revision belongs to.
	NoteID string `json:"-"`

	// Seq is the per-note sequence identifier, monotonically increasing
	// starting at FirstRevisionSeq. Seq values are only meaningful within
	// the scope of a single note.
	Seq int64 `json:"seq"`

	// Content is the full markdown text of the snapshot.
	Content string `json:"content"`

	// Patch holds diff metadata relative to the previous revision.
	// The format is opaque to this service and stored as-is.
	Patch string `json:"patch"`

	// CreatedAt is the timestamp when the revision was appended.
	CreatedAt time.Time `json:"created_at"`
}

// FirstRevisionSeq is the sequence identifier assigned to the initial
// revision written at note creation.
const FirstRevisionSeq int64 = 1

// TableName returns the name of the database table
// associated with the Revision model.
func (r Revision) TableName() string {
	return "revisions"
}

// RevisionMetadata is the lightweight descriptor of a revision exposed by
// history listings; it omits the content payload.
type RevisionMetadata struct {
	// Seq is the per-note sequence identifier of the revision.
	Seq int64 `json:"seq"`

	// Length is the content length in bytes, provided so clients can size
	// history views without fetching full snapshots.
	Length int `json:"length"`

	// CreatedAt is the timestamp when the revision was appended.
	CreatedAt time.Time `json:"created_at"`
}

// Metadata derives the RevisionMetadata descriptor for this revision.
func (r Revision) Metadata() RevisionMetadata {
	return RevisionMetadata{
		Seq:       r.Seq,
		Length:    len(r.Content),
		CreatedAt: r.CreatedAt,
	}
}
