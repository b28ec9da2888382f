package models

import "time"

// HistoryEntry records the last time a user viewed a note. At most one entry
// exists per (user, note) pair; writes use upsert semantics.
type HistoryEntry struct {
	// UserID references the viewing user.
	UserID int64 `json:"-"`

	// NoteID references the viewed note.
	NoteID string `json:"note_id"`

	// LastVisitedAt is the timestamp of the most recent read.
	LastVisitedAt time.Time `json:"last_visited_at"`
}

// TableName returns the name of the database table
// associated with the HistoryEntry model.
func (h HistoryEntry) TableName() string {
	return "history_entries"
}
