package models

// MediaDeletionRequest selects how media attached to a note is handled when
// the note itself is deleted. It arrives as the JSON body of a delete
// request.
type MediaDeletionRequest struct {
	// KeepMedia chooses the media-handling branch: true detaches every
	// upload from the note and keeps the files; false deletes the files
	// permanently.
	KeepMedia bool `json:"keepMedia"`
}
