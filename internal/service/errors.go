package service

import "errors"

// Sentinel errors returned by service methods. The HTTP layer maps these to
// protocol statuses; match with [errors.Is].
var (
	// ErrInvalidNoteReference is returned when a note reference or
	// requested alias is syntactically disallowed (reserved word, illegal
	// characters, overlong). It is raised before any storage lookup.
	ErrInvalidNoteReference = errors.New("invalid note reference")

	// ErrReadingNoteDenied is returned when the permission evaluator
	// denies a read-family operation for the acting user.
	ErrReadingNoteDenied = errors.New("reading note denied")

	// ErrCreatingNoteDenied is returned when the permission evaluator
	// denies note creation for the acting user.
	ErrCreatingNoteDenied = errors.New("creating note denied")

	// ErrDeletingNoteDenied is returned when the acting user is not the
	// owner of the note to delete.
	ErrDeletingNoteDenied = errors.New("deleting note denied")
)
