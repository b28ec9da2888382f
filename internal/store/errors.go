package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when a lookup or delete targets a note
	// (by id or alias) that does not exist in the database.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrAliasAlreadyExists is returned when an attempt to create a named
	// note fails because another note already holds the requested alias.
	// The alias unique constraint guarantees at most one holder at a time.
	ErrAliasAlreadyExists = errors.New("note alias already exists")

	// ErrRevisionNotFound is returned when a revision lookup targets a
	// (note, sequence) pair that does not exist. A sequence number that
	// exists under a different note still yields this error: revisions are
	// only addressable through their own note.
	ErrRevisionNotFound = errors.New("revision was not found")

	// ErrMediaNotFound is returned when a media operation targets an upload
	// whose metadata row does not exist in the database.
	ErrMediaNotFound = errors.New("media upload was not found")

	// ErrUserNotFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrFileStorage is returned when the physical media file backing an
	// upload cannot be removed. The metadata row is intentionally kept in
	// this case so the deletion can be retried; losing track of a
	// physically-present file would be silent data loss.
	ErrFileStorage = errors.New("media file storage failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
