// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package service

import (
	"context"

	"github.com/mdpad/go-note-keeper/models"
)

// NoteResolver turns an external note reference (UUID or alias) into a stored
// note. Syntactic validation happens before any storage access.
type NoteResolver interface {
	// Resolve returns the note identified by reference.
	//
	// Possible errors: [ErrInvalidNoteReference], [store.ErrNoteNotFound].
	Resolve(ctx context.Context, reference string) (models.Note, error)
}

// PermissionEvaluator answers authorization questions about an acting user.
// A nil user is a guest. Methods are pure: they never touch storage.
type PermissionEvaluator interface {
	// IsOwner reports whether user owns note. Ownerless notes have no owner.
	IsOwner(user *models.User, note models.Note) bool
	// MayRead reports whether user may read note and its derived resources
	// (media listing, revisions, downloads).
	MayRead(user *models.User, note models.Note) bool
	// MayCreate reports whether user may create notes.
	MayCreate(user *models.User) bool
}

// NoteService is the note lifecycle orchestrator: it resolves references,
// enforces permissions and sequences storage operations.
type NoteService interface {
	// GetNote returns the note identified by reference, after a read
	// permission check, and records a history touch for named users.
	//
	// Possible errors: [ErrInvalidNoteReference], [store.ErrNoteNotFound],
	// [ErrReadingNoteDenied].
	GetNote(ctx context.Context, user *models.User, reference string) (models.Note, error)

	// CreateNote creates a note with a generated identifier and no alias.
	//
	// Possible errors: [ErrCreatingNoteDenied].
	CreateNote(ctx context.Context, user *models.User, content string) (models.Note, error)

	// CreateNamedNote creates a note addressable by alias.
	//
	// Possible errors: [ErrInvalidNoteReference], [ErrCreatingNoteDenied],
	// [store.ErrAliasAlreadyExists].
	CreateNamedNote(ctx context.Context, user *models.User, alias string, content string) (models.Note, error)

	// DeleteNote removes the note identified by reference, dealing with its
	// media uploads first. Only the owner may delete.
	//
	// Possible errors: [ErrInvalidNoteReference], [store.ErrNoteNotFound],
	// [ErrDeletingNoteDenied], [store.ErrFileStorage].
	DeleteNote(ctx context.Context, user *models.User, reference string, keepMedia bool) error

	// ListMedia returns the media uploads attached to the note.
	//
	// Possible errors: [ErrInvalidNoteReference], [store.ErrNoteNotFound],
	// [ErrReadingNoteDenied].
	ListMedia(ctx context.Context, user *models.User, reference string) ([]models.MediaUpload, error)

	// ListRevisions returns metadata for all revisions of the note, oldest
	// first.
	//
	// Possible errors: [ErrInvalidNoteReference], [store.ErrNoteNotFound],
	// [ErrReadingNoteDenied].
	ListRevisions(ctx context.Context, user *models.User, reference string) ([]models.RevisionMetadata, error)

	// GetRevision returns one revision of the note by sequence number.
	//
	// Possible errors: [ErrInvalidNoteReference], [store.ErrNoteNotFound],
	// [ErrReadingNoteDenied], [store.ErrRevisionNotFound].
	GetRevision(ctx context.Context, user *models.User, reference string, seq int64) (models.Revision, error)
}

// HistoryNotifier records note visits without blocking the caller. Failures
// are logged and never surface to the visit that triggered them.
type HistoryNotifier interface {
	// NotifyVisit enqueues a history touch for user and note. Guests are
	// ignored. The call never blocks: when the queue is full the touch is
	// dropped.
	NotifyVisit(user *models.User, note models.Note)
}

// UserService looks up acting users for authenticated requests.
type UserService interface {
	// GetUserByID returns the user with the given identifier.
	//
	// Possible errors: [store.ErrUserNotFound].
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}
