// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/store"
	"github.com/mdpad/go-note-keeper/models"
)

type noteService struct {
	resolver    NoteResolver
	permissions PermissionEvaluator
	notes       store.NoteRepository
	revisions   store.RevisionRepository
	media       store.MediaStorage
	history     HistoryNotifier

	newID func() (uuid.UUID, error)
}

// NewNoteService wires the note lifecycle orchestrator.
func NewNoteService(
	resolver NoteResolver,
	permissions PermissionEvaluator,
	notes store.NoteRepository,
	revisions store.RevisionRepository,
	media store.MediaStorage,
	history HistoryNotifier,
) NoteService {
	return &noteService{
		resolver:    resolver,
		permissions: permissions,
		notes:       notes,
		revisions:   revisions,
		media:       media,
		history:     history,
		newID:       uuid.NewV7,
	}
}

// resolveForRead resolves reference and enforces the read permission, the
// shared prelude of every read-family operation.
func (s *noteService) resolveForRead(ctx context.Context, user *models.User, reference string) (models.Note, error) {
	note, err := s.resolver.Resolve(ctx, reference)
	if err != nil {
		return models.Note{}, err
	}
	if !s.permissions.MayRead(user, note) {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrReadingNoteDenied, note.ID)
	}
	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, user *models.User, reference string) (models.Note, error) {
	note, err := s.resolveForRead(ctx, user, reference)
	if err != nil {
		return models.Note{}, err
	}
	s.history.NotifyVisit(user, note)
	return note, nil
}

func (s *noteService) CreateNote(ctx context.Context, user *models.User, content string) (models.Note, error) {
	return s.create(ctx, user, nil, content)
}

func (s *noteService) CreateNamedNote(ctx context.Context, user *models.User, alias string, content string) (models.Note, error) {
	if err := validateReference(alias); err != nil {
		return models.Note{}, err
	}
	return s.create(ctx, user, &alias, content)
}

func (s *noteService) create(ctx context.Context, user *models.User, alias *string, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !s.permissions.MayCreate(user) {
		return models.Note{}, ErrCreatingNoteDenied
	}

	id, err := s.newID()
	if err != nil {
		return models.Note{}, fmt.Errorf("generating note id: %w", err)
	}

	note := models.Note{ID: id.String(), Alias: alias, Content: content}
	if user != nil {
		ownerID := user.UserID
		note.OwnerID = &ownerID
	}

	created, err := s.notes.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, err
	}

	log.Info().
		Str("func", "*noteService.create").
		Str("note_id", created.ID).
		Msg("note created")
	return created, nil
}

// DeleteNote removes a note after dealing with its media uploads. Media is
// handled before the note row goes away, and every step tolerates state left
// behind by an earlier partial failure, so a failed delete can be retried.
func (s *noteService) DeleteNote(ctx context.Context, user *models.User, reference string, keepMedia bool) error {
	log := logger.FromContext(ctx)

	note, err := s.resolver.Resolve(ctx, reference)
	if err != nil {
		return err
	}
	if !s.permissions.IsOwner(user, note) {
		return fmt.Errorf("%w: note %s", ErrDeletingNoteDenied, note.ID)
	}

	uploads, err := s.media.ListUploadsByNote(ctx, note.ID)
	if err != nil {
		return fmt.Errorf("listing media before delete: %w", err)
	}
	for _, upload := range uploads {
		if keepMedia {
			err = s.media.RemoveAssociation(ctx, upload)
		} else {
			err = s.media.DeletePermanently(ctx, upload)
		}
		if err != nil {
			return fmt.Errorf("handling media %s before delete: %w", upload.ID, err)
		}
	}

	if err := s.notes.DeleteNote(ctx, note.ID); err != nil {
		return err
	}

	log.Info().
		Str("func", "*noteService.DeleteNote").
		Str("note_id", note.ID).
		Bool("keep_media", keepMedia).
		Int("media_count", len(uploads)).
		Msg("note deleted")
	return nil
}

func (s *noteService) ListMedia(ctx context.Context, user *models.User, reference string) ([]models.MediaUpload, error) {
	note, err := s.resolveForRead(ctx, user, reference)
	if err != nil {
		return nil, err
	}
	uploads, err := s.media.ListUploadsByNote(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

func (s *noteService) ListRevisions(ctx context.Context, user *models.User, reference string) ([]models.RevisionMetadata, error) {
	note, err := s.resolveForRead(ctx, user, reference)
	if err != nil {
		return nil, err
	}
	metadata, err := s.revisions.ListMetadataByNote(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	return metadata, nil
}

func (s *noteService) GetRevision(ctx context.Context, user *models.User, reference string, seq int64) (models.Revision, error) {
	note, err := s.resolveForRead(ctx, user, reference)
	if err != nil {
		return models.Revision{}, err
	}
	revision, err := s.revisions.GetRevision(ctx, note.ID, seq)
	if err != nil {
		return models.Revision{}, err
	}
	return revision, nil
}
