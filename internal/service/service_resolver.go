// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/store"
	"github.com/mdpad/go-note-keeper/models"
)

const maxReferenceLength = 64

var referencePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// forbiddenReferences are path segments the HTTP surface claims for itself.
// Notes may never be addressed by them, nor created under them as aliases.
var forbiddenReferences = map[string]struct{}{
	"api":         {},
	"config":      {},
	"favicon.ico": {},
	"history":     {},
	"login":       {},
	"logout":      {},
	"media":       {},
	"notes":       {},
	"register":    {},
	"revisions":   {},
	"robots.txt":  {},
	"upload":      {},
}

type noteResolver struct {
	notes store.NoteRepository
}

// NewNoteResolver returns a NoteResolver backed by the given note repository.
func NewNoteResolver(notes store.NoteRepository) NoteResolver {
	return &noteResolver{notes: notes}
}

// validateReference rejects syntactically disallowed references without
// touching storage.
func validateReference(reference string) error {
	if reference == "" || len(reference) > maxReferenceLength {
		return fmt.Errorf("%w: %q", ErrInvalidNoteReference, reference)
	}
	if _, forbidden := forbiddenReferences[reference]; forbidden {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidNoteReference, reference)
	}
	if !referencePattern.MatchString(reference) {
		return fmt.Errorf("%w: %q", ErrInvalidNoteReference, reference)
	}
	return nil
}

// Resolve validates reference, then tries it as a UUID primary key and falls
// back to an alias lookup. A UUID-shaped reference is tried as a primary key
// first; on a miss it still gets the alias lookup.
func (r *noteResolver) Resolve(ctx context.Context, reference string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := validateReference(reference); err != nil {
		log.Debug().Str("func", "*noteResolver.Resolve").Str("reference", reference).Msg("reference rejected")
		return models.Note{}, err
	}

	if _, err := uuid.Parse(reference); err == nil {
		note, err := r.notes.FindNoteByID(ctx, reference)
		if err != nil && !errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, fmt.Errorf("resolving note by id: %w", err)
		}
		if err == nil {
			return note, nil
		}
		// a UUID that is not a note id may still be someone's alias
	}

	note, err := r.notes.FindNoteByAlias(ctx, reference)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, err
		}
		return models.Note{}, fmt.Errorf("resolving note by alias: %w", err)
	}
	return note, nil
}
