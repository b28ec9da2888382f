// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdpad/go-note-keeper/internal/store"
	"github.com/mdpad/go-note-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn      func(ctx context.Context, note models.Note) (models.Note, error)
	findByIDFn    func(ctx context.Context, id string) (models.Note, error)
	findByAliasFn func(ctx context.Context, alias string) (models.Note, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) FindNoteByID(ctx context.Context, id string) (models.Note, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockNoteRepository) FindNoteByAlias(ctx context.Context, alias string) (models.Note, error) {
	if m.findByAliasFn != nil {
		return m.findByAliasFn(ctx, alias)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Resolve
// ─────────────────────────────────────────────

const testNoteID = "0192f7a4-19c8-7d3e-8f4a-2b6c9d1e5a30"

func TestNoteResolver_Resolve_ByID(t *testing.T) {
	want := models.Note{ID: testNoteID, Content: "hello"}
	repo := &mockNoteRepository{
		findByIDFn: func(_ context.Context, id string) (models.Note, error) {
			assert.Equal(t, testNoteID, id)
			return want, nil
		},
		findByAliasFn: func(_ context.Context, _ string) (models.Note, error) {
			t.Fatal("alias lookup must not run when the id matched")
			return models.Note{}, nil
		},
	}

	note, err := NewNoteResolver(repo).Resolve(context.Background(), testNoteID)

	require.NoError(t, err)
	assert.Equal(t, want, note)
}

func TestNoteResolver_Resolve_ByAlias(t *testing.T) {
	want := models.Note{ID: testNoteID, Content: "aliased"}
	repo := &mockNoteRepository{
		findByAliasFn: func(_ context.Context, alias string) (models.Note, error) {
			assert.Equal(t, "my-note", alias)
			return want, nil
		},
	}

	note, err := NewNoteResolver(repo).Resolve(context.Background(), "my-note")

	require.NoError(t, err)
	assert.Equal(t, want, note)
}

// A reference that parses as a UUID but matches no note id still gets one
// alias lookup before giving up.
func TestNoteResolver_Resolve_UUIDFallsBackToAlias(t *testing.T) {
	want := models.Note{ID: "other-id"}
	repo := &mockNoteRepository{
		findByAliasFn: func(_ context.Context, alias string) (models.Note, error) {
			assert.Equal(t, testNoteID, alias)
			return want, nil
		},
	}

	note, err := NewNoteResolver(repo).Resolve(context.Background(), testNoteID)

	require.NoError(t, err)
	assert.Equal(t, want, note)
}

func TestNoteResolver_Resolve_NotFound(t *testing.T) {
	_, err := NewNoteResolver(&mockNoteRepository{}).Resolve(context.Background(), "missing")

	require.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteResolver_Resolve_StorageError(t *testing.T) {
	errBoom := errors.New("connection reset")
	repo := &mockNoteRepository{
		findByAliasFn: func(_ context.Context, _ string) (models.Note, error) {
			return models.Note{}, errBoom
		},
	}

	_, err := NewNoteResolver(repo).Resolve(context.Background(), "my-note")

	require.ErrorIs(t, err, errBoom)
}

func TestNoteResolver_Resolve_InvalidReference(t *testing.T) {
	repo := &mockNoteRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Note, error) {
			t.Fatal("storage must not be touched for invalid references")
			return models.Note{}, nil
		},
		findByAliasFn: func(_ context.Context, _ string) (models.Note, error) {
			t.Fatal("storage must not be touched for invalid references")
			return models.Note{}, nil
		},
	}
	resolver := NewNoteResolver(repo)

	tests := []struct {
		name      string
		reference string
	}{
		{name: "empty", reference: ""},
		{name: "overlong", reference: strings.Repeat("a", maxReferenceLength+1)},
		{name: "illegal characters", reference: "has spaces"},
		{name: "path traversal", reference: "../etc/passwd"},
		{name: "reserved api", reference: "api"},
		{name: "reserved media", reference: "media"},
		{name: "reserved history", reference: "history"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Resolve(context.Background(), tt.reference)
			require.ErrorIs(t, err, ErrInvalidNoteReference)
		})
	}
}
