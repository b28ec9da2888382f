package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mdpad/go-note-keeper/internal/logger"
)

func newTestMediaRepo(t *testing.T) (*mediaRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &mediaRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func mediaColumns() []string {
	return []string{"id", "note_id", "owner_id", "file_name", "created_at"}
}

func TestListUploadsByNote_Success(t *testing.T) {
	repo, mock, db := newTestMediaRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(mediaColumns()).
		AddRow("m-1", "note-1", 7, "a.png", now.Add(-time.Hour)).
		AddRow("m-2", "note-1", 7, "b.png", now)

	mock.ExpectQuery("SELECT (.+) FROM media_uploads WHERE note_id = (.+) ORDER BY created_at ASC").
		WithArgs("note-1").
		WillReturnRows(rows)

	uploads, err := repo.ListUploadsByNote(ctx, "note-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uploads) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(uploads))
	}
	if uploads[0].FileName != "a.png" || uploads[1].FileName != "b.png" {
		t.Errorf("uploads out of order: %v, %v", uploads[0].FileName, uploads[1].FileName)
	}
	if uploads[0].NoteID == nil || *uploads[0].NoteID != "note-1" {
		t.Errorf("expected note association, got %v", uploads[0].NoteID)
	}
}

func TestListUploadsByNote_Empty(t *testing.T) {
	repo, mock, db := newTestMediaRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM media_uploads").
		WithArgs("note-1").
		WillReturnRows(sqlmock.NewRows(mediaColumns()))

	uploads, err := repo.ListUploadsByNote(ctx, "note-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uploads) != 0 {
		t.Fatalf("expected no uploads, got %d", len(uploads))
	}
}

func TestListUploadsByNote_QueryError(t *testing.T) {
	repo, mock, db := newTestMediaRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM media_uploads").
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListUploadsByNote(ctx, "note-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestRemoveNoteFromUpload_Idempotent(t *testing.T) {
	repo, mock, db := newTestMediaRepo(t)
	defer db.Close()

	ctx := context.Background()

	// the UPDATE touches zero rows on a detached upload and still succeeds
	mock.ExpectExec("UPDATE media_uploads").
		WithArgs("m-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.RemoveNoteFromUpload(ctx, "m-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRemoveNoteFromUpload_DBError(t *testing.T) {
	repo, mock, db := newTestMediaRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE media_uploads").
		WillReturnError(errors.New("db network error"))

	err := repo.RemoveNoteFromUpload(ctx, "m-1")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestDeleteUploadMetadata_Idempotent(t *testing.T) {
	repo, mock, db := newTestMediaRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM media_uploads").
		WithArgs("m-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteUploadMetadata(ctx, "m-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
