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

func newTestHistoryRepo(t *testing.T) (*historyRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &historyRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestTouchHistoryEntry_Upsert(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	visitedAt := time.Now()

	mock.ExpectExec("INSERT INTO history_entries").
		WithArgs(int64(7), "note-1", visitedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchHistoryEntry(ctx, 7, "note-1", visitedAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTouchHistoryEntry_DBError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO history_entries").
		WillReturnError(errors.New("db network error"))

	err := repo.TouchHistoryEntry(ctx, 7, "note-1", time.Now())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
