package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdpad/go-note-keeper/internal/logger"
)

func newTestFileStorage(t *testing.T) (*mediaFileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	return &mediaFileStorage{dir: dir, logger: logger.Nop()}, dir
}

func TestDeleteFile_RemovesExistingFile(t *testing.T) {
	storage, dir := newTestFileStorage(t)

	path := filepath.Join(dir, "upload.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := storage.DeleteFile(context.Background(), "upload.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file to be gone, stat err: %v", err)
	}
}

func TestDeleteFile_MissingFileIsSuccess(t *testing.T) {
	storage, _ := newTestFileStorage(t)

	if err := storage.DeleteFile(context.Background(), "never-existed.png"); err != nil {
		t.Fatalf("expected nil for missing file, got %v", err)
	}
}

func TestDeleteFile_RejectsEscapingNames(t *testing.T) {
	storage, _ := newTestFileStorage(t)

	for _, name := range []string{"../escape.png", "/etc/passwd", "a/../../b"} {
		err := storage.DeleteFile(context.Background(), name)
		if !errors.Is(err, ErrFileStorage) {
			t.Errorf("name %q: expected ErrFileStorage, got %v", name, err)
		}
	}
}
