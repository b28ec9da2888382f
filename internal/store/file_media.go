// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdpad/go-note-keeper/internal/logger"
)

// mediaFileStorage is the local-filesystem implementation of
// [MediaFileStorage]. Uploaded files live flat inside a configured directory
// under their storage key.
type mediaFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewMediaFileStorage constructs a [MediaFileStorage] rooted at dir.
func NewMediaFileStorage(dir string, logger *logger.Logger) MediaFileStorage {
	logger.Debug().Str("dir", dir).Msg("creating media file storage")
	return &mediaFileStorage{
		dir:    dir,
		logger: logger,
	}
}

// DeleteFile removes the physical file identified by fileName from the media
// directory.
//
// A missing file is treated as success: the only way the file disappears is
// a previous deletion attempt that failed after the unlink, so a retry must
// not get stuck on it. Any other failure is wrapped into [ErrFileStorage] so
// the caller keeps the metadata row for a later retry.
func (s *mediaFileStorage) DeleteFile(ctx context.Context, fileName string) error {
	log := logger.FromContext(ctx)

	path, err := s.resolve(fileName)
	if err != nil {
		log.Err(err).Str("func", "*mediaFileStorage.DeleteFile").Str("file", fileName).Msg("error: illegal media file name")
		return fmt.Errorf("%w: %w", ErrFileStorage, err)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		log.Err(err).Str("func", "*mediaFileStorage.DeleteFile").Str("file", fileName).Msg("error: removing media file")
		return fmt.Errorf("%w: %w", ErrFileStorage, err)
	}

	return nil
}

// resolve joins fileName onto the storage directory and rejects keys that
// would escape it.
func (s *mediaFileStorage) resolve(fileName string) (string, error) {
	cleaned := filepath.Clean(fileName)
	if cleaned == "." || cleaned == ".." || strings.Contains(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("file name %q escapes media directory", fileName)
	}

	return filepath.Join(s.dir, cleaned), nil
}
