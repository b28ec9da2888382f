// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package store

import (
	"context"

	"github.com/mdpad/go-note-keeper/internal/config"
	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/models"
)

// mediaStorage is the default implementation of [MediaStorage].
//
// It coordinates the metadata rows held by a [MediaRepository] with the
// physical files held by a [MediaFileStorage]. The coordination rule for
// permanent deletion is file-first: the metadata row survives until the
// physical file is confirmed gone, so a crash or storage failure leaves a
// retryable inconsistency instead of an untracked file.
type mediaStorage struct {
	repository  MediaRepository
	fileStorage MediaFileStorage

	logger *logger.Logger
}

// NewMediaStorage constructs a [MediaStorage] backed by a media metadata
// repository and, when cfg.Files.MediaDir is set, a filesystem file store.
// Without a configured media directory only metadata operations are
// available and permanent deletions skip the physical step.
func NewMediaStorage(db *DB, cfg config.Storage, logger *logger.Logger) MediaStorage {
	logger.Debug().Msg("creating media storage")

	storage := new(mediaStorage)
	storage.repository = NewMediaRepository(db, logger)
	storage.logger = logger

	if cfg.Files.MediaDir != "" {
		storage.fileStorage = NewMediaFileStorage(cfg.Files.MediaDir, logger)
	}

	return storage
}

// ListUploadsByNote delegates to [MediaRepository.ListUploadsByNote].
func (m *mediaStorage) ListUploadsByNote(ctx context.Context, noteID string) ([]models.MediaUpload, error) {
	return m.repository.ListUploadsByNote(ctx, noteID)
}

// RemoveAssociation orphans the upload by clearing its note reference. The
// physical file is untouched. Idempotent via the repository's unconditional
// UPDATE.
func (m *mediaStorage) RemoveAssociation(ctx context.Context, media models.MediaUpload) error {
	return m.repository.RemoveNoteFromUpload(ctx, media.ID)
}

// DeletePermanently removes the upload's physical file and then its metadata
// row, in that order.
//
// When the physical deletion fails, the metadata row is NOT removed and
// [ErrFileStorage] is returned: the upload stays visible and the whole
// deletion can be retried. A file already missing from the store counts as
// deleted, so retries converge.
func (m *mediaStorage) DeletePermanently(ctx context.Context, media models.MediaUpload) error {
	if m.fileStorage != nil {
		if err := m.fileStorage.DeleteFile(ctx, media.FileName); err != nil {
			return err
		}
	}

	return m.repository.DeleteUploadMetadata(ctx, media.ID)
}
