// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package service

import (
	"github.com/mdpad/go-note-keeper/internal/config"
	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/store"
)

// Services aggregates every service consumed by the transport layer.
type Services struct {
	Notes   NoteService
	Users   UserService
	History HistoryWorker
}

// NewServices wires all services on top of the storages, following the
// instance configuration for permissions and worker sizing.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	permissions := NewPermissionEvaluator(cfg.Permissions)
	resolver := NewNoteResolver(storages.NoteRepository)
	history := NewHistoryNotifier(storages.HistoryRepository, cfg.Workers.HistoryQueueSize, log)

	return &Services{
		Notes: NewNoteService(
			resolver,
			permissions,
			storages.NoteRepository,
			storages.RevisionRepository,
			storages.MediaStorage,
			history,
		),
		Users:   NewUserService(storages.UserRepository),
		History: history,
	}
}
