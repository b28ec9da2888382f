// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package service

import (
	"context"
	"time"

	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/store"
	"github.com/mdpad/go-note-keeper/internal/workers"
	"github.com/mdpad/go-note-keeper/models"
)

type historyTouch struct {
	userID    int64
	noteID    string
	visitedAt time.Time
}

// HistoryWorker is a HistoryNotifier that drains its queue from a background
// worker run by the workers runner.
type HistoryWorker interface {
	HistoryNotifier
	workers.Worker
}

// historyNotifier buffers note visits and flushes them to storage from a
// background worker.
type historyNotifier struct {
	history store.HistoryRepository
	queue   chan historyTouch
	log     *logger.Logger
}

// NewHistoryNotifier returns a HistoryWorker with a queue of queueSize
// pending touches. Run it via the workers runner to start draining.
func NewHistoryNotifier(history store.HistoryRepository, queueSize int, log *logger.Logger) HistoryWorker {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &historyNotifier{
		history: history,
		queue:   make(chan historyTouch, queueSize),
		log:     log,
	}
}

// NotifyVisit enqueues a history touch. Guest visits are ignored. When the
// queue is full the touch is dropped and logged, never blocking the read
// path that produced it.
func (n *historyNotifier) NotifyVisit(user *models.User, note models.Note) {
	if user == nil {
		return
	}
	touch := historyTouch{userID: user.UserID, noteID: note.ID, visitedAt: time.Now()}
	select {
	case n.queue <- touch:
	default:
		n.log.Warn().
			Str("func", "*historyNotifier.NotifyVisit").
			Int64("user_id", touch.userID).
			Str("note_id", touch.noteID).
			Msg("history queue full, touch dropped")
	}
}

// Run drains the queue until ctx is cancelled. Storage failures are logged
// and the worker keeps going; a touch lost here only costs a history entry.
func (n *historyNotifier) Run(ctx context.Context) error {
	n.log.Info().Str("func", "*historyNotifier.Run").Msg("history notifier started")
	for {
		select {
		case <-ctx.Done():
			n.drain()
			n.log.Info().Str("func", "*historyNotifier.Run").Msg("history notifier stopped")
			return nil
		case touch := <-n.queue:
			n.apply(ctx, touch)
		}
	}
}

// drain flushes whatever is still buffered at shutdown, on a detached
// context so cancelled request contexts cannot veto the writes.
func (n *historyNotifier) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case touch := <-n.queue:
			n.apply(ctx, touch)
		default:
			return
		}
	}
}

func (n *historyNotifier) apply(ctx context.Context, touch historyTouch) {
	err := n.history.TouchHistoryEntry(ctx, touch.userID, touch.noteID, touch.visitedAt)
	if err != nil {
		n.log.Error().Err(err).
			Str("func", "*historyNotifier.apply").
			Int64("user_id", touch.userID).
			Str("note_id", touch.noteID).
			Msg("history touch failed")
	}
}
