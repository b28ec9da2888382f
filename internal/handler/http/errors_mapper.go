package http

import (
	"errors"
	"net/http"

	"github.com/mdpad/go-note-keeper/internal/service"
	"github.com/mdpad/go-note-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidNoteReference: http.StatusBadRequest,
	service.ErrReadingNoteDenied:    http.StatusUnauthorized,
	service.ErrCreatingNoteDenied:   http.StatusUnauthorized,
	service.ErrDeletingNoteDenied:   http.StatusUnauthorized,

	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrRevisionNotFound:   http.StatusNotFound,
	store.ErrMediaNotFound:      http.StatusNotFound,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrAliasAlreadyExists: http.StatusConflict,

	store.ErrFileStorage:      http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
