package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/utils"
	"github.com/mdpad/go-note-keeper/models"
)

// maxNoteBodySize bounds the markdown payload accepted on note creation.
const maxNoteBodySize = 1 << 20

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	note, err := h.services.Notes.GetNote(r.Context(), actingUser(r), reference)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	content, err := readMarkdownBody(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error reading request body")
		respondBodyError(w, err)
		return
	}

	note, err := h.services.Notes.CreateNote(r.Context(), actingUser(r), content)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) createNamedNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	alias := chi.URLParam(r, "reference")

	content, err := readMarkdownBody(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNamedNote").Msg("error reading request body")
		respondBodyError(w, err)
		return
	}

	note, err := h.services.Notes.CreateNamedNote(r.Context(), actingUser(r), alias, content)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	reference := chi.URLParam(r, "reference")

	// the deletion body is optional: absence means media goes with the note
	var deletionRequest models.MediaDeletionRequest
	if err := json.NewDecoder(r.Body).Decode(&deletionRequest); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.Notes.DeleteNote(r.Context(), actingUser(r), reference, deletionRequest.KeepMedia)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMedia(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	uploads, err := h.services.Notes.ListMedia(r.Context(), actingUser(r), reference)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if uploads == nil {
		uploads = []models.MediaUpload{}
	}

	utils.WriteJSON(w, uploads, http.StatusOK)
}

func (h *Handler) listRevisions(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	revisions, err := h.services.Notes.ListRevisions(r.Context(), actingUser(r), reference)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if revisions == nil {
		revisions = []models.RevisionMetadata{}
	}

	utils.WriteJSON(w, revisions, http.StatusOK)
}

func (h *Handler) getRevision(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	reference := chi.URLParam(r, "reference")

	seq, err := strconv.ParseInt(chi.URLParam(r, "seq"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRevision").Msg("invalid revision id")
		http.Error(w, "invalid revision id", http.StatusBadRequest)
		return
	}

	revision, err := h.services.Notes.GetRevision(r.Context(), actingUser(r), reference, seq)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, revision, http.StatusOK)
}

func (h *Handler) downloadNote(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	note, err := h.services.Notes.GetNote(r.Context(), actingUser(r), reference)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=UTF-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", note.Title()+".md"))
	w.Write([]byte(note.Content))
}

// readMarkdownBody reads the raw markdown payload of a note creation request.
// Payloads over maxNoteBodySize are rejected with errNoteBodyTooLarge rather
// than truncated.
func readMarkdownBody(r *http.Request) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxNoteBodySize+1))
	if err != nil {
		return "", err
	}
	if len(body) > maxNoteBodySize {
		return "", errNoteBodyTooLarge
	}
	return string(body), nil
}

// respondBodyError reports a failure to read a note creation payload.
func respondBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, errNoteBodyTooLarge) {
		http.Error(w, errNoteBodyTooLarge.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, "error reading request body", http.StatusBadRequest)
}

// respondServiceError translates a service-layer error into an HTTP response.
// Client-caused errors echo the error text; everything else is masked behind
// a generic status message.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Err(err).Send()
	http.Error(w, err.Error(), status)
}
