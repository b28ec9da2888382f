package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/store"
	"github.com/mdpad/go-note-keeper/internal/utils"
	"github.com/mdpad/go-note-keeper/models"
)

// withActingUser resolves the acting user of a request from its bearer token.
//
// Requests without an "Authorization" header proceed as guest: whether a
// guest may perform the requested operation is the permission evaluator's
// decision, not the transport's. A header that IS present must carry a valid
// token naming an existing user, otherwise the request is rejected with
// HTTP 401 Unauthorized.
//
// On success the user's ID is stored in the request context under
// [utils.UserIDCtxKey] for downstream handlers.
func (h *Handler) withActingUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.app.TokenSignKey, h.app.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		// A token may outlive its user. Reject rather than act as a ghost.
		user, err := h.services.Users.GetUserByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Err(ErrUnknownActingUser).Int64("user_id", token.UserID).Send()
				http.Error(w, ErrUnknownActingUser.Error(), http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during acting user lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actingUser returns the request's acting user, or nil for guests.
func actingUser(r *http.Request) *models.User {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &models.User{UserID: userID}
}
