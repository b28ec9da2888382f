// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-note-keeper authors

package http

import "errors"

// Sentinel errors used by the acting-user middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnknownActingUser is returned when a syntactically valid token names
	// a user that no longer exists.
	ErrUnknownActingUser = errors.New("unknown acting user")
)

// errNoteBodyTooLarge is returned by readMarkdownBody when the markdown
// payload exceeds maxNoteBodySize.
var errNoteBodyTooLarge = errors.New("note content exceeds the maximum allowed size")
