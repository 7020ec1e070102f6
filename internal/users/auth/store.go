// Copyright (c) 2026 Plateful. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # Session Data Access

// SessionStore defines the contract for the volatile session reference store.
//
// A session reference maps an opaque session ID to nothing but the user ID.
// Credentials and relation sets are never serialized into the session; the
// full viewer is re-hydrated from the identity repository on every request.
type SessionStore interface {

	/*
		Create stores a session reference for a user with a limited duration.

		Parameters:
		  - context: context.Context
		  - sessionID: string (opaque random identifier)
		  - userID: string
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, sessionID, userID string, ttl time.Duration) error

	/*
		Get retrieves the userID referenced by a session ID.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - string: UserID
		  - error: apperr.NotFound if the session is absent or expired
	*/
	Get(context context.Context, sessionID string) (string, error)

	/*
		Delete removes a session reference (logout).

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - error: Deletion failures
	*/
	Delete(context context.Context, sessionID string) error
}
