// Copyright (c) 2026 Plateful. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	// We keep it short (15m) to minimize the impact of a leaked token.
	AccessTokenTTL = 15 * time.Minute

	// SessionTTL is the duration a session reference remains valid in the
	// session store. Long-lived (7 days) to provide a good user experience.
	SessionTTL = 7 * 24 * time.Hour

	// SessionIDLength is the byte length of the random session identifier.
	SessionIDLength = 32
)
