// Copyright (c) 2026 Plateful. All rights reserved.

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/platform/constants"
	"github.com/plateful/plateful/internal/platform/sec"
	"github.com/plateful/plateful/internal/users/identity"
)

// # Verification Contracts

// Verifier resolves the identity making an HTTP request.
//
// # Contract
//
// A verifier inspects one credential carrier (session cookie, bearer header).
// If the request does not carry that credential at all, it returns (nil, nil)
// so the next verifier — or anonymous access — can take over. If the
// credential is present but invalid, it returns a typed failure. On success
// it returns the fully hydrated viewer, with all relation sets attached, so
// downstream code is agnostic to which verifier produced the identity.
//
// Verifier instances are constructed once at startup and injected into the
// request-handling middleware; there is no global registry.
type Verifier interface {
	Verify(request *http.Request) (*identity.Viewer, error)
}

// genericAuthFailed is the single credential-failure message. The same
// message covers "unknown email" and "wrong password" so responses cannot be
// used to enumerate registered accounts.
func genericAuthFailed() *apperr.AppError {
	return apperr.Unauthorized("Email or password incorrect")
}

// # Credential Verification

// CredentialVerifier validates email+password pairs against stored identities.
//
// It is the login-time primitive shared by both auth modes: session login and
// token issuance both start here.
type CredentialVerifier struct {
	users identity.Repository
}

// NewCredentialVerifier constructs a [CredentialVerifier].
func NewCredentialVerifier(users identity.Repository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

/*
VerifyCredentials resolves an email+password pair to a stored identity.

Description: Looks up the account by email and performs a constant-time
password comparison. Both failure factors return the identical generic
Unauthorized so the response never reveals which factor failed.

Parameters:
  - context: context.Context
  - email: string
  - password: string (plain text)

Returns:
  - *identity.User: The resolved account
  - error: Unauthorized on either missing account or wrong password
*/
func (verifier *CredentialVerifier) VerifyCredentials(context context.Context, email, password string) (*identity.User, error) {
	user, err := verifier.users.FindByEmail(context, email)
	if err != nil {
		return nil, genericAuthFailed()
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, genericAuthFailed()
	}

	return user, nil
}

// # Session Mode

// SessionVerifier resolves a session cookie into a viewer.
//
// It re-fetches the full identity with every relation set on each request —
// the session stores only the user ID, never relation data, so the viewer
// always reflects the latest committed state.
type SessionVerifier struct {
	sessions SessionStore
	users    identity.Repository
}

// NewSessionVerifier constructs a [SessionVerifier].
func NewSessionVerifier(sessions SessionStore, users identity.Repository) *SessionVerifier {
	return &SessionVerifier{sessions: sessions, users: users}
}

// Verify implements [Verifier] for the session cookie mode.
func (verifier *SessionVerifier) Verify(request *http.Request) (*identity.Viewer, error) {
	cookie, err := request.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		// No session credential presented.
		return nil, nil
	}

	userID, err := verifier.sessions.Get(request.Context(), cookie.Value)
	if err != nil {
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}

	// Re-hydrate with the same eager relation set as token mode.
	viewer, err := verifier.users.FindByID(request.Context(), userID, identity.AllRelations)
	if err != nil {
		// Account deleted between requests: the reference dangles.
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}

	return viewer, nil
}

// # Token Mode

// TokenVerifier resolves an 'Authorization: Bearer' JWT into a viewer.
//
// Stateless mode has no session to cache viewer context, so every call
// reconstructs the full relation sets from storage.
type TokenVerifier struct {
	tokens *sec.TokenService
	users  identity.Repository
}

// NewTokenVerifier constructs a [TokenVerifier].
func NewTokenVerifier(tokens *sec.TokenService, users identity.Repository) *TokenVerifier {
	return &TokenVerifier{tokens: tokens, users: users}
}

// Verify implements [Verifier] for the bearer token mode.
func (verifier *TokenVerifier) Verify(request *http.Request) (*identity.Viewer, error) {
	authHeader := request.Header.Get("Authorization")
	if authHeader == "" {
		// No bearer credential presented.
		return nil, nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, apperr.Unauthorized("Invalid authorization format")
	}

	claims, err := verifier.tokens.VerifyToken(parts[1])
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	viewer, err := verifier.users.FindByID(request.Context(), claims.UserID, identity.AllRelations)
	if err != nil {
		// Valid signature but the claimed identity no longer resolves.
		return nil, apperr.Unauthorized("Authentication failed")
	}

	return viewer, nil
}
