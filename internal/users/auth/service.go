// Copyright (c) 2026 Plateful. All rights reserved.

/*
Package auth implements the dual-mode identity and access management system.

It supports two independent authentication modes against the same account
records:

  - Session mode: credential login establishes an opaque server-side session
    reference (Redis) transported via an HTTP cookie.
  - Token mode: credential login issues a signed RS256 JWT the client presents
    as a bearer header; no server-side state is created.

Both modes converge on the same [identity.Viewer] shape: every verified
request re-hydrates the full account with all relation sets so downstream
features never care which mode authenticated the caller.

Architecture:

  - Service: Orchestrates business logic (Register, Login, IssueToken, Logout).
  - Verifier: Per-mode request credential resolution.
  - SessionStore: Abstracted Redis contract for session references.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/platform/sec"
	"github.com/plateful/plateful/internal/users/identity"
	"github.com/plateful/plateful/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating signed access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, role string, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, login, or
// token issuance logic must be reviewed by the security team.
type Service struct {
	credentials   *CredentialVerifier
	users         identity.Repository
	sessions      SessionStore
	tokenProvider TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	users identity.Repository,
	sessions SessionStore,
	tokenProvider TokenProvider,
) *Service {
	return &Service{
		credentials:   &CredentialVerifier{users: users},
		users:         users,
		sessions:      sessions,
		tokenProvider: tokenProvider,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrolls a new member with a bcrypt password hash and a
time-sortable identifier. Email uniqueness is ultimately enforced by the
database constraint; the pre-check only produces a friendlier fast path.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *identity.User: Created entity
  - error: Conflict (if the email is registered) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*identity.User, error) {

	// 1. Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.users.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// 2. Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// 3. Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &identity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Role:         sec.RoleMember,
	}

	// 4. Persist the user. The unique constraint on email is the source of
	// truth under concurrent signups and surfaces as Conflict.
	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Session Mode Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established session.
type LoginSession struct {
	SessionID string
	ExpiresAt time.Time
	Viewer    *identity.Viewer
}

/*
Login validates credentials and establishes a server-side session.

Description: Verifies the email+password pair, mints an opaque random session
ID, and stores the session reference (user ID only) with a TTL. The hydrated
viewer is returned so the login response can include the caller's profile and
relation sets without a second round trip.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifier plus viewer
  - error: Unauthorized (generic, non-enumerating) or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// 1. Resolve credentials. Failure is a single generic Unauthorized.
	user, err := service.credentials.VerifyCredentials(context, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	// 2. Mint the opaque session identifier.
	sessionID, err := sec.GenerateSecureToken(SessionIDLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_session_id_failed: %w", err)
	}

	// 3. Store only the user ID under the session key. Relation data is never
	// serialized into the session.
	if err := service.sessions.Create(context, sessionID, user.ID, SessionTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_create_failed: %w", err)
	}

	// 4. Hydrate the full viewer for the login response body.
	viewer, err := service.users.FindByID(context, user.ID, identity.AllRelations)
	if err != nil {
		return nil, err
	}

	return &LoginSession{
		SessionID: sessionID,
		ExpiresAt: time.Now().Add(SessionTTL),
		Viewer:    viewer,
	}, nil
}

/*
Logout invalidates a session reference.

Description: Deletes the session key so subsequent requests carrying the same
cookie fail verification. Logging out an already-expired session is a no-op.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Deletion failures
*/
func (service *Service) Logout(context context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return service.sessions.Delete(context, sessionID)
}

// # Token Mode Flow

// IssuedToken represents a freshly minted stateless credential.
type IssuedToken struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // Seconds until expiry.
	Viewer      *identity.Viewer
}

/*
IssueToken validates credentials and mints a signed access token.

Description: The stateless counterpart of [Service.Login]. No server-side
record is created; the signed JWT itself carries the identity reference until
it expires.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *IssuedToken: Bearer credential plus viewer
  - error: Unauthorized (generic, non-enumerating) or signing failures
*/
func (service *Service) IssueToken(context context.Context, input LoginInput) (*IssuedToken, error) {

	// 1. Resolve credentials. Same generic failure as session mode.
	user, err := service.credentials.VerifyCredentials(context, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	// 2. Sign the access token.
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_sign_failed: %w", err)
	}

	// 3. Hydrate the viewer for the issuance response body.
	viewer, err := service.users.FindByID(context, user.ID, identity.AllRelations)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(AccessTokenTTL.Seconds()),
		Viewer:      viewer,
	}, nil
}
