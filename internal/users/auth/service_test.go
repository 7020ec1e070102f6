// Copyright (c) 2026 Plateful. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/platform/sec"
	"github.com/plateful/plateful/internal/users/auth"
	"github.com/plateful/plateful/internal/users/identity"
)

// # Test Doubles

// fakeUserRepository is an in-memory [identity.Repository].
type fakeUserRepository struct {
	byID    map[string]*identity.User
	byEmail map[string]*identity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    map[string]*identity.User{},
		byEmail: map[string]*identity.User{},
	}
}

func (repo *fakeUserRepository) FindByID(_ context.Context, id string, _ identity.Relations) (*identity.Viewer, error) {
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &identity.Viewer{
		User: *user,
		Relations: identity.RelationSets{
			FavoriteRestaurantIDs: []string{},
			LikedRestaurantIDs:    []string{},
			FollowingIDs:          []string{},
			FollowerIDs:           []string{},
		},
	}, nil
}

func (repo *fakeUserRepository) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	user, ok := repo.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repo *fakeUserRepository) Create(_ context.Context, user *identity.User) error {
	if _, exists := repo.byEmail[user.Email]; exists {
		return apperr.Conflict("Email is already registered")
	}
	repo.byID[user.ID] = user
	repo.byEmail[user.Email] = user
	return nil
}

func (repo *fakeUserRepository) Exists(_ context.Context, id string) (bool, error) {
	_, ok := repo.byID[id]
	return ok, nil
}

func (repo *fakeUserRepository) Update(_ context.Context, user *identity.User) error {
	repo.byID[user.ID] = user
	return nil
}

func (repo *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := repo.byID[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

// fakeSessionStore is an in-memory [auth.SessionStore]. TTLs are recorded but
// not enforced; expiry behavior belongs to Redis.
type fakeSessionStore struct {
	sessions map[string]string
	ttls     map[string]time.Duration
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (store *fakeSessionStore) Create(_ context.Context, sessionID, userID string, ttl time.Duration) error {
	store.sessions[sessionID] = userID
	store.ttls[sessionID] = ttl
	return nil
}

func (store *fakeSessionStore) Get(_ context.Context, sessionID string) (string, error) {
	userID, ok := store.sessions[sessionID]
	if !ok {
		return "", apperr.NotFound("Session")
	}
	return userID, nil
}

func (store *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(store.sessions, sessionID)
	return nil
}

// fakeTokenProvider records issuance without real signing.
type fakeTokenProvider struct {
	lastUserID string
	lastRole   string
	lastTTL    time.Duration
}

func (provider *fakeTokenProvider) GenerateAccessToken(userID, role string, timeToLive time.Duration) (string, error) {
	provider.lastUserID = userID
	provider.lastRole = role
	provider.lastTTL = timeToLive
	return "signed-token-for-" + userID, nil
}

// # Fixtures

func newTestService(t *testing.T) (*auth.Service, *fakeUserRepository, *fakeSessionStore, *fakeTokenProvider) {
	t.Helper()
	users := newFakeUserRepository()
	sessions := newFakeSessionStore()
	tokens := &fakeTokenProvider{}
	return auth.NewService(users, sessions, tokens), users, sessions, tokens
}

func registerUser(t *testing.T, service *auth.Service, email, password string) *identity.User {
	t.Helper()
	user, err := service.Register(context.Background(), auth.RegisterInput{
		Email:       email,
		Password:    password,
		DisplayName: "Taste Tester",
	})
	require.NoError(t, err)
	return user
}

// # Registration

/*
TestService_Register verifies enrollment hashes the password and assigns the
member role.
*/
func TestService_Register(t *testing.T) {
	service, users, _, _ := newTestService(t)

	user := registerUser(t, service, "diner@plateful.app", "secret-password")

	// 1. Entity shape
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "diner@plateful.app", user.Email)
	assert.Equal(t, sec.RoleMember, user.Role)

	// 2. Password is stored hashed, never plain
	stored := users.byEmail["diner@plateful.app"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret-password", stored.PasswordHash))
}

/*
TestService_Register_DuplicateEmail verifies a second signup with the same
email surfaces as Conflict.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	service, _, _, _ := newTestService(t)

	registerUser(t, service, "diner@plateful.app", "secret-password")

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:       "diner@plateful.app",
		Password:    "another-password",
		DisplayName: "Impostor",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

// # Session Mode

/*
TestService_Login verifies a successful credential login establishes a session
reference and returns the hydrated viewer.
*/
func TestService_Login(t *testing.T) {
	service, _, sessions, _ := newTestService(t)
	user := registerUser(t, service, "diner@plateful.app", "secret-password")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "secret-password",
	})
	require.NoError(t, err)

	// 1. Opaque session ID is minted and stored with the configured TTL
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, user.ID, sessions.sessions[session.SessionID])
	assert.Equal(t, auth.SessionTTL, sessions.ttls[session.SessionID])

	// 2. The session stores only the user ID: viewer data lives in the response
	require.NotNil(t, session.Viewer)
	assert.Equal(t, user.ID, session.Viewer.ID)
	assert.NotNil(t, session.Viewer.Relations.FollowerIDs)
}

/*
TestService_Login_FailureParity verifies that unknown emails and wrong
passwords produce byte-identical Unauthorized responses, so login cannot be
used to probe which emails are registered.
*/
func TestService_Login_FailureParity(t *testing.T) {
	service, _, _, _ := newTestService(t)
	registerUser(t, service, "diner@plateful.app", "secret-password")

	_, unknownErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@plateful.app",
		Password: "secret-password",
	})
	_, wrongPassErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "wrong-password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	unknown := apperr.As(unknownErr)
	wrongPass := apperr.As(wrongPassErr)
	require.NotNil(t, unknown)
	require.NotNil(t, wrongPass)

	assert.Equal(t, unknown.Code, wrongPass.Code)
	assert.Equal(t, unknown.Message, wrongPass.Message)
	assert.Equal(t, unknown.HTTPStatus, wrongPass.HTTPStatus)
}

/*
TestService_Logout verifies that logout removes the session reference and that
logging out an unknown session is a silent no-op.
*/
func TestService_Logout(t *testing.T) {
	service, _, sessions, _ := newTestService(t)
	registerUser(t, service, "diner@plateful.app", "secret-password")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "secret-password",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.SessionID))
	_, err = sessions.Get(context.Background(), session.SessionID)
	assert.True(t, apperr.IsNotFound(err))

	// Idempotent for an already-cleared or empty session
	assert.NoError(t, service.Logout(context.Background(), session.SessionID))
	assert.NoError(t, service.Logout(context.Background(), ""))
}

// # Token Mode

/*
TestService_IssueToken verifies stateless issuance signs a token for the
resolved identity without creating any session state.
*/
func TestService_IssueToken(t *testing.T) {
	service, _, sessions, tokens := newTestService(t)
	user := registerUser(t, service, "diner@plateful.app", "secret-password")

	issued, err := service.IssueToken(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "secret-password",
	})
	require.NoError(t, err)

	// 1. Token parameters
	assert.Equal(t, "signed-token-for-"+user.ID, issued.AccessToken)
	assert.Equal(t, "Bearer", issued.TokenType)
	assert.Equal(t, int64(auth.AccessTokenTTL.Seconds()), issued.ExpiresIn)
	assert.Equal(t, user.ID, tokens.lastUserID)
	assert.Equal(t, string(sec.RoleMember), tokens.lastRole)
	assert.Equal(t, auth.AccessTokenTTL, tokens.lastTTL)

	// 2. Stateless: no session reference is created
	assert.Empty(t, sessions.sessions)

	// 3. Viewer shape matches session mode
	require.NotNil(t, issued.Viewer)
	assert.Equal(t, user.ID, issued.Viewer.ID)
}

/*
TestService_IssueToken_FailureParity verifies token issuance fails with the
same generic Unauthorized as session login.
*/
func TestService_IssueToken_FailureParity(t *testing.T) {
	service, _, _, _ := newTestService(t)
	registerUser(t, service, "diner@plateful.app", "secret-password")

	_, sessionErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "wrong-password",
	})
	_, tokenErr := service.IssueToken(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "wrong-password",
	})

	sessionFailure := apperr.As(sessionErr)
	tokenFailure := apperr.As(tokenErr)
	require.NotNil(t, sessionFailure)
	require.NotNil(t, tokenFailure)
	assert.Equal(t, sessionFailure.Message, tokenFailure.Message)
	assert.Equal(t, sessionFailure.HTTPStatus, tokenFailure.HTTPStatus)
}
