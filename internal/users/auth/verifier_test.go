// Copyright (c) 2026 Plateful. All rights reserved.

package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/platform/constants"
	"github.com/plateful/plateful/internal/platform/sec"
	"github.com/plateful/plateful/internal/users/auth"
)

// newTestTokenService generates a throwaway RSA keypair on disk and builds a
// real [sec.TokenService] from it.
func newTestTokenService(t *testing.T) *sec.TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "jwt_private.pem")
	publicPath := filepath.Join(dir, "jwt_public.pem")

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(privatePath, privatePEM, 0o600))

	publicBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicBytes})
	require.NoError(t, os.WriteFile(publicPath, publicPEM, 0o600))

	tokens, err := sec.NewTokenService(privatePath, publicPath, constants.AuthIssuer)
	require.NoError(t, err)
	return tokens
}

// # Session Verifier

/*
TestSessionVerifier_NoCookie verifies the absence of a session cookie yields
(nil, nil) so other verifiers or anonymous access can proceed.
*/
func TestSessionVerifier_NoCookie(t *testing.T) {
	verifier := auth.NewSessionVerifier(newFakeSessionStore(), newFakeUserRepository())

	request := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	viewer, err := verifier.Verify(request)

	assert.Nil(t, viewer)
	assert.NoError(t, err)
}

/*
TestSessionVerifier_InvalidSession verifies a cookie referencing no stored
session fails with Unauthorized rather than falling through to anonymous.
*/
func TestSessionVerifier_InvalidSession(t *testing.T) {
	verifier := auth.NewSessionVerifier(newFakeSessionStore(), newFakeUserRepository())

	request := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "expired-or-forged"})

	viewer, err := verifier.Verify(request)
	assert.Nil(t, viewer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Session is invalid")
}

/*
TestSessionVerifier_Hydrates verifies a valid session resolves to a viewer
with non-nil relation sets.
*/
func TestSessionVerifier_Hydrates(t *testing.T) {
	users := newFakeUserRepository()
	sessions := newFakeSessionStore()
	service := auth.NewService(users, sessions, &fakeTokenProvider{})
	user := registerUser(t, service, "diner@plateful.app", "secret-password")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "secret-password",
	})
	require.NoError(t, err)

	verifier := auth.NewSessionVerifier(sessions, users)
	request := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: session.SessionID})

	viewer, err := verifier.Verify(request)
	require.NoError(t, err)
	require.NotNil(t, viewer)
	assert.Equal(t, user.ID, viewer.ID)
	assert.NotNil(t, viewer.Relations.FavoriteRestaurantIDs)
	assert.NotNil(t, viewer.Relations.FollowerIDs)
}

// # Token Verifier

/*
TestTokenVerifier_NoHeader verifies a request without an Authorization header
yields (nil, nil).
*/
func TestTokenVerifier_NoHeader(t *testing.T) {
	verifier := auth.NewTokenVerifier(newTestTokenService(t), newFakeUserRepository())

	request := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	viewer, err := verifier.Verify(request)

	assert.Nil(t, viewer)
	assert.NoError(t, err)
}

/*
TestTokenVerifier_MalformedHeader verifies non-bearer or garbled headers fail
with Unauthorized.
*/
func TestTokenVerifier_MalformedHeader(t *testing.T) {
	verifier := auth.NewTokenVerifier(newTestTokenService(t), newFakeUserRepository())

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "Bearer a b", "token-without-scheme"} {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		request.Header.Set("Authorization", header)

		viewer, err := verifier.Verify(request)
		assert.Nil(t, viewer, "header %q", header)
		assert.Error(t, err, "header %q", header)
	}
}

/*
TestTokenVerifier_RoundTrip verifies a token signed by the real RS256 service
resolves back to the full viewer, matching the session-mode viewer shape.
*/
func TestTokenVerifier_RoundTrip(t *testing.T) {
	users := newFakeUserRepository()
	sessions := newFakeSessionStore()
	tokens := newTestTokenService(t)
	service := auth.NewService(users, sessions, tokens)
	user := registerUser(t, service, "diner@plateful.app", "secret-password")

	issued, err := service.IssueToken(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "secret-password",
	})
	require.NoError(t, err)

	verifier := auth.NewTokenVerifier(tokens, users)
	request := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	request.Header.Set("Authorization", "Bearer "+issued.AccessToken)

	tokenViewer, err := verifier.Verify(request)
	require.NoError(t, err)
	require.NotNil(t, tokenViewer)
	assert.Equal(t, user.ID, tokenViewer.ID)

	// Both modes must present the identical viewer shape.
	sessionLogin, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, sessionLogin.Viewer, tokenViewer)
}

/*
TestTokenVerifier_TamperedToken verifies an altered token payload is rejected.
*/
func TestTokenVerifier_TamperedToken(t *testing.T) {
	users := newFakeUserRepository()
	tokens := newTestTokenService(t)
	service := auth.NewService(users, newFakeSessionStore(), tokens)
	registerUser(t, service, "diner@plateful.app", "secret-password")

	issued, err := service.IssueToken(context.Background(), auth.LoginInput{
		Email:    "diner@plateful.app",
		Password: "secret-password",
	})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	request.Header.Set("Authorization", "Bearer "+issued.AccessToken+"x")

	verifier := auth.NewTokenVerifier(tokens, users)
	viewer, err := verifier.Verify(request)
	assert.Nil(t, viewer)
	assert.Error(t, err)
}
