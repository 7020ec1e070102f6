// Copyright (c) 2026 Plateful. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/platform/constants"
	requestutil "github.com/plateful/plateful/internal/platform/request"
	"github.com/plateful/plateful/internal/platform/respond"
	"github.com/plateful/plateful/internal/platform/validate"
	"github.com/plateful/plateful/internal/users/identity"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the entry points of both auth modes: account creation,
// session login/logout (cookie-backed), and stateless token issuance.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /signup : Creates a new account.
//   - POST /signin : Authenticates and establishes a session cookie.
//   - POST /token  : Authenticates and returns a bearer JWT (stateless mode).
//   - POST /logout : Invalidates the session cookie.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/signup", handler.signup)
	router.Post("/signin", handler.signin)
	router.Post("/token", handler.token)

	// Logout only needs the cookie itself, not a verified viewer, so an
	// expired session can still be cleared client-side.
	router.Post("/logout", handler.logout)

	return router
}

// # Request Payloads

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validateCredentials applies the shared rules for credential-bearing bodies.
func validateCredentials(email, password string) error {
	validator := &validate.Validator{}
	validator.Required(identity.FieldEmail, email).
		Email(identity.FieldEmail, email).
		Required(identity.FieldPassword, password)
	return validator.Err()
}

/*
Signup handles the creation of a new user account.

POST /api/v1/auth/signup

Description: Validates input, checks for identity conflicts, and persists
a new user profile to the database.

Request:
  - Body: signupRequest (Email, Password, DisplayName)

Response:
  - 201: User: Created user profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(identity.FieldEmail, input.Email).
		Email(identity.FieldEmail, input.Email).
		Required(identity.FieldPassword, input.Password).
		MinLen(identity.FieldPassword, input.Password, 8).
		Required(identity.FieldName, input.DisplayName).
		MaxLen(identity.FieldName, input.DisplayName, 80)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Signin authenticates a user and establishes a session.

POST /api/v1/auth/signin

Description: Verifies credentials, stores a session reference, and injects
a secure session cookie into the response. The response body carries the
hydrated viewer so clients can render the profile immediately.

Request:
  - Body: signinRequest (Email, Password)

Response:
  - 200: Viewer: Authenticated profile with relation sets
  - 401: ErrUnauthorized: Invalid credentials (generic message)
*/
func (handler *Handler) signin(writer http.ResponseWriter, request *http.Request) {
	var input signinRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateCredentials(input.Email, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.SessionID,
		Path:     constants.SessionCookiePath,
		Expires:  session.ExpiresAt,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.OK(writer, map[string]any{
		identity.FieldUser: session.Viewer,
	})
}

/*
Token authenticates a user and issues a stateless bearer token.

POST /api/v1/auth/token

Description: The stateless counterpart of signin. Verifies credentials and
returns a short-lived RS256 JWT; no cookie is set and no server-side session
is created.

Request:
  - Body: signinRequest (Email, Password)

Response:
  - 200: IssuedToken: access_token, token_type, expires_in, user
  - 401: ErrUnauthorized: Invalid credentials (generic message)
*/
func (handler *Handler) token(writer http.ResponseWriter, request *http.Request) {
	var input signinRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateCredentials(input.Email, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	issued, err := handler.authService.IssueToken(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		identity.FieldAccessToken: issued.AccessToken,
		identity.FieldTokenType:   issued.TokenType,
		identity.FieldExpiresIn:   issued.ExpiresIn,
		identity.FieldUser:        issued.Viewer,
	})
}

/*
Logout terminates the current session.

POST /api/v1/auth/logout

Description: Invalidates the session reference (if present) and clears the
session cookie from the client. Bearer tokens cannot be revoked; they simply
expire.

Response:
  - 204: No Content: Session terminated
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.SessionCookieName)

	if err == nil && cookie != nil && cookie.Value != "" {
		_ = handler.authService.Logout(request.Context(), cookie.Value)
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.NoContent(writer)
}
