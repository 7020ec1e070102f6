// Copyright (c) 2026 Plateful. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/platform/middleware"
	requestutil "github.com/plateful/plateful/internal/platform/request"
	"github.com/plateful/plateful/internal/platform/respond"
	"github.com/plateful/plateful/internal/platform/validate"
	"github.com/plateful/plateful/internal/users/identity"
)

// # Definitions & Constructors

// Handler implements profile-related HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// RegisterUserRoutes attaches the public profile route to the user subtree.
//
// # Endpoints
//   - GET /{userID} : Public profile with relation sets.
func (handler *Handler) RegisterUserRoutes(router chi.Router) {
	router.Get("/{userID}", handler.getUser)
}

// MeRoutes returns a [chi.Router] for the authenticated viewer's own profile.
//
// # Endpoints
//   - GET / : Current viewer.
//   - PUT / : Profile edit.
func (handler *Handler) MeRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)
	router.Get("/", handler.me)
	router.Put("/", handler.updateMe)
	return router
}

// # Request Payloads

type updateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

/*
GetUser returns a user's public profile.

GET /api/v1/users/{userID}

Description: Public endpoint resolving any user by ID, relation sets
included, so clients can render follower lists and favorite collections.

Response:
  - 200: Viewer: Profile with relation sets
  - 404: ErrNotFound: Unknown user
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.Param(request, "userID")

	validator := &validate.Validator{}
	if err := validator.UUID(identity.FieldUser, userID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	viewer, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, viewer)
}

/*
Me returns the authenticated viewer's own profile.

GET /api/v1/me

Description: The viewer was already hydrated by the verification middleware;
this endpoint just echoes it.

Response:
  - 200: Viewer: Current profile with relation sets
  - 401: ErrUnauthorized: No valid credential
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	viewer, err := requestutil.RequiredViewer(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, viewer)
}

/*
UpdateMe edits the authenticated viewer's profile.

PUT /api/v1/me

Description: Edits display name and avatar URL. The name is mandatory; a
missing or blank name fails validation. An omitted avatar keeps its value.

Request:
  - Body: updateProfileRequest (Name, AvatarURL)

Response:
  - 200: Viewer: Updated profile
  - 400: ErrInvalidJSON: Bad input or blank name
  - 401: ErrUnauthorized: No valid credential
*/
func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
	viewer, err := requestutil.RequiredViewer(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// Name is mandatory on profile edits; avatar is optional and left
	// untouched when the field is omitted.
	name := ""
	if input.Name != nil {
		name = *input.Name
	}

	validator := &validate.Validator{}
	validator.Required(identity.FieldName, name).
		MaxLen(identity.FieldName, name, 80)
	if input.AvatarURL != nil && *input.AvatarURL != "" {
		validator.URL(identity.FieldAvatarURL, *input.AvatarURL).
			MaxLen(identity.FieldAvatarURL, *input.AvatarURL, 2048)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.accountService.UpdateProfile(request.Context(), viewer.ID, UpdateProfileInput{
		DisplayName: input.Name,
		AvatarURL:   input.AvatarURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}
