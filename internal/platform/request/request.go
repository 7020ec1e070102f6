// Copyright (c) 2026 Plateful. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/platform/validate"
	"github.com/plateful/plateful/internal/users/identity"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Viewer extracts the authenticated viewer from the request context.

Returns nil if the request is not authenticated.
*/
func Viewer(request *http.Request) *identity.Viewer {
	return identity.FromContext(request.Context())
}

/*
RequiredViewer ensures the request is authenticated and returns the viewer.

Returns:
  - *identity.Viewer: The authenticated viewer with relation sets attached
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredViewer(request *http.Request) (*identity.Viewer, error) {

	// Get the viewer injected by the verification middleware
	viewer := identity.FromContext(request.Context())

	// If the request is not authenticated, return an error
	if viewer == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return viewer, nil
}

/*
RequiredUserID returns the User ID of the currently authenticated viewer.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {

	// Get the viewer
	viewer, err := RequiredViewer(request)

	// If the request is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return viewer.ID, nil
}
