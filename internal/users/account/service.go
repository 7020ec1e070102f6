// Copyright (c) 2026 Plateful. All rights reserved.

/*
Package account implements profile management for registered users.

It covers the read side of identities (public profiles with relation sets,
the viewer's own profile) and the mutable subset of account fields.
*/
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plateful/plateful/internal/users/identity"
)

// # Service Layer

// Service orchestrates business logic for user profiles.
type Service struct {
	users  identity.Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(users identity.Repository, logger *slog.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// # Profile Management

/*
GetProfile retrieves a user's profile with all relation sets attached.

Description: Backs both the public profile endpoint and the viewer's own
profile; the relation sets (favorites, likes, following, followers) are
loaded fresh on every call.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *identity.Viewer: The hydrated profile
  - error: apperr.NotFound or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*identity.Viewer, error) {
	viewer, err := service.users.FindByID(context, userID, identity.AllRelations)
	if err != nil {
		return nil, err
	}
	return viewer, nil
}

// UpdateProfileInput defines the mutable subset of profile fields.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
}

/*
UpdateProfile applies a partial set of changes to a user's account metadata.

Description: Fetches the existing state, overlays the provided fields, and
synchronizes the change to persistent storage. Field-level validation happens
at the HTTP boundary; this layer only applies the delta.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *identity.Viewer: The updated profile with relation sets
  - error: apperr.NotFound or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*identity.Viewer, error) {

	// Fetch the current state
	viewer, err := service.users.FindByID(context, userID, identity.AllRelations)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.DisplayName != nil {
		viewer.DisplayName = *input.DisplayName
	}

	if input.AvatarURL != nil {
		viewer.AvatarURL = *input.AvatarURL
	}

	// Persist changes
	if err := service.users.Update(context, &viewer.User); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return viewer, nil
}
