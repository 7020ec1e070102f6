// Copyright (c) 2026 Plateful. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/users/account"
	"github.com/plateful/plateful/internal/users/identity"
)

// fakeUserRepository is a minimal in-memory [identity.Repository].
type fakeUserRepository struct {
	users map[string]*identity.User
}

func (repo *fakeUserRepository) FindByID(_ context.Context, id string, _ identity.Relations) (*identity.Viewer, error) {
	user, ok := repo.users[id]
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
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *fakeUserRepository) Create(_ context.Context, user *identity.User) error {
	repo.users[user.ID] = user
	return nil
}

func (repo *fakeUserRepository) Exists(_ context.Context, id string) (bool, error) {
	_, ok := repo.users[id]
	return ok, nil
}

func (repo *fakeUserRepository) Update(_ context.Context, user *identity.User) error {
	repo.users[user.ID] = user
	return nil
}

func (repo *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := repo.users[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

func newTestService() (*account.Service, *fakeUserRepository) {
	repo := &fakeUserRepository{users: map[string]*identity.User{
		"user-a": {ID: "user-a", Email: "diner@plateful.app", DisplayName: "Taste Tester"},
	}}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return account.NewService(repo, logger), repo
}

/*
TestService_GetProfile verifies profile resolution attaches relation sets and
misses surface as NotFound.
*/
func TestService_GetProfile(t *testing.T) {
	service, _ := newTestService()

	viewer, err := service.GetProfile(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Equal(t, "Taste Tester", viewer.DisplayName)
	assert.NotNil(t, viewer.Relations.FollowerIDs)

	_, err = service.GetProfile(context.Background(), "ghost")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_UpdateProfile verifies delta updates touch only provided fields.
*/
func TestService_UpdateProfile(t *testing.T) {
	service, repo := newTestService()

	name := "Head Chef"
	updated, err := service.UpdateProfile(context.Background(), "user-a", account.UpdateProfileInput{
		DisplayName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Head Chef", updated.DisplayName)

	// Untouched field survives the partial update
	assert.Equal(t, "diner@plateful.app", repo.users["user-a"].Email)
	assert.Equal(t, "Head Chef", repo.users["user-a"].DisplayName)

	avatar := "https://cdn.plateful.app/avatars/user-a.png"
	updated, err = service.UpdateProfile(context.Background(), "user-a", account.UpdateProfileInput{
		AvatarURL: &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "Head Chef", updated.DisplayName)
	assert.Equal(t, avatar, updated.AvatarURL)
}
