// Copyright (c) 2026 Plateful. All rights reserved.

package social_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/users/identity"
	"github.com/plateful/plateful/internal/users/social"
)

// rankedFixture builds a board in storage order (ties already in creation order).
func rankedFixture() []social.RankedUser {
	return []social.RankedUser{
		{ID: "user-c", DisplayName: "Critic", FollowerCount: 5},
		{ID: "user-a", DisplayName: "Amateur", FollowerCount: 2},
		{ID: "user-b", DisplayName: "Baker", FollowerCount: 2},
		{ID: "user-d", DisplayName: "Drifter", FollowerCount: 0},
	}
}

/*
TestService_TopUsers_Order verifies descending follower order with ties kept
in storage order.
*/
func TestService_TopUsers_Order(t *testing.T) {
	edges := newFakeEdgeRepository()
	edges.leaders = rankedFixture()
	service := newTestService(edges, nil, nil)

	leaders, err := service.TopUsers(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, leaders, 4)

	// Descending counts; user-a stays ahead of user-b on the 2-2 tie.
	assert.Equal(t, "user-c", leaders[0].ID)
	assert.Equal(t, "user-a", leaders[1].ID)
	assert.Equal(t, "user-b", leaders[2].ID)
	assert.Equal(t, "user-d", leaders[3].ID)
}

/*
TestService_TopUsers_Deterministic verifies repeated calls return identical
boards.
*/
func TestService_TopUsers_Deterministic(t *testing.T) {
	edges := newFakeEdgeRepository()
	edges.leaders = rankedFixture()
	service := newTestService(edges, nil, nil)

	first, err := service.TopUsers(context.Background(), 10, nil)
	require.NoError(t, err)
	second, err := service.TopUsers(context.Background(), 10, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

/*
TestService_TopUsers_ViewerAnnotation verifies IsFollowed is relative to the
requesting viewer and false everywhere for anonymous calls.
*/
func TestService_TopUsers_ViewerAnnotation(t *testing.T) {
	edges := newFakeEdgeRepository()
	edges.leaders = rankedFixture()
	service := newTestService(edges, nil, nil)

	viewer := &identity.Viewer{
		User: identity.User{ID: "user-x"},
		Relations: identity.RelationSets{
			FollowingIDs: []string{"user-b", "user-d"},
		},
	}

	leaders, err := service.TopUsers(context.Background(), 10, viewer)
	require.NoError(t, err)

	flags := map[string]bool{}
	for _, ranked := range leaders {
		flags[ranked.ID] = ranked.IsFollowed
	}
	assert.False(t, flags["user-c"])
	assert.False(t, flags["user-a"])
	assert.True(t, flags["user-b"])
	assert.True(t, flags["user-d"])

	// Anonymous: same board, no flags.
	anonymous, err := service.TopUsers(context.Background(), 10, nil)
	require.NoError(t, err)
	for _, ranked := range anonymous {
		assert.False(t, ranked.IsFollowed, "user %s", ranked.ID)
	}
}

/*
TestService_TopUsers_LimitClamping verifies defaulting and capping of the
requested board size.
*/
func TestService_TopUsers_LimitClamping(t *testing.T) {
	edges := newFakeEdgeRepository()
	for i := 0; i < social.MaxLeaderboardSize+20; i++ {
		edges.leaders = append(edges.leaders, social.RankedUser{
			ID:            string(rune('a' + i%26)),
			FollowerCount: 1,
		})
	}
	service := newTestService(edges, nil, nil)

	// Zero and negative select the default size.
	leaders, err := service.TopUsers(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.Len(t, leaders, social.DefaultLeaderboardSize)

	leaders, err = service.TopUsers(context.Background(), -3, nil)
	require.NoError(t, err)
	assert.Len(t, leaders, social.DefaultLeaderboardSize)

	// Oversized requests are capped.
	leaders, err = service.TopUsers(context.Background(), 1000, nil)
	require.NoError(t, err)
	assert.Len(t, leaders, social.MaxLeaderboardSize)
}

/*
TestService_TopUsers_Empty verifies an empty board is returned as an empty,
non-nil slice.
*/
func TestService_TopUsers_Empty(t *testing.T) {
	service := newTestService(newFakeEdgeRepository(), nil, nil)

	leaders, err := service.TopUsers(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.NotNil(t, leaders)
	assert.Empty(t, leaders)
}
