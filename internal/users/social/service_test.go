// Copyright (c) 2026 Plateful. All rights reserved.

package social_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/users/social"
)

// # Test Doubles

type edgeKey struct {
	kind   social.EdgeKind
	source string
	target string
}

// fakeEdgeRepository is an in-memory [social.Repository]. Uniqueness is
// enforced on the composite key, mirroring the table constraint.
type fakeEdgeRepository struct {
	edges   map[edgeKey]bool
	leaders []social.RankedUser
}

func newFakeEdgeRepository() *fakeEdgeRepository {
	return &fakeEdgeRepository{edges: map[edgeKey]bool{}}
}

func (repo *fakeEdgeRepository) AddEdge(_ context.Context, kind social.EdgeKind, sourceID, targetID string) error {
	key := edgeKey{kind, sourceID, targetID}
	if repo.edges[key] {
		return apperr.Conflict("Relationship already exists")
	}
	repo.edges[key] = true
	return nil
}

func (repo *fakeEdgeRepository) RemoveEdge(_ context.Context, kind social.EdgeKind, sourceID, targetID string) (bool, error) {
	key := edgeKey{kind, sourceID, targetID}
	if !repo.edges[key] {
		return false, nil
	}
	delete(repo.edges, key)
	return true, nil
}

func (repo *fakeEdgeRepository) EdgeExists(_ context.Context, kind social.EdgeKind, sourceID, targetID string) (bool, error) {
	return repo.edges[edgeKey{kind, sourceID, targetID}], nil
}

func (repo *fakeEdgeRepository) FollowerLeaders(_ context.Context, limit int) ([]social.RankedUser, error) {
	if limit > len(repo.leaders) {
		limit = len(repo.leaders)
	}
	out := make([]social.RankedUser, limit)
	copy(out, repo.leaders[:limit])
	return out, nil
}

// fakeDirectory is a fixed-membership [social.Directory].
type fakeDirectory struct {
	ids map[string]bool
}

func newFakeDirectory(ids ...string) *fakeDirectory {
	directory := &fakeDirectory{ids: map[string]bool{}}
	for _, id := range ids {
		directory.ids[id] = true
	}
	return directory
}

func (directory *fakeDirectory) Exists(_ context.Context, id string) (bool, error) {
	return directory.ids[id], nil
}

// # Fixtures

func newTestService(edges *fakeEdgeRepository, userIDs, restaurantIDs []string) *social.Service {
	return social.NewService(edges, newFakeDirectory(userIDs...), newFakeDirectory(restaurantIDs...))
}

// # Edge Mutations

/*
TestService_Add verifies each graph accepts a first edge and records it.
*/
func TestService_Add(t *testing.T) {
	edges := newFakeEdgeRepository()
	service := newTestService(edges, []string{"user-a", "user-b"}, []string{"rest-1"})

	require.NoError(t, service.Add(context.Background(), social.KindFavorite, "user-a", "rest-1"))
	require.NoError(t, service.Add(context.Background(), social.KindLike, "user-a", "rest-1"))
	require.NoError(t, service.Add(context.Background(), social.KindFollow, "user-a", "user-b"))

	for _, kind := range []social.EdgeKind{social.KindFavorite, social.KindLike} {
		present, err := service.Has(context.Background(), kind, "user-a", "rest-1")
		require.NoError(t, err)
		assert.True(t, present, "kind %s", kind)
	}
	present, err := service.Has(context.Background(), social.KindFollow, "user-a", "user-b")
	require.NoError(t, err)
	assert.True(t, present)
}

/*
TestService_Add_GraphsAreIndependent verifies a favorite edge does not imply
a like edge for the same user/restaurant pair.
*/
func TestService_Add_GraphsAreIndependent(t *testing.T) {
	edges := newFakeEdgeRepository()
	service := newTestService(edges, nil, []string{"rest-1"})

	require.NoError(t, service.Add(context.Background(), social.KindFavorite, "user-a", "rest-1"))

	liked, err := service.Has(context.Background(), social.KindLike, "user-a", "rest-1")
	require.NoError(t, err)
	assert.False(t, liked)
}

/*
TestService_Add_Duplicate verifies repeating an add surfaces as Conflict.
*/
func TestService_Add_Duplicate(t *testing.T) {
	edges := newFakeEdgeRepository()
	service := newTestService(edges, nil, []string{"rest-1"})

	require.NoError(t, service.Add(context.Background(), social.KindFavorite, "user-a", "rest-1"))

	err := service.Add(context.Background(), social.KindFavorite, "user-a", "rest-1")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

/*
TestService_Add_TargetMissing verifies an edge to a nonexistent target is
NotFound for every graph.
*/
func TestService_Add_TargetMissing(t *testing.T) {
	edges := newFakeEdgeRepository()
	service := newTestService(edges, []string{"user-a"}, nil)

	for _, kind := range []social.EdgeKind{social.KindFavorite, social.KindLike, social.KindFollow} {
		err := service.Add(context.Background(), kind, "user-a", "ghost")
		require.Error(t, err, "kind %s", kind)
		assert.True(t, apperr.IsNotFound(err), "kind %s", kind)
	}
}

/*
TestService_Add_SelfFollow verifies following yourself is rejected as
semantically invalid, not as a duplicate or missing target.
*/
func TestService_Add_SelfFollow(t *testing.T) {
	edges := newFakeEdgeRepository()
	service := newTestService(edges, []string{"user-a"}, nil)

	err := service.Add(context.Background(), social.KindFollow, "user-a", "user-a")
	require.Error(t, err)

	failure := apperr.As(err)
	require.NotNil(t, failure)
	assert.Equal(t, "UNPROCESSABLE", failure.Code)

	// Nothing was written
	present, err := service.Has(context.Background(), social.KindFollow, "user-a", "user-a")
	require.NoError(t, err)
	assert.False(t, present)
}

/*
TestService_Remove verifies removal deletes the edge and a second removal of
the same edge is a Conflict.
*/
func TestService_Remove(t *testing.T) {
	edges := newFakeEdgeRepository()
	service := newTestService(edges, []string{"user-a", "user-b"}, nil)

	require.NoError(t, service.Add(context.Background(), social.KindFollow, "user-a", "user-b"))
	require.NoError(t, service.Remove(context.Background(), social.KindFollow, "user-a", "user-b"))

	present, err := service.Has(context.Background(), social.KindFollow, "user-a", "user-b")
	require.NoError(t, err)
	assert.False(t, present)

	err = service.Remove(context.Background(), social.KindFollow, "user-a", "user-b")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

/*
TestService_Remove_AbsentEdge verifies removing an edge that never existed is
a Conflict for every graph.
*/
func TestService_Remove_AbsentEdge(t *testing.T) {
	edges := newFakeEdgeRepository()
	service := newTestService(edges, []string{"user-b"}, []string{"rest-1"})

	for _, probe := range []struct {
		kind   social.EdgeKind
		target string
	}{
		{social.KindFavorite, "rest-1"},
		{social.KindLike, "rest-1"},
		{social.KindFollow, "user-b"},
	} {
		err := service.Remove(context.Background(), probe.kind, "user-a", probe.target)
		require.Error(t, err, "kind %s", probe.kind)
		assert.True(t, apperr.IsConflict(err), "kind %s", probe.kind)
	}
}

/*
TestService_ReAdd verifies an edge can be recreated after removal.
*/
func TestService_ReAdd(t *testing.T) {
	edges := newFakeEdgeRepository()
	service := newTestService(edges, nil, []string{"rest-1"})

	require.NoError(t, service.Add(context.Background(), social.KindLike, "user-a", "rest-1"))
	require.NoError(t, service.Remove(context.Background(), social.KindLike, "user-a", "rest-1"))
	require.NoError(t, service.Add(context.Background(), social.KindLike, "user-a", "rest-1"))

	present, err := service.Has(context.Background(), social.KindLike, "user-a", "rest-1")
	require.NoError(t, err)
	assert.True(t, present)
}
