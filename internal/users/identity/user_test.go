// Copyright (c) 2026 Plateful. All rights reserved.

package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plateful/plateful/internal/users/identity"
)

/*
TestRelations_Set verifies the compile-time relation set semantics.
*/
func TestRelations_Set(t *testing.T) {
	var rels identity.Relations

	// 1. Empty set has nothing
	assert.False(t, rels.Has(identity.RelFavorites))
	assert.False(t, rels.Has(identity.RelFollowers))

	// 2. With adds a single kind without affecting others
	rels = rels.With(identity.RelFollowing)
	assert.True(t, rels.Has(identity.RelFollowing))
	assert.False(t, rels.Has(identity.RelLikes))

	// 3. AllRelations covers every kind
	assert.True(t, identity.AllRelations.Has(identity.RelFavorites))
	assert.True(t, identity.AllRelations.Has(identity.RelLikes))
	assert.True(t, identity.AllRelations.Has(identity.RelFollowing))
	assert.True(t, identity.AllRelations.Has(identity.RelFollowers))
}

/*
TestViewer_RelationLookups verifies the viewer-relative membership helpers.
*/
func TestViewer_RelationLookups(t *testing.T) {
	viewer := &identity.Viewer{
		User: identity.User{ID: "user-a"},
		Relations: identity.RelationSets{
			FavoriteRestaurantIDs: []string{"rest-1"},
			LikedRestaurantIDs:    []string{"rest-2"},
			FollowingIDs:          []string{"user-b"},
			FollowerIDs:           []string{"user-b", "user-c"},
		},
	}

	assert.True(t, viewer.HasFavorited("rest-1"))
	assert.False(t, viewer.HasFavorited("rest-2"))

	assert.True(t, viewer.HasLiked("rest-2"))
	assert.False(t, viewer.HasLiked("rest-1"))

	assert.True(t, viewer.IsFollowing("user-b"))
	assert.False(t, viewer.IsFollowing("user-c"))

	assert.Equal(t, 2, viewer.FollowerCount())
}

/*
TestViewer_Context verifies viewer injection and retrieval from a request context.
*/
func TestViewer_Context(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous context resolves to nil
	assert.Nil(t, identity.FromContext(ctx))

	// 2. Inject and retrieve
	viewer := &identity.Viewer{User: identity.User{ID: "user-a"}}
	ctx = identity.NewContext(ctx, viewer)

	resolved := identity.FromContext(ctx)
	assert.NotNil(t, resolved)
	assert.Equal(t, "user-a", resolved.ID)
}
