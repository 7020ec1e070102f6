// Copyright (c) 2026 Plateful. All rights reserved.

/*
Package identity defines the user account entity and its relationship graph view.

It is the single source of truth for who a user is: the persisted account
record plus the eagerly loadable relation sets (favorited restaurants, liked
restaurants, followed users, followers) that downstream features compute
against.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no
dependencies beyond the security primitives and encapsulate all rules related
to user identity.
*/
package identity

import (
	"time"

	"github.com/plateful/plateful/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Plateful platform.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	AvatarURL    string       `json:"avatar_url,omitempty"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Relation Kinds

// Relation identifies one of the eagerly loadable relationship sets of a user.
//
// The set of kinds is closed and checked at compile time; callers request
// relation loading by combining kinds into a [Relations] value instead of
// passing association names as strings.
type Relation uint8

const (
	// RelFavorites loads the IDs of restaurants the user has favorited.
	RelFavorites Relation = 1 << iota

	// RelLikes loads the IDs of restaurants the user has liked.
	RelLikes

	// RelFollowing loads the IDs of users this user follows.
	RelFollowing

	// RelFollowers loads the IDs of users following this user.
	RelFollowers
)

// Relations is a set of [Relation] kinds to load alongside a user fetch.
type Relations uint8

// NoRelations loads the bare account record.
const NoRelations Relations = 0

// AllRelations loads every relation set. Both stateless token resolution and
// session re-hydration use this, so the two auth modes present an identical
// viewer shape to downstream code.
const AllRelations = Relations(RelFavorites | RelLikes | RelFollowing | RelFollowers)

// Has reports whether the set includes the given relation kind.
func (r Relations) Has(kind Relation) bool {
	return r&Relations(kind) != 0
}

// With returns a copy of the set with the given relation kind included.
func (r Relations) With(kind Relation) Relations {
	return r | Relations(kind)
}

// # Viewer

// RelationSets holds the eagerly loaded edge targets of a user.
//
// Only the sets requested at fetch time are populated; the rest stay empty
// (never nil, to keep JSON output stable).
type RelationSets struct {
	FavoriteRestaurantIDs []string `json:"favorite_restaurant_ids"`
	LikedRestaurantIDs    []string `json:"liked_restaurant_ids"`
	FollowingIDs          []string `json:"following_ids"`
	FollowerIDs           []string `json:"follower_ids"`
}

// Viewer is a user together with their loaded relation sets.
//
// It is the identity shape injected into the request context after
// verification, regardless of which auth mode resolved it.
type Viewer struct {
	User
	Relations RelationSets `json:"relations"`
}

// IsFollowing reports whether the viewer follows the given user ID.
func (v *Viewer) IsFollowing(userID string) bool {
	return containsID(v.Relations.FollowingIDs, userID)
}

// HasFavorited reports whether the viewer has favorited the given restaurant ID.
func (v *Viewer) HasFavorited(restaurantID string) bool {
	return containsID(v.Relations.FavoriteRestaurantIDs, restaurantID)
}

// HasLiked reports whether the viewer has liked the given restaurant ID.
func (v *Viewer) HasLiked(restaurantID string) bool {
	return containsID(v.Relations.LikedRestaurantIDs, restaurantID)
}

// FollowerCount returns the size of the loaded followers set.
func (v *Viewer) FollowerCount() int {
	return len(v.Relations.FollowerIDs)
}

// containsID does a linear scan; relation sets are small per user.
func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// # Field Identifiers

// Global field names for validation and identity mapping in the identity domain.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldAvatarURL   = "avatar_url"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
	FieldMessage     = "message"
)
