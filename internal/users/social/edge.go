// Copyright (c) 2026 Plateful. All rights reserved.

/*
Package social implements the relationship graphs between users and content.

Three many-to-many graphs share one edge model:

  - Favorite: user -> restaurant
  - Like: user -> restaurant
  - Follow: user -> user

All graphs expose the same two mutations (add, remove) with identical error
semantics, and the follow graph additionally backs the follower-count ranking
query.

Architecture:

  - Service: Orchestrates edge mutations and the ranking query.
  - Repository: Abstracted Postgres contract; one table per edge kind with a
    composite unique constraint as the concurrency source of truth.
*/
package social

import (
	"time"

	"github.com/plateful/plateful/internal/platform/database/schema"
)

// # Edge Kinds

// EdgeKind identifies one of the relationship graphs.
type EdgeKind string

const (
	// KindFavorite is the user -> restaurant favorites graph.
	KindFavorite EdgeKind = "favorite"

	// KindLike is the user -> restaurant likes graph.
	KindLike EdgeKind = "like"

	// KindFollow is the user -> user follow graph.
	KindFollow EdgeKind = "follow"
)

// TargetResource returns the client-facing name of the kind's target, used
// in NotFound messages.
func (kind EdgeKind) TargetResource() string {
	if kind == KindFollow {
		return "User"
	}
	return "Restaurant"
}

// edgeTable describes the physical columns of one edge graph.
type edgeTable struct {
	table        string
	sourceColumn string
	targetColumn string
}

// tableFor maps an edge kind onto its schema descriptor.
func tableFor(kind EdgeKind) edgeTable {
	switch kind {
	case KindFavorite:
		return edgeTable{
			table:        schema.SocialFavorite.Table,
			sourceColumn: schema.SocialFavorite.UserID,
			targetColumn: schema.SocialFavorite.RestaurantID,
		}
	case KindLike:
		return edgeTable{
			table:        schema.SocialLike.Table,
			sourceColumn: schema.SocialLike.UserID,
			targetColumn: schema.SocialLike.RestaurantID,
		}
	case KindFollow:
		return edgeTable{
			table:        schema.SocialFollow.Table,
			sourceColumn: schema.SocialFollow.FollowerID,
			targetColumn: schema.SocialFollow.FollowingID,
		}
	default:
		// Closed enum; reaching here is a programming error.
		panic("social: unknown edge kind " + string(kind))
	}
}

// # Domain Entities

// Edge is one directed relationship in a graph.
type Edge struct {
	Kind      EdgeKind  `json:"kind"`
	SourceID  string    `json:"source_id"`
	TargetID  string    `json:"target_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RankedUser is one row of the follower-count leaderboard.
//
// IsFollowed is viewer-relative: it reports whether the requesting viewer
// follows this user, and stays false for anonymous requests.
type RankedUser struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	FollowerCount int    `json:"follower_count"`
	IsFollowed    bool   `json:"is_followed"`
}

// # Field Identifiers

const (
	FieldRestaurantID = "restaurant_id"
	FieldUserID       = "user_id"
	FieldLimit        = "limit"
)
