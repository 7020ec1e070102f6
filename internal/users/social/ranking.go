// Copyright (c) 2026 Plateful. All rights reserved.

package social

import (
	"context"
	"fmt"
	"sort"

	"github.com/plateful/plateful/internal/users/identity"
)

// # Ranking Query

const (
	// DefaultLeaderboardSize is the number of rows returned when the client
	// does not ask for a specific limit.
	DefaultLeaderboardSize = 10

	// MaxLeaderboardSize caps the leaderboard so a single request cannot
	// enumerate the whole user table.
	MaxLeaderboardSize = 50
)

/*
TopUsers returns the follower-count leaderboard, viewer-annotated.

Description: Users are ordered by follower count descending. The ordering is
stable: users with equal counts keep their storage order (account creation
order), so repeated calls return identical boards. When a viewer is present,
each row's IsFollowed reflects whether that viewer follows the ranked user;
anonymous callers get every flag false.

Parameters:
  - context: context.Context
  - limit: int (clamped to [1, MaxLeaderboardSize]; <= 0 selects the default)
  - viewer: *identity.Viewer (nil for anonymous requests)

Returns:
  - []RankedUser: Annotated leaderboard, possibly empty, never nil
  - error: Execution errors
*/
func (service *Service) TopUsers(context context.Context, limit int, viewer *identity.Viewer) ([]RankedUser, error) {

	// 1. Clamp the requested size.
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		limit = MaxLeaderboardSize
	}

	// 2. Load the board.
	leaders, err := service.edges.FollowerLeaders(context, limit)
	if err != nil {
		return nil, fmt.Errorf("social_service_top_users_failed: %w", err)
	}

	// 3. Stable re-sort. The store already orders its rows, but stability is
	// a contract of this query, not an accident of one SQL plan.
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].FollowerCount > leaders[j].FollowerCount
	})

	// 4. Viewer-relative annotation.
	if viewer != nil {
		for i := range leaders {
			leaders[i].IsFollowed = viewer.IsFollowing(leaders[i].ID)
		}
	}

	if leaders == nil {
		leaders = []RankedUser{}
	}

	return leaders, nil
}
