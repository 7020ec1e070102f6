// Copyright (c) 2026 Plateful. All rights reserved.

package social

import "context"

// # Edge Data Access

// Repository defines the data access contract for the relationship graphs.
type Repository interface {

	/*
		AddEdge inserts one directed edge into the graph of the given kind.

		The composite unique constraint on (source, target) is the source of
		truth for duplicates: concurrent inserts of the same edge surface as
		Conflict, never as a second row.

		Parameters:
		  - context: context.Context
		  - kind: EdgeKind
		  - sourceID: string
		  - targetID: string

		Returns:
		  - error: apperr.Conflict on duplicate, apperr.NotFound if the target
		    row vanished concurrently, or execution errors
	*/
	AddEdge(context context.Context, kind EdgeKind, sourceID, targetID string) error

	/*
		RemoveEdge deletes one directed edge from the graph of the given kind.

		Parameters:
		  - context: context.Context
		  - kind: EdgeKind
		  - sourceID: string
		  - targetID: string

		Returns:
		  - bool: Whether an edge row was actually deleted
		  - error: Execution errors
	*/
	RemoveEdge(context context.Context, kind EdgeKind, sourceID, targetID string) (bool, error)

	/*
		EdgeExists reports whether a directed edge is present.

		Parameters:
		  - context: context.Context
		  - kind: EdgeKind
		  - sourceID: string
		  - targetID: string

		Returns:
		  - bool: Presence of the edge
		  - error: Execution errors
	*/
	EdgeExists(context context.Context, kind EdgeKind, sourceID, targetID string) (bool, error)

	/*
		FollowerLeaders returns users ordered by follower count, descending.

		Ties are broken by account creation order (ascending time-sortable ID)
		so the leaderboard is deterministic across calls.

		Parameters:
		  - context: context.Context
		  - limit: int (maximum rows; capped by the caller)

		Returns:
		  - []RankedUser: Leaderboard rows with IsFollowed left unset
		  - error: Execution errors
	*/
	FollowerLeaders(context context.Context, limit int) ([]RankedUser, error)
}

// Directory is the narrow existence contract a graph needs for its edge
// targets. Both the restaurant catalog and the user account store satisfy it.
type Directory interface {

	/*
		Exists reports whether the resource with the given ID is present.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - bool: Presence of the resource
		  - error: Execution errors (absence is not an error)
	*/
	Exists(context context.Context, id string) (bool, error)
}
