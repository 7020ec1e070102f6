// Copyright (c) 2026 Plateful. All rights reserved.

package social

import (
	"context"
	"fmt"

	"github.com/plateful/plateful/internal/platform/apperr"
)

// # Service

// Service implements the relationship graph use cases.
//
// All three graphs share the same mutation pipeline: verify the target
// exists, apply graph-specific rules, then let the edge table's constraints
// settle races.
type Service struct {
	edges       Repository
	users       Directory
	restaurants Directory
}

// NewService constructs a new social [Service] with necessary dependencies.
func NewService(edges Repository, users, restaurants Directory) *Service {
	return &Service{
		edges:       edges,
		users:       users,
		restaurants: restaurants,
	}
}

// directoryFor returns the existence checker for the kind's target side.
func (service *Service) directoryFor(kind EdgeKind) Directory {
	if kind == KindFollow {
		return service.users
	}
	return service.restaurants
}

/*
Add creates one directed edge in the given graph.

Description: Verifies the target exists (NotFound otherwise), rejects
self-follows, and inserts the edge. The existence pre-check and duplicate
handling race-proof each other: the table constraints decide both under
concurrency.

Parameters:
  - context: context.Context
  - kind: EdgeKind
  - sourceID: string (acting user)
  - targetID: string (restaurant or user)

Returns:
  - error: NotFound, Unprocessable (self-follow), Conflict (duplicate), or
    execution errors
*/
func (service *Service) Add(context context.Context, kind EdgeKind, sourceID, targetID string) error {

	// 1. A user cannot follow themselves.
	if kind == KindFollow && sourceID == targetID {
		return apperr.Unprocessable("You cannot follow yourself")
	}

	// 2. Fast-path target check for a clean NotFound. The foreign key still
	// covers targets deleted between this check and the insert.
	exists, err := service.directoryFor(kind).Exists(context, targetID)
	if err != nil {
		return fmt.Errorf("social_service_target_check_failed: %w", err)
	}
	if !exists {
		return apperr.NotFound(kind.TargetResource())
	}

	// 3. Insert. Duplicates surface as Conflict from the unique constraint.
	return service.edges.AddEdge(context, kind, sourceID, targetID)
}

/*
Remove deletes one directed edge from the given graph.

Description: Removing an edge that does not exist is a client error, not a
no-op, so accidental double-removals are visible to callers.

Parameters:
  - context: context.Context
  - kind: EdgeKind
  - sourceID: string
  - targetID: string

Returns:
  - error: Conflict (edge absent) or execution errors
*/
func (service *Service) Remove(context context.Context, kind EdgeKind, sourceID, targetID string) error {
	removed, err := service.edges.RemoveEdge(context, kind, sourceID, targetID)
	if err != nil {
		return fmt.Errorf("social_service_remove_failed: %w", err)
	}

	if !removed {
		return apperr.Conflict("Relationship does not exist")
	}

	return nil
}

/*
Has reports whether a directed edge is present in the given graph.

Parameters:
  - context: context.Context
  - kind: EdgeKind
  - sourceID: string
  - targetID: string

Returns:
  - bool: Presence of the edge
  - error: Execution errors
*/
func (service *Service) Has(context context.Context, kind EdgeKind, sourceID, targetID string) (bool, error) {
	return service.edges.EdgeExists(context, kind, sourceID, targetID)
}
