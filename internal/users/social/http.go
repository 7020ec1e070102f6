// Copyright (c) 2026 Plateful. All rights reserved.

package social

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/platform/middleware"
	requestutil "github.com/plateful/plateful/internal/platform/request"
	"github.com/plateful/plateful/internal/platform/respond"
	"github.com/plateful/plateful/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the relationship graph HTTP endpoints.
//
// # Scope
//
// Edge mutations live under the resource they point at (restaurants for
// favorites/likes, users for follows), so this handler registers its routes
// into the owning subtrees instead of claiming a prefix of its own.
type Handler struct {
	socialService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{socialService: service}
}

// RegisterRestaurantRoutes attaches favorite/like routes to the restaurant subtree.
//
// # Endpoints
//   - POST   /{restaurantID}/favorite : Favorite a restaurant.
//   - DELETE /{restaurantID}/favorite : Remove a favorite.
//   - POST   /{restaurantID}/like     : Like a restaurant.
//   - DELETE /{restaurantID}/like     : Remove a like.
func (handler *Handler) RegisterRestaurantRoutes(router chi.Router) {
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/{restaurantID}/favorite", handler.edgeAdd(KindFavorite, FieldRestaurantID, "restaurantID"))
		protected.Delete("/{restaurantID}/favorite", handler.edgeRemove(KindFavorite, FieldRestaurantID, "restaurantID"))
		protected.Post("/{restaurantID}/like", handler.edgeAdd(KindLike, FieldRestaurantID, "restaurantID"))
		protected.Delete("/{restaurantID}/like", handler.edgeRemove(KindLike, FieldRestaurantID, "restaurantID"))
	})
}

// RegisterUserRoutes attaches follow routes and the leaderboard to the user subtree.
//
// # Endpoints
//   - GET    /top             : Follower-count leaderboard (public, viewer-annotated).
//   - POST   /{userID}/follow : Follow a user.
//   - DELETE /{userID}/follow : Unfollow a user.
func (handler *Handler) RegisterUserRoutes(router chi.Router) {
	router.Get("/top", handler.topUsers)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/{userID}/follow", handler.edgeAdd(KindFollow, FieldUserID, "userID"))
		protected.Delete("/{userID}/follow", handler.edgeRemove(KindFollow, FieldUserID, "userID"))
	})
}

// # Edge Mutations

/*
edgeAdd builds the handler creating one edge of the given kind.

POST /api/v1/restaurants/{id}/favorite (and siblings)

Description: The acting user is always the authenticated viewer; the target
comes from the URL. Creation is not idempotent: repeating it is a Conflict.

Response:
  - 201: Edge created
  - 404: ErrNotFound: Target restaurant or user does not exist
  - 409: ErrConflict: Edge already exists
  - 422: ErrUnprocessable: Self-follow attempt
*/
func (handler *Handler) edgeAdd(kind EdgeKind, field, param string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		viewer, err := requestutil.RequiredViewer(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		targetID := requestutil.Param(request, param)
		validator := &validate.Validator{}
		if err := validator.UUID(field, targetID).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := handler.socialService.Add(request.Context(), kind, viewer.ID, targetID); err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Created(writer, Edge{
			Kind:      kind,
			SourceID:  viewer.ID,
			TargetID:  targetID,
			CreatedAt: time.Now(),
		})
	}
}

/*
edgeRemove builds the handler deleting one edge of the given kind.

DELETE /api/v1/restaurants/{id}/favorite (and siblings)

Description: Removing an absent edge is reported as a Conflict so clients
notice double-removals instead of silently succeeding.

Response:
  - 204: Edge removed
  - 409: ErrConflict: Edge does not exist
*/
func (handler *Handler) edgeRemove(kind EdgeKind, field, param string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		viewer, err := requestutil.RequiredViewer(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		targetID := requestutil.Param(request, param)
		validator := &validate.Validator{}
		if err := validator.UUID(field, targetID).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := handler.socialService.Remove(request.Context(), kind, viewer.ID, targetID); err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.NoContent(writer)
	}
}

// # Leaderboard

/*
TopUsers returns the follower-count leaderboard.

GET /api/v1/users/top?limit=10

Description: Public endpoint. When the request carries a valid credential the
rows are annotated with viewer-relative IsFollowed flags; anonymous requests
get the same board with every flag false.

Response:
  - 200: []RankedUser: Ordered leaderboard
*/
func (handler *Handler) topUsers(writer http.ResponseWriter, request *http.Request) {
	limit := 0
	if raw := request.URL.Query().Get(FieldLimit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError(FieldLimit, "Must be an integer"))
			return
		}
		limit = parsed
	}

	viewer := requestutil.Viewer(request)
	leaders, err := handler.socialService.TopUsers(request.Context(), limit, viewer)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, leaders)
}
