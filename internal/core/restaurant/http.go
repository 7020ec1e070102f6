// Copyright (c) 2026 Plateful. All rights reserved.

package restaurant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/platform/middleware"
	requestutil "github.com/plateful/plateful/internal/platform/request"
	"github.com/plateful/plateful/internal/platform/respond"
	"github.com/plateful/plateful/internal/platform/sec"
	"github.com/plateful/plateful/internal/platform/validate"
	"github.com/plateful/plateful/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listRestaurants)
	router.Get("/{restaurantID}", handler.getRestaurant)
	router.Get("/slug/{slug}", handler.getRestaurantBySlug)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createRestaurant)
		adminRoute.Patch("/{restaurantID}", handler.updateRestaurant)
		adminRoute.Delete("/{restaurantID}", handler.deleteRestaurant)
	})
}

func (handler *Handler) listRestaurants(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:      request.URL.Query().Get("q"),
		CategoryID: request.URL.Query().Get("category"),
	}

	restaurants, total, err := handler.service.ListRestaurants(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, restaurants, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getRestaurant(writer http.ResponseWriter, request *http.Request) {
	restaurantID := requestutil.Param(request, "restaurantID")

	validator := &validate.Validator{}
	if err := validator.UUID("restaurant_id", restaurantID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	restaurant, err := handler.service.GetRestaurant(request.Context(), restaurantID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, restaurant)
}

func (handler *Handler) getRestaurantBySlug(writer http.ResponseWriter, request *http.Request) {
	restaurantSlug := requestutil.Param(request, "slug")

	validator := &validate.Validator{}
	if err := validator.Slug(FieldSlug, restaurantSlug).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	restaurant, err := handler.service.GetRestaurantBySlug(request.Context(), restaurantSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, restaurant)
}

func (handler *Handler) createRestaurant(writer http.ResponseWriter, request *http.Request) {
	var input Restaurant

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateRestaurant(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateRestaurant(writer http.ResponseWriter, request *http.Request) {
	restaurantID := requestutil.Param(request, "restaurantID")

	var input Restaurant
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateRestaurant(request.Context(), restaurantID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteRestaurant(writer http.ResponseWriter, request *http.Request) {
	restaurantID := requestutil.Param(request, "restaurantID")

	if err := handler.service.DeleteRestaurant(request.Context(), restaurantID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
