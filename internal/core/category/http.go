// Copyright (c) 2026 Plateful. All rights reserved.

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/platform/middleware"
	requestutil "github.com/plateful/plateful/internal/platform/request"
	"github.com/plateful/plateful/internal/platform/respond"
	"github.com/plateful/plateful/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Get("/by-slug/{slug}", handler.getCategoryBySlug)

	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/", handler.createCategory)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategoryBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	category, err := handler.service.GetCategoryBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}
