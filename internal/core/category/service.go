// Copyright (c) 2026 Plateful. All rights reserved.

package category

import (
	"context"
	"log/slog"

	"github.com/plateful/plateful/internal/platform/validate"
	"github.com/plateful/plateful/pkg/slug"
	"github.com/plateful/plateful/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetCategoryBySlug(context context.Context, s string) (*Category, error) {
	return service.repo.GetCategoryBySlug(context, s)
}

func (service *Service) CreateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name).MaxLen(FieldName, category.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	category.ID = uuid.New()
	category.Slug = slug.From(category.Name)

	if err := service.repo.CreateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_created", slog.String("name", category.Name))
	return nil
}
