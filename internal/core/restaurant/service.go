// Copyright (c) 2026 Plateful. All rights reserved.

package restaurant

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

func (service *Service) ListRestaurants(context context.Context, filter Filter, limit, offset int) ([]*Restaurant, int, error) {
	return service.repo.ListRestaurants(context, filter, limit, offset)
}

func (service *Service) GetRestaurant(context context.Context, id string) (*Restaurant, error) {
	return service.repo.GetRestaurant(context, id)
}

func (service *Service) GetRestaurantBySlug(context context.Context, s string) (*Restaurant, error) {
	return service.repo.GetRestaurantBySlug(context, s)
}

func (service *Service) CreateRestaurant(context context.Context, restaurant *Restaurant) error {
	if err := validateRestaurant(restaurant); err != nil {
		return err
	}

	restaurant.ID = uuid.New()
	restaurant.Slug = slug.From(restaurant.Name)

	if err := service.repo.CreateRestaurant(context, restaurant); err != nil {
		return err
	}

	service.logger.Info("restaurant_created",
		slog.String("restaurant_id", restaurant.ID),
		slog.String("name", restaurant.Name),
	)
	return nil
}

func (service *Service) UpdateRestaurant(context context.Context, id string, restaurant *Restaurant) error {
	restaurant.ID = id
	if err := validateRestaurant(restaurant); err != nil {
		return err
	}

	// Slug tracks the name so listing URLs stay readable after renames.
	restaurant.Slug = slug.From(restaurant.Name)

	if err := service.repo.UpdateRestaurant(context, restaurant); err != nil {
		return err
	}

	service.logger.Info("restaurant_updated", slog.String("restaurant_id", id))
	return nil
}

func (service *Service) DeleteRestaurant(context context.Context, id string) error {
	if err := service.repo.DeleteRestaurant(context, id); err != nil {
		return err
	}

	service.logger.Warn("restaurant_deleted", slog.String("restaurant_id", id))
	return nil
}

// Exists implements the social target-check contract.
func (service *Service) Exists(context context.Context, id string) (bool, error) {
	return service.repo.Exists(context, id)
}

func validateRestaurant(restaurant *Restaurant) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, restaurant.Name).MaxLen(FieldName, restaurant.Name, 200)

	if restaurant.ImageURL != nil {
		validator.URL(FieldImageURL, *restaurant.ImageURL)
	}
	if restaurant.CategoryID != nil {
		validator.UUID(FieldCategoryID, *restaurant.CategoryID)
	}
	if restaurant.Tel != nil {
		validator.MaxLen(FieldTel, *restaurant.Tel, 30)
	}
	if restaurant.Address != nil {
		validator.MaxLen(FieldAddress, *restaurant.Address, 300)
	}

	return validator.Err()
}
