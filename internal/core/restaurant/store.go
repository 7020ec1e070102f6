// Copyright (c) 2026 Plateful. All rights reserved.

package restaurant

import "context"

type Repository interface {
	ListRestaurants(context context.Context, f Filter, limit, offset int) ([]*Restaurant, int, error)
	GetRestaurant(context context.Context, id string) (*Restaurant, error)
	GetRestaurantBySlug(context context.Context, slug string) (*Restaurant, error)
	CreateRestaurant(context context.Context, r *Restaurant) error
	UpdateRestaurant(context context.Context, r *Restaurant) error
	DeleteRestaurant(context context.Context, id string) error

	// Exists backs the favorite/like target check.
	Exists(context context.Context, id string) (bool, error)
}
