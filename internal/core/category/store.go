// Copyright (c) 2026 Plateful. All rights reserved.

package category

import "context"

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategoryBySlug(context context.Context, slug string) (*Category, error)
	CreateCategory(context context.Context, c *Category) error
}
