// Copyright (c) 2026 Plateful. All rights reserved.

// Package category implements the restaurant category lookup table.
package category

import "time"

// Category groups restaurants by cuisine or venue type.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

const FieldName = "name"
