// Copyright (c) 2026 Plateful. All rights reserved.

// Package restaurant implements the restaurant catalog.
package restaurant

import "time"

// Restaurant represents one listed venue in the catalog.
type Restaurant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Tel          *string   `json:"tel"`
	Address      *string   `json:"address"`
	OpeningHours *string   `json:"opening_hours"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	CategoryID   *string   `json:"category_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated catalog search.
type Filter struct {
	Query      string // ILIKE search against name and address
	CategoryID string
}

const (
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldTel         = "tel"
	FieldAddress     = "address"
	FieldImageURL    = "image_url"
	FieldCategoryID  = "category_id"
	FieldDescription = "description"
)
