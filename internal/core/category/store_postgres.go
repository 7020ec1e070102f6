// Copyright (c) 2026 Plateful. All rights reserved.

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateful/plateful/internal/platform/database/schema"
	"github.com/plateful/plateful/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	t := schema.CoreCategory
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		t.ID, t.Name, t.Slug, t.Table, t.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	t := schema.CoreCategory
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Name, t.Slug, t.Table, t.Slug)

	c := &Category{}
	err := repository.db.QueryRow(context, query, slug).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_slug")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	t := schema.CoreCategory
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, t.ID, t.Name, t.Slug, t.CreatedAt, t.UpdatedAt, t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query, c.ID, c.Name, c.Slug).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_category")
}
