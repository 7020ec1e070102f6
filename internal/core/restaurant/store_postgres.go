// Copyright (c) 2026 Plateful. All rights reserved.

package restaurant

import (
	"context"
	"fmt"
	"strconv"

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

// selectColumns is the shared projection for catalog reads.
func selectColumns() string {
	t := schema.CoreRestaurant
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Slug, t.Tel, t.Address, t.OpeningHours,
		t.Description, t.ImageURL, t.CategoryID, t.CreatedAt, t.UpdatedAt)
}

func scanRestaurant(row interface{ Scan(...any) error }) (*Restaurant, error) {
	r := &Restaurant{}
	err := row.Scan(
		&r.ID, &r.Name, &r.Slug, &r.Tel, &r.Address, &r.OpeningHours,
		&r.Description, &r.ImageURL, &r.CategoryID, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (repository *PostgresRepository) ListRestaurants(context context.Context, f Filter, limit, offset int) ([]*Restaurant, int, error) {
	t := schema.CoreRestaurant
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE true`, selectColumns(), t.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE true`, t.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` AND (%s ILIKE $%d OR %s ILIKE $%d)`,
			t.Name, len(args)+1, t.Address, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.CategoryID != "" {
		clause := fmt.Sprintf(` AND %s = $%d`, t.CategoryID, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.CategoryID)
		countArgs = append(countArgs, f.CategoryID)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", t.Name) + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_restaurants")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_restaurants")
	}
	defer rows.Close()

	var restaurants []*Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_restaurant")
		}
		restaurants = append(restaurants, r)
	}

	return restaurants, total, nil
}

func (repository *PostgresRepository) GetRestaurant(context context.Context, id string) (*Restaurant, error) {
	t := schema.CoreRestaurant
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(), t.Table, t.ID)

	r, err := scanRestaurant(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_restaurant")
	}
	return r, nil
}

func (repository *PostgresRepository) GetRestaurantBySlug(context context.Context, slug string) (*Restaurant, error) {
	t := schema.CoreRestaurant
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(), t.Table, t.Slug)

	r, err := scanRestaurant(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_restaurant_by_slug")
	}
	return r, nil
}

func (repository *PostgresRepository) CreateRestaurant(context context.Context, r *Restaurant) error {
	t := schema.CoreRestaurant
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Name, t.Slug, t.Tel, t.Address, t.OpeningHours,
		t.Description, t.ImageURL, t.CategoryID, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		r.ID, r.Name, r.Slug, r.Tel, r.Address, r.OpeningHours,
		r.Description, r.ImageURL, r.CategoryID,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
	return dberr.Wrap(err, "create_restaurant")
}

func (repository *PostgresRepository) UpdateRestaurant(context context.Context, r *Restaurant) error {
	t := schema.CoreRestaurant
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.Slug, t.Tel, t.Address, t.OpeningHours,
		t.Description, t.ImageURL, t.CategoryID, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		r.ID, r.Name, r.Slug, r.Tel, r.Address, r.OpeningHours,
		r.Description, r.ImageURL, r.CategoryID,
	).Scan(&r.UpdatedAt)
	return dberr.Wrap(err, "update_restaurant")
}

func (repository *PostgresRepository) DeleteRestaurant(context context.Context, id string) error {
	t := schema.CoreRestaurant
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	// Edge rows in social.favorite and social.like go with the restaurant
	// via ON DELETE CASCADE.
	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_restaurant")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	t := schema.CoreRestaurant
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, t.Table, t.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "restaurant_exists")
	}
	return exists, nil
}
