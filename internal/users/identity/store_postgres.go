// Copyright (c) 2026 Plateful. All rights reserved.

package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/platform/database/schema"
	"github.com/plateful/plateful/internal/platform/dberr"
)

// # Postgres Repository

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new user record into the users.account table.

Description: Deep-persists account metadata, ensuring timestamps are initialized
if not provided. A duplicate email surfaces as a client-safe Conflict.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate email, or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, email, passwordhash, displayname, avatarurl, role, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.AvatarURL,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Email is already registered")
		}
		return fmt.Errorf("postgres_identity_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Description: Performs a lookup on the account table, filtering out soft-deleted users.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, email, passwordhash, displayname, avatarurl, role, createdat, updatedat
		FROM users.account
		WHERE email = $1 AND deletedat IS NULL`

	user := &User{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.AvatarURL,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_identity_repo_find_by_email_failed: %w", err)
	}

	return user, nil
}

/*
FindByID retrieves a user record by ID, attaching the requested relation sets.

Description: Primary key resolution for user accounts. Relation sets are read
fresh on every call; nothing is cached between requests, so the returned
viewer always reflects the latest committed edges.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)
  - include: Relations

Returns:
  - *Viewer: Hydrated viewer with requested relation sets
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string, include Relations) (*Viewer, error) {
	const query = `
		SELECT id, email, passwordhash, displayname, avatarurl, role, createdat, updatedat
		FROM users.account
		WHERE id = $1 AND deletedat IS NULL`

	viewer := &Viewer{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&viewer.ID,
		&viewer.Email,
		&viewer.PasswordHash,
		&viewer.DisplayName,
		&viewer.AvatarURL,
		&viewer.Role,
		&viewer.CreatedAt,
		&viewer.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_identity_repo_find_by_id_failed: %w", err)
	}

	// Non-nil empty sets keep the JSON shape stable for relation kinds that
	// were not requested.
	viewer.Relations = RelationSets{
		FavoriteRestaurantIDs: []string{},
		LikedRestaurantIDs:    []string{},
		FollowingIDs:          []string{},
		FollowerIDs:           []string{},
	}

	if include.Has(RelFavorites) {
		viewer.Relations.FavoriteRestaurantIDs, err = repository.edgeTargets(context,
			schema.SocialFavorite.Table, schema.SocialFavorite.RestaurantID, schema.SocialFavorite.UserID, id)
		if err != nil {
			return nil, err
		}
	}

	if include.Has(RelLikes) {
		viewer.Relations.LikedRestaurantIDs, err = repository.edgeTargets(context,
			schema.SocialLike.Table, schema.SocialLike.RestaurantID, schema.SocialLike.UserID, id)
		if err != nil {
			return nil, err
		}
	}

	if include.Has(RelFollowing) {
		viewer.Relations.FollowingIDs, err = repository.edgeTargets(context,
			schema.SocialFollow.Table, schema.SocialFollow.FollowingID, schema.SocialFollow.FollowerID, id)
		if err != nil {
			return nil, err
		}
	}

	if include.Has(RelFollowers) {
		viewer.Relations.FollowerIDs, err = repository.edgeTargets(context,
			schema.SocialFollow.Table, schema.SocialFollow.FollowerID, schema.SocialFollow.FollowingID, id)
		if err != nil {
			return nil, err
		}
	}

	return viewer, nil
}

// edgeTargets returns the IDs on the far side of an edge table for one user.
func (repository *PostgresRepository) edgeTargets(context context.Context, table, selectColumn, whereColumn, id string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY createdat ASC`,
		selectColumn, table, whereColumn)

	rows, err := repository.pool.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "load_relation_set")
	}
	defer rows.Close()

	targets := make([]string, 0)
	for rows.Next() {
		var target string
		if err := rows.Scan(&target); err != nil {
			return nil, dberr.Wrap(err, "scan_relation_target")
		}
		targets = append(targets, target)
	}

	return targets, rows.Err()
}

/*
Exists reports whether a live account with the given ID is present.

Description: Presence-only check used when hydrating the full account would be
wasted work, for example validating the target of a follow edge.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - bool: true when a non-deleted account with the ID exists
  - error: Execution errors
*/
func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users.account WHERE id = $1 AND deletedat IS NULL
		)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_identity_repo_exists_failed: %w", err)
	}

	return exists, nil
}

/*
Update persists changes to a user's mutable profile fields.

Description: Synchronizes the in-memory user state with the database,
refreshing the updatedat timestamp.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: Update failures
*/
func (repository *PostgresRepository) Update(context context.Context, user *User) error {
	const query = `
		UPDATE users.account
		SET displayname = $2, avatarurl = $3, updatedat = $4
		WHERE id = $1 AND deletedat IS NULL`

	user.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.DisplayName,
		user.AvatarURL,
		user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_identity_repo_update_failed: %w", err)
	}

	return nil
}

/*
UpdatePassword updates only the password hash for a specific user.

Parameters:
  - context: context.Context
  - userID: string
  - newHash: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	const query = `
		UPDATE users.account
		SET passwordhash = $2, updatedat = $3
		WHERE id = $1 AND deletedat IS NULL`

	_, err := repository.pool.Exec(context, query, userID, newHash, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_identity_repo_update_password_failed: %w", err)
	}

	return nil
}
