// Copyright (c) 2026 Plateful. All rights reserved.

package social

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/platform/database/schema"
	"github.com/plateful/plateful/internal/platform/dberr"
)

// # Postgres Repository

// PostgresRepository implements the [Repository] interface using pgx.
//
// Every edge table carries a PRIMARY KEY on (source, target) and foreign keys
// with ON DELETE CASCADE, so deleting a user or restaurant removes its edges
// without application-level cleanup.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
AddEdge inserts one directed edge row.

Description: The insert relies on table constraints for correctness under
concurrency: a duplicate tuple violates the composite primary key (Conflict)
and a vanished target violates the foreign key (NotFound).

Parameters:
  - context: context.Context
  - kind: EdgeKind
  - sourceID: string
  - targetID: string

Returns:
  - error: apperr.Conflict, apperr.NotFound, or execution errors
*/
func (repository *PostgresRepository) AddEdge(context context.Context, kind EdgeKind, sourceID, targetID string) error {
	table := tableFor(kind)
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, createdat) VALUES ($1, $2, $3)`,
		table.table, table.sourceColumn, table.targetColumn)

	_, err := repository.pool.Exec(context, query, sourceID, targetID, time.Now())

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Relationship already exists")
		}
		if dberr.IsForeignKeyViolation(err) {
			return apperr.NotFound(kind.TargetResource())
		}
		return fmt.Errorf("postgres_social_repo_add_edge_failed: %w", err)
	}

	return nil
}

/*
RemoveEdge deletes one directed edge row.

Parameters:
  - context: context.Context
  - kind: EdgeKind
  - sourceID: string
  - targetID: string

Returns:
  - bool: Whether a row was deleted (false when the edge was absent)
  - error: Execution errors
*/
func (repository *PostgresRepository) RemoveEdge(context context.Context, kind EdgeKind, sourceID, targetID string) (bool, error) {
	table := tableFor(kind)
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		table.table, table.sourceColumn, table.targetColumn)

	tag, err := repository.pool.Exec(context, query, sourceID, targetID)
	if err != nil {
		return false, fmt.Errorf("postgres_social_repo_remove_edge_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

/*
EdgeExists reports whether a directed edge row is present.

Parameters:
  - context: context.Context
  - kind: EdgeKind
  - sourceID: string
  - targetID: string

Returns:
  - bool: Presence of the edge
  - error: Execution errors
*/
func (repository *PostgresRepository) EdgeExists(context context.Context, kind EdgeKind, sourceID, targetID string) (bool, error) {
	table := tableFor(kind)
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		table.table, table.sourceColumn, table.targetColumn)

	var exists bool
	if err := repository.pool.QueryRow(context, query, sourceID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_social_repo_edge_exists_failed: %w", err)
	}

	return exists, nil
}

/*
FollowerLeaders returns the follower-count leaderboard.

Description: LEFT JOIN keeps zero-follower accounts on the board. Ordering is
follower count descending with the time-sortable account ID ascending as the
deterministic tie-break (earlier accounts rank first on equal counts).

Parameters:
  - context: context.Context
  - limit: int

Returns:
  - []RankedUser: Leaderboard rows, IsFollowed unset
  - error: Execution errors
*/
func (repository *PostgresRepository) FollowerLeaders(context context.Context, limit int) ([]RankedUser, error) {
	query := fmt.Sprintf(`
		SELECT a.id, a.displayname, a.avatarurl, COUNT(f.%s) AS followercount
		FROM users.account a
		LEFT JOIN %s f ON f.%s = a.id
		WHERE a.deletedat IS NULL
		GROUP BY a.id, a.displayname, a.avatarurl
		ORDER BY followercount DESC, a.id ASC
		LIMIT $1`,
		schema.SocialFollow.FollowerID,
		schema.SocialFollow.Table,
		schema.SocialFollow.FollowingID,
	)

	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres_social_repo_follower_leaders_failed: %w", err)
	}
	defer rows.Close()

	leaders := make([]RankedUser, 0, limit)
	for rows.Next() {
		var ranked RankedUser
		if err := rows.Scan(&ranked.ID, &ranked.DisplayName, &ranked.AvatarURL, &ranked.FollowerCount); err != nil {
			return nil, fmt.Errorf("postgres_social_repo_scan_leader_failed: %w", err)
		}
		leaders = append(leaders, ranked)
	}

	return leaders, rows.Err()
}
