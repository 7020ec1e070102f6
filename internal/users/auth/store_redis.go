// Copyright (c) 2026 Plateful. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/platform/constants"
	"github.com/plateful/plateful/internal/platform/sec"
)

// RedisSessionStore implements [SessionStore] using Redis.
//
// Session references are naturally volatile data: they carry a TTL, are read
// on every session-mode request, and losing them only forces a re-login.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a new Redis-backed SessionStore.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

/*
Create stores a session reference with its associated userID and TTL.

Parameters:
  - context: context.Context
  - sessionID: string
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (store *RedisSessionStore) Create(context context.Context, sessionID, userID string, ttl time.Duration) error {

	// Only the digest of the session ID touches Redis; a leaked dump of the
	// store cannot be replayed as cookies.
	key := constants.RedisPrefixSession + sec.HashToken(sessionID)

	// Set the session reference with TTL
	if err := store.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_store_create_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Get retrieves the userID for a given session ID.

Description: Returns apperr.NotFound if the session is absent or expired.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - string: UserID
  - error: apperr.NotFound or connectivity errors
*/
func (store *RedisSessionStore) Get(context context.Context, sessionID string) (string, error) {

	key := constants.RedisPrefixSession + sec.HashToken(sessionID)

	// Get the session reference from Redis
	userID, err := store.client.Get(context, key).Result()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session")
		}
		return "", fmt.Errorf("redis_session_store_get_failed: %w", err)
	}

	// Return the userID
	return userID, nil
}

/*
Delete removes the session reference from Redis.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Deletion failures
*/
func (store *RedisSessionStore) Delete(context context.Context, sessionID string) error {

	key := constants.RedisPrefixSession + sec.HashToken(sessionID)

	// Delete the session reference from Redis
	if err := store.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_store_delete_failed: %w", err)
	}

	// Return nil on success
	return nil
}
