// Copyright (c) 2026 Plateful. All rights reserved.

package identity

import "context"

// # Identity Data Access

// Repository defines the data access contract for user accounts and their
// relation sets.
type Repository interface {

	/*
		FindByID returns the account with the given ID as a [Viewer], with the
		requested relation sets eagerly attached.

		Parameters:
		  - context: context.Context
		  - id: string
		  - include: Relations (which sets to load)

		Returns:
		  - *Viewer: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string, include Relations) (*Viewer, error)

	/*
		FindByEmail returns the bare account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures (Conflict on duplicate email)
	*/
	Create(context context.Context, user *User) error

	/*
		Update persists changes to mutable profile fields.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, user *User) error

	/*
		Exists reports whether a live (non-deleted) account with the given ID
		is present. Cheaper than FindByID when only presence matters, such as
		validating a follow target.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - bool: true when the account exists
		  - error: Database retrieval failures
	*/
	Exists(context context.Context, id string) (bool, error)

	/*
		UpdatePassword replaces only the user's password hash.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(context context.Context, userID, newHash string) error
}
