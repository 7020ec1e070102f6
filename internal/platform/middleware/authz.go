// Copyright (c) 2026 Plateful. All rights reserved.

package middleware

import (
	"net/http"

	"github.com/plateful/plateful/internal/platform/apperr"
	"github.com/plateful/plateful/internal/platform/respond"
	"github.com/plateful/plateful/internal/platform/sec"
	"github.com/plateful/plateful/internal/users/identity"
)

// Verifier resolves one credential mode of an incoming request.
//
// # Why an interface?
//
// Defining Verifier here decouples the middleware from the auth package's
// implementations (session cookie, bearer token) and lets tests inject
// stubs without real stores.
type Verifier interface {
	Verify(request *http.Request) (*identity.Viewer, error)
}

// Authenticate resolves the request identity through an ordered verifier chain.
//
// # Flow
//  1. Each verifier inspects its own credential carrier.
//  2. (nil, nil) means "no such credential present": try the next verifier.
//  3. An error means the credential was present but invalid: abort with 401.
//  4. A viewer is injected into the context; remaining verifiers are skipped.
//  5. If no verifier claims the request, it proceeds as anonymous.
//
// # Parameters
//   - verifiers: Ordered mode resolvers (session first, then token).
//
// # Returns
//   - An [http.Handler] middleware.
func Authenticate(verifiers ...Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			for _, verifier := range verifiers {
				viewer, err := verifier.Verify(request)
				if err != nil {
					respond.Error(writer, request, err)
					return
				}
				if viewer == nil {
					continue
				}

				ctx := identity.NewContext(request.Context(), viewer)
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			// Anonymous access
			next.ServeHTTP(writer, request)
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if a [*identity.Viewer] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		viewer := identity.FromContext(request.Context())
		if viewer == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests if the authenticated user doesn't have the required role.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically implies
// [RequireAuth] so you don't need to mount both.
//
// # Flow
//  1. Check if a [*identity.Viewer] exists in context (implies AuthN).
//  2. Check if the viewer's role meets or exceeds the required target role.
//  3. If insufficient, abort with HTTP 403 Forbidden.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			viewer := identity.FromContext(request.Context())

			// 1. Authentication check
			if viewer == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// 2. Authorization check
			if !viewer.Role.AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
