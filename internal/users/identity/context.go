// Copyright (c) 2026 Plateful. All rights reserved.

package identity

import (
	"context"

	"github.com/plateful/plateful/internal/platform/ctxkey"
)

// # Request Context

// NewContext returns a new context with the resolved viewer attached.
func NewContext(ctx context.Context, viewer *Viewer) context.Context {
	return context.WithValue(ctx, ctxkey.KeyViewer, viewer)
}

// FromContext retrieves the resolved [*Viewer] from the context.
// It returns nil for anonymous requests.
func FromContext(ctx context.Context) *Viewer {
	viewer, ok := ctx.Value(ctxkey.KeyViewer).(*Viewer)
	if !ok {
		return nil
	}
	return viewer
}
