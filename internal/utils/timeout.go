package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds the CRUD queries (users, stores).
// CatalogQueryTimeout is tighter: the filter endpoint sits behind the public
// storefront and the chatbot, so a slow catalog read surfaces as an error
// instead of a hanging request.
const (
	DefaultDBTimeout    = 5 * time.Second
	CatalogQueryTimeout = 3 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

func WithCatalogTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, CatalogQueryTimeout)
}
