package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations
type UnitOfWork interface {
	// Do runs fn in one transaction. Repositories called with the ctx passed to fn join it,
	// and any error returned by fn rolls the whole transaction back.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// WithLock marks ctx so that single-row reads inside Do take a row lock (SELECT ... FOR UPDATE).
	WithLock(ctx context.Context) context.Context
}
