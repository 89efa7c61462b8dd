package store

import (
	"context"
	"errors"
)

// ErrStoreNotFound means the store ID does not exist.
var ErrStoreNotFound = errors.New("store not found")

// Repository defines store data access.
type Repository interface {
	// ListAll returns every store.
	ListAll(ctx context.Context) ([]*Store, error)

	// GetByID returns ErrStoreNotFound when no such store exists.
	GetByID(ctx context.Context, id int64) (*Store, error)
}
