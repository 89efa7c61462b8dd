package product

import (
	"context"
	"errors"
)

// ErrProductNotFound means no product row exists for (storeID, productName).
var ErrProductNotFound = errors.New("product not found at store")

// Repository defines product, audit, and supply-request data access.
type Repository interface {
	// ListByStore returns every product stocked at a store.
	ListByStore(ctx context.Context, storeID int64) ([]*Product, error)

	// Get returns ErrProductNotFound when the store does not stock the
	// product.
	Get(ctx context.Context, storeID int64, name string) (*Product, error)

	// UpdateProduct sets units and price for one (storeID, name) row.
	// Returns ErrProductNotFound when no row matched.
	UpdateProduct(ctx context.Context, storeID int64, name string, units int, price float64) error

	// RecordUpdate appends an audit row and returns its update number.
	RecordUpdate(ctx context.Context, managerID, storeID int64, name string) (int64, error)

	// RecentUpdatesForManager returns the latest updates across stores the
	// manager owns, newest first.
	RecentUpdatesForManager(ctx context.Context, managerID int64, limit int) ([]*Update, error)

	// RecentUpdatesAll returns the latest updates across every store, newest
	// first. Admin path.
	RecentUpdatesAll(ctx context.Context, limit int) ([]*Update, error)

	// CreateSupplyRequest appends a request row and fills in its
	// sequence-assigned request number.
	CreateSupplyRequest(ctx context.Context, req *SupplyRequest) error
}
