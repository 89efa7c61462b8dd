package product

import (
	"context"
	"fmt"

	"github.com/chandamulenga/retail-backend/internal/modules/identity"
)

// recentLimit caps every recent-updates listing.
const recentLimit = 5

// Service defines product management logic.
type Service interface {
	// ListProducts returns every product stocked at a store.
	ListProducts(ctx context.Context, storeID int64) ([]*Product, error)

	// UpdateProduct resolves the actor's scope, updates the product row,
	// appends an audit row, and returns the store's refreshed product list.
	// Aborts with identity.ErrNotAuthorized or identity.ErrNoManagedStore
	// before any mutation.
	UpdateProduct(ctx context.Context, actorID, storeID int64, name string, units int, price float64) ([]*Product, error)

	// RecentUpdates returns the actor's recent-update view: managers see
	// their own stores, admins see every store.
	RecentUpdates(ctx context.Context, actorID int64) ([]*Update, error)

	// SubmitSupplyRequest files a warehouse request. The product must exist
	// at the resolved store.
	SubmitSupplyRequest(ctx context.Context, actorID, storeID, warehouseID int64, name string, units int) (*SupplyRequest, error)
}

type service struct {
	repo     Repository
	resolver *identity.Resolver
}

// NewService creates a new product service.
func NewService(repo Repository, resolver *identity.Resolver) Service {
	return &service{repo: repo, resolver: resolver}
}

func (s *service) ListProducts(ctx context.Context, storeID int64) ([]*Product, error) {
	return s.repo.ListByStore(ctx, storeID)
}

func (s *service) UpdateProduct(ctx context.Context, actorID, storeID int64, name string, units int, price float64) ([]*Product, error) {
	scope, err := s.resolver.ResolveScope(ctx, actorID, storeID)
	if err != nil {
		return nil, err
	}
	if scope.Kind == identity.KindUnauthorized {
		return nil, identity.ErrNotAuthorized
	}
	if !scope.Authorized() {
		return nil, identity.ErrNoManagedStore
	}
	if units < 0 {
		return nil, fmt.Errorf("number of units must not be negative")
	}
	if price < 0 {
		return nil, fmt.Errorf("price per unit must not be negative")
	}

	if err := s.repo.UpdateProduct(ctx, scope.StoreID, name, units, price); err != nil {
		return nil, err
	}
	if _, err := s.repo.RecordUpdate(ctx, actorID, scope.StoreID, name); err != nil {
		return nil, err
	}
	return s.repo.ListByStore(ctx, scope.StoreID)
}

func (s *service) RecentUpdates(ctx context.Context, actorID int64) ([]*Update, error) {
	res, err := s.resolver.ResolveRole(ctx, actorID)
	if err != nil {
		return nil, err
	}
	switch res.Kind {
	case identity.KindAdmin:
		// Admins own no store; they see updates across all stores.
		return s.repo.RecentUpdatesAll(ctx, recentLimit)
	case identity.KindManager:
		return s.repo.RecentUpdatesForManager(ctx, actorID, recentLimit)
	default:
		return nil, identity.ErrNotAuthorized
	}
}

func (s *service) SubmitSupplyRequest(ctx context.Context, actorID, storeID, warehouseID int64, name string, units int) (*SupplyRequest, error) {
	scope, err := s.resolver.ResolveScope(ctx, actorID, storeID)
	if err != nil {
		return nil, err
	}
	if scope.Kind == identity.KindUnauthorized {
		return nil, identity.ErrNotAuthorized
	}
	if !scope.Authorized() {
		return nil, identity.ErrNoManagedStore
	}
	if units <= 0 {
		return nil, fmt.Errorf("units requested must be positive")
	}

	// The product must be stocked at the resolved store, not just anywhere.
	if _, err := s.repo.Get(ctx, scope.StoreID, name); err != nil {
		return nil, err
	}

	req := &SupplyRequest{
		ManagerID:      actorID,
		WarehouseID:    warehouseID,
		StoreID:        scope.StoreID,
		ProductName:    name,
		UnitsRequested: units,
	}
	if err := s.repo.CreateSupplyRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
