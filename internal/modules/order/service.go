package order

import (
	"context"
	"errors"

	"github.com/chandamulenga/retail-backend/internal/modules/identity"
	"github.com/chandamulenga/retail-backend/internal/modules/product"
	"github.com/chandamulenga/retail-backend/internal/modules/store"
)

// recentLimit caps the recent-orders listing; rankLimit caps the popularity
// reports.
const (
	recentLimit = 5
	rankLimit   = 5
)

// Domain rejections for order placement. All abort one menu action only.
var (
	ErrInvalidUnits      = errors.New("number of units must be positive")
	ErrStoreTooFar       = errors.New("store is not within delivery range")
	ErrInsufficientStock = errors.New("not enough stock of item")
)

// Service defines order placement and sales analytics logic.
type Service interface {
	// Place validates store, distance, and stock, then records the order.
	// Stock is compared against the product's unit count; stock itself only
	// mutates through product updates, never here.
	Place(ctx context.Context, customerID, storeID int64, productName string, units int) (*Order, error)

	// Recent returns the customer's 5 most recent orders, newest first.
	// Works with any number of existing orders, including zero.
	Recent(ctx context.Context, customerID int64) ([]*RecentOrder, error)

	// PopularProducts returns a store's top 5 products by order count.
	// Manager/admin only.
	PopularProducts(ctx context.Context, actorID, storeID int64) ([]*ProductRank, error)

	// PopularCustomers returns a store's top 5 customers by order count.
	// Manager/admin only.
	PopularCustomers(ctx context.Context, actorID, storeID int64) ([]*CustomerRank, error)
}

type service struct {
	repo     Repository
	stores   store.Repository
	products product.Repository
	users    identity.Repository
	resolver *identity.Resolver
}

// NewService creates a new order service.
func NewService(repo Repository, stores store.Repository, products product.Repository,
	users identity.Repository, resolver *identity.Resolver) Service {
	return &service{repo: repo, stores: stores, products: products, users: users, resolver: resolver}
}

func (s *service) Place(ctx context.Context, customerID, storeID int64, productName string, units int) (*Order, error) {
	if units <= 0 {
		return nil, ErrInvalidUnits
	}

	st, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetUserByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if store.Distance(u.Latitude, u.Longitude, st.Latitude, st.Longitude) >= store.NearbyRadius {
		return nil, ErrStoreTooFar
	}

	p, err := s.products.Get(ctx, storeID, productName)
	if err != nil {
		return nil, err
	}
	if units > p.Units {
		return nil, ErrInsufficientStock
	}

	o := &Order{
		CustomerID:   customerID,
		StoreID:      storeID,
		ProductName:  productName,
		UnitsOrdered: units,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Recent(ctx context.Context, customerID int64) ([]*RecentOrder, error) {
	return s.repo.RecentByCustomer(ctx, customerID, recentLimit)
}

func (s *service) PopularProducts(ctx context.Context, actorID, storeID int64) ([]*ProductRank, error) {
	if err := s.authorize(ctx, actorID, storeID); err != nil {
		return nil, err
	}
	return s.repo.PopularProducts(ctx, storeID, rankLimit)
}

func (s *service) PopularCustomers(ctx context.Context, actorID, storeID int64) ([]*CustomerRank, error) {
	if err := s.authorize(ctx, actorID, storeID); err != nil {
		return nil, err
	}
	return s.repo.PopularCustomers(ctx, storeID, rankLimit)
}

func (s *service) authorize(ctx context.Context, actorID, storeID int64) error {
	scope, err := s.resolver.ResolveScope(ctx, actorID, storeID)
	if err != nil {
		return err
	}
	if scope.Kind == identity.KindUnauthorized {
		return identity.ErrNotAuthorized
	}
	if !scope.Authorized() {
		return identity.ErrNoManagedStore
	}
	return nil
}
