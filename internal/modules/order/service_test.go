package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandamulenga/retail-backend/internal/modules/identity"
	"github.com/chandamulenga/retail-backend/internal/modules/product"
	"github.com/chandamulenga/retail-backend/internal/modules/store"
)

// storedOrderTime stands in for the timestamp the database writes on insert.
var storedOrderTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeOrderRepo struct {
	created []*Order
	recent  []*RecentOrder

	recentLimitSeen int
}

func (f *fakeOrderRepo) Create(_ context.Context, o *Order) error {
	o.OrderNumber = int64(len(f.created) + 1)
	o.OrderTime = storedOrderTime
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) RecentByCustomer(_ context.Context, _ int64, limit int) ([]*RecentOrder, error) {
	f.recentLimitSeen = limit
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeOrderRepo) PopularProducts(_ context.Context, _ int64, limit int) ([]*ProductRank, error) {
	return []*ProductRank{{ProductName: "Milk", Orders: 3}}, nil
}

func (f *fakeOrderRepo) PopularCustomers(_ context.Context, _ int64, limit int) ([]*CustomerRank, error) {
	return []*CustomerRank{{CustomerID: 1, Name: "Alice", Orders: 3}}, nil
}

type fakeStoreRepo struct {
	stores map[int64]*store.Store
}

func (f *fakeStoreRepo) ListAll(context.Context) ([]*store.Store, error) { return nil, nil }

func (f *fakeStoreRepo) GetByID(_ context.Context, id int64) (*store.Store, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, store.ErrStoreNotFound
	}
	return s, nil
}

type fakeProductRepo struct {
	products map[int64]map[string]*product.Product
}

func (f *fakeProductRepo) Get(_ context.Context, storeID int64, name string) (*product.Product, error) {
	p, ok := f.products[storeID][name]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) ListByStore(context.Context, int64) ([]*product.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) UpdateProduct(context.Context, int64, string, int, float64) error {
	return nil
}

func (f *fakeProductRepo) RecordUpdate(context.Context, int64, int64, string) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepo) RecentUpdatesForManager(context.Context, int64, int) ([]*product.Update, error) {
	return nil, nil
}

func (f *fakeProductRepo) RecentUpdatesAll(context.Context, int) ([]*product.Update, error) {
	return nil, nil
}

func (f *fakeProductRepo) CreateSupplyRequest(context.Context, *product.SupplyRequest) error {
	return nil
}

type fakeUserRepo struct {
	users   map[int64]*identity.User
	managed map[int64]int64
}

func (f *fakeUserRepo) CreateUser(context.Context, *identity.User) error { return nil }

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*identity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UsersByName(context.Context, string) ([]*identity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) HasRole(_ context.Context, userID int64, role identity.Role) (bool, error) {
	u, ok := f.users[userID]
	return ok && u.Role == role, nil
}

func (f *fakeUserRepo) ManagedStoreID(_ context.Context, userID, storeID int64) (int64, error) {
	if f.managed[storeID] == userID {
		return storeID, nil
	}
	return 0, nil
}

// fixture: customer 1 at (10,10), manager 2 owning store 7 at (10,12),
// admin 3; store 7 stocks 3 units of Milk.
func newFixture() (*fakeOrderRepo, Service) {
	orders := &fakeOrderRepo{}
	stores := &fakeStoreRepo{stores: map[int64]*store.Store{
		7: {ID: 7, Name: "Main St", Latitude: 10, Longitude: 12, ManagerID: 2},
	}}
	products := &fakeProductRepo{products: map[int64]map[string]*product.Product{
		7: {"Milk": {StoreID: 7, Name: "Milk", Units: 3, Price: 2.5}},
	}}
	users := &fakeUserRepo{
		users: map[int64]*identity.User{
			1: {ID: 1, Name: "Alice", Latitude: 10, Longitude: 10, Role: identity.RoleCustomer},
			2: {ID: 2, Name: "Mike", Latitude: 10, Longitude: 10, Role: identity.RoleManager},
			3: {ID: 3, Name: "Ada", Latitude: 10, Longitude: 10, Role: identity.RoleAdmin},
		},
		managed: map[int64]int64{7: 2},
	}
	svc := NewService(orders, stores, products, users, identity.NewResolver(users))
	return orders, svc
}

func TestPlaceRejectsInsufficientStock(t *testing.T) {
	orders, svc := newFixture()

	_, err := svc.Place(context.Background(), 1, 7, "Milk", 5)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Empty(t, orders.created, "no order row on rejection")
}

func TestPlaceAcceptsWithinStock(t *testing.T) {
	orders, svc := newFixture()

	o, err := svc.Place(context.Background(), 1, 7, "Milk", 2)

	require.NoError(t, err)
	require.Len(t, orders.created, 1)
	assert.Equal(t, int64(1), o.OrderNumber)
	assert.Equal(t, int64(1), o.CustomerID)
	assert.Equal(t, int64(7), o.StoreID)
	assert.Equal(t, 2, o.UnitsOrdered)
}

func TestPlaceReturnsStoredOrderTime(t *testing.T) {
	_, svc := newFixture()

	o, err := svc.Place(context.Background(), 1, 7, "Milk", 1)

	require.NoError(t, err)
	assert.True(t, o.OrderTime.Equal(storedOrderTime),
		"order time comes from the stored row, not the caller's clock")
}

func TestPlaceExactStockBoundary(t *testing.T) {
	orders, svc := newFixture()

	_, err := svc.Place(context.Background(), 1, 7, "Milk", 3)

	require.NoError(t, err, "units == stock is allowed")
	assert.Len(t, orders.created, 1)
}

func TestPlaceUnknownStore(t *testing.T) {
	orders, svc := newFixture()

	_, err := svc.Place(context.Background(), 1, 99, "Milk", 1)

	assert.ErrorIs(t, err, store.ErrStoreNotFound)
	assert.Empty(t, orders.created)
}

func TestPlaceUnknownProduct(t *testing.T) {
	orders, svc := newFixture()

	_, err := svc.Place(context.Background(), 1, 7, "Caviar", 1)

	assert.ErrorIs(t, err, product.ErrProductNotFound)
	assert.Empty(t, orders.created)
}

func TestPlaceStoreTooFar(t *testing.T) {
	orders := &fakeOrderRepo{}
	stores := &fakeStoreRepo{stores: map[int64]*store.Store{
		7: {ID: 7, Name: "Remote", Latitude: 10, Longitude: 40.1},
	}}
	products := &fakeProductRepo{products: map[int64]map[string]*product.Product{
		7: {"Milk": {StoreID: 7, Name: "Milk", Units: 3, Price: 2.5}},
	}}
	users := &fakeUserRepo{users: map[int64]*identity.User{
		1: {ID: 1, Latitude: 10, Longitude: 10, Role: identity.RoleCustomer},
	}}
	svc := NewService(orders, stores, products, users, identity.NewResolver(users))

	// Distance is 30.1, outside the exclusive 30-unit radius.
	_, err := svc.Place(context.Background(), 1, 7, "Milk", 1)

	assert.ErrorIs(t, err, ErrStoreTooFar)
	assert.Empty(t, orders.created)
}

func TestPlaceNonPositiveUnits(t *testing.T) {
	orders, svc := newFixture()

	_, err := svc.Place(context.Background(), 1, 7, "Milk", 0)
	assert.ErrorIs(t, err, ErrInvalidUnits)

	_, err = svc.Place(context.Background(), 1, 7, "Milk", -2)
	assert.ErrorIs(t, err, ErrInvalidUnits)

	assert.Empty(t, orders.created)
}

func TestRecentCapsAtFive(t *testing.T) {
	orders, svc := newFixture()
	for i := 0; i < 7; i++ {
		orders.recent = append(orders.recent, &RecentOrder{StoreID: 7, StoreName: "Main St"})
	}

	got, err := svc.Recent(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.Equal(t, 5, orders.recentLimitSeen)
}

func TestRecentWithFewOrders(t *testing.T) {
	orders, svc := newFixture()
	orders.recent = []*RecentOrder{{StoreID: 7}, {StoreID: 7}}

	got, err := svc.Recent(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecentWithNoOrders(t *testing.T) {
	_, svc := newFixture()

	got, err := svc.Recent(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPopularReportsAuthorization(t *testing.T) {
	_, svc := newFixture()
	ctx := context.Background()

	_, err := svc.PopularProducts(ctx, 1, 7)
	assert.ErrorIs(t, err, identity.ErrNotAuthorized, "customer denied")

	_, err = svc.PopularProducts(ctx, 2, 9)
	assert.ErrorIs(t, err, identity.ErrNoManagedStore, "manager scoped to own store")

	ranks, err := svc.PopularProducts(ctx, 2, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, ranks)

	ranks, err = svc.PopularProducts(ctx, 3, 9)
	require.NoError(t, err, "admin bypasses ownership")
	assert.NotEmpty(t, ranks)
}

func TestPopularCustomersAuthorization(t *testing.T) {
	_, svc := newFixture()
	ctx := context.Background()

	_, err := svc.PopularCustomers(ctx, 1, 7)
	assert.ErrorIs(t, err, identity.ErrNotAuthorized)

	ranks, err := svc.PopularCustomers(ctx, 2, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, ranks)
}
