package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandamulenga/retail-backend/internal/modules/identity"
)

type fakeStoreRepo struct {
	stores []*Store
}

func (f *fakeStoreRepo) ListAll(context.Context) ([]*Store, error) { return f.stores, nil }

func (f *fakeStoreRepo) GetByID(_ context.Context, id int64) (*Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrStoreNotFound
}

type fakeUserRepo struct {
	users map[int64]*identity.User
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

func (f *fakeUserRepo) HasRole(context.Context, int64, identity.Role) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) ManagedStoreID(context.Context, int64, int64) (int64, error) {
	return 0, nil
}

func TestListNearbyBoundaryExclusive(t *testing.T) {
	stores := &fakeStoreRepo{stores: []*Store{
		{ID: 1, Name: "Close", Latitude: 10, Longitude: 35}, // dist 25
		{ID: 2, Name: "Edge", Latitude: 10, Longitude: 40},  // dist 30, excluded
		{ID: 3, Name: "Far", Latitude: 10, Longitude: 40.1}, // dist 30.1, excluded
		{ID: 4, Name: "Here", Latitude: 10, Longitude: 10},  // dist 0
	}}
	users := &fakeUserRepo{users: map[int64]*identity.User{
		1: {ID: 1, Name: "Alice", Latitude: 10, Longitude: 10},
	}}
	svc := NewService(stores, users)

	nearby, err := svc.ListNearby(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, int64(1), nearby[0].Store.ID)
	assert.InDelta(t, 25.0, nearby[0].Distance, 1e-9)
	assert.Equal(t, int64(4), nearby[1].Store.ID)
	assert.Zero(t, nearby[1].Distance)
}

func TestListNearbyUnknownUser(t *testing.T) {
	svc := NewService(&fakeStoreRepo{}, &fakeUserRepo{users: map[int64]*identity.User{}})

	_, err := svc.ListNearby(context.Background(), 42)

	assert.ErrorIs(t, err, identity.ErrUserNotFound)
}

func TestListNearbyNoStores(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*identity.User{
		1: {ID: 1, Latitude: 50, Longitude: 50},
	}}
	svc := NewService(&fakeStoreRepo{}, users)

	nearby, err := svc.ListNearby(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, nearby)
}
