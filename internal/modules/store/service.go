package store

import (
	"context"

	"github.com/chandamulenga/retail-backend/internal/modules/identity"
)

// Service defines store browsing logic.
type Service interface {
	// ListNearby returns every store strictly closer than NearbyRadius to the
	// user's location, with distances. The boundary is exclusive: a store at
	// exactly 30 units away is not nearby.
	ListNearby(ctx context.Context, userID int64) ([]*NearbyStore, error)
}

type service struct {
	stores Repository
	users  identity.Repository
}

// NewService creates a new store service.
func NewService(stores Repository, users identity.Repository) Service {
	return &service{stores: stores, users: users}
}

func (s *service) ListNearby(ctx context.Context, userID int64) ([]*NearbyStore, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	all, err := s.stores.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var nearby []*NearbyStore
	for _, st := range all {
		d := Distance(u.Latitude, u.Longitude, st.Latitude, st.Longitude)
		if d < NearbyRadius {
			nearby = append(nearby, &NearbyStore{Store: st, Distance: d})
		}
	}
	return nearby, nil
}
