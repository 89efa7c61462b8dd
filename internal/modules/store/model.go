package store

import "time"

// Store is a retail location. ManagerID is 0 for stores without an owning
// manager; every manager-scoped operation requires a match on it.
type Store struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	ManagerID       int64     `json:"manager_id"`
	DateEstablished time.Time `json:"date_established"`
}

// NearbyStore pairs a store with its distance from the browsing user.
type NearbyStore struct {
	Store    *Store
	Distance float64
}
