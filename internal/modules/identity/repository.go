package identity

import "context"

// Repository defines user and ownership data access.
type Repository interface {
	// CreateUser inserts the user and fills in its sequence-assigned ID.
	CreateUser(ctx context.Context, u *User) error

	// GetUserByID returns ErrUserNotFound when no such user exists.
	GetUserByID(ctx context.Context, id int64) (*User, error)

	// UsersByName returns every user with the given name. Names are not
	// unique; authentication disambiguates by password hash.
	UsersByName(ctx context.Context, name string) ([]*User, error)

	// HasRole reports whether the user exists with exactly the given role.
	HasRole(ctx context.Context, userID int64, role Role) (bool, error)

	// ManagedStoreID returns storeID when a store with that ID is managed by
	// the user, and 0 when no such row exists.
	ManagedStoreID(ctx context.Context, userID, storeID int64) (int64, error)
}
