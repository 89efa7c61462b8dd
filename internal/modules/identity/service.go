package identity

import (
	"context"
	"errors"
)

// Sentinel results. Authorization aborts are ordinary values checked with
// errors.Is at the shell boundary; they stop one operation, never the session.
var (
	// ErrInvalidCredentials is a failed login: no user matched both name and
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound means the user ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotAuthorized means the actor is neither an admin nor a manager.
	ErrNotAuthorized = errors.New("user is not an admin or manager")

	// ErrNoManagedStore means the manager does not own the requested store.
	ErrNoManagedStore = errors.New("user does not manage that store")
)

// Service defines registration and authentication logic.
type Service interface {
	// Register creates a customer account. Coordinates must be in [0,100].
	Register(ctx context.Context, name, password string, latitude, longitude float64) (*User, error)

	// Authenticate returns the user matching both name and password, or
	// ErrInvalidCredentials. Duplicate names are not disambiguated: the first
	// account whose password matches wins.
	Authenticate(ctx context.Context, name, password string) (*User, error)

	// Login authenticates and issues a signed session token for the user.
	Login(ctx context.Context, name, password string) (string, error)

	// Subject verifies a session token and returns the user ID it carries.
	Subject(token string) (int64, error)
}
