package identity

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chandamulenga/retail-backend/internal/modules/gateway"
)

type postgresRepository struct {
	db *gateway.DB
}

// NewPostgresRepository creates a new PostgreSQL identity repository.
func NewPostgresRepository(db *gateway.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	err := r.db.Exec(ctx, `
		INSERT INTO Users (name, password, latitude, longitude, type)
		VALUES ($1, $2, $3, $4, $5)`,
		u.Name, u.PasswordHash, u.Latitude, u.Longitude, string(u.Role))
	if err != nil {
		return err
	}
	id, err := r.db.CurrentSequenceValue(ctx, "users_userid_seq")
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	u := &User{}
	err := r.db.QueryRow(ctx, `
		SELECT userID, name, password, latitude, longitude, type
		FROM Users WHERE userID = $1`, id).
		Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Latitude, &u.Longitude, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) UsersByName(ctx context.Context, name string) ([]*User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT userID, name, password, latitude, longitude, type
		FROM Users WHERE name = $1`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Latitude, &u.Longitude, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) HasRole(ctx context.Context, userID int64, role Role) (bool, error) {
	n, err := r.db.Count(ctx, `
		SELECT userID FROM Users WHERE userID = $1 AND type = $2`,
		userID, string(role))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *postgresRepository) ManagedStoreID(ctx context.Context, userID, storeID int64) (int64, error) {
	n, err := r.db.Count(ctx, `
		SELECT storeID FROM Store WHERE storeID = $1 AND managerID = $2`,
		storeID, userID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	return storeID, nil
}
