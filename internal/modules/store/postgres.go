package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chandamulenga/retail-backend/internal/modules/gateway"
)

type postgresRepository struct {
	db *gateway.DB
}

// NewPostgresRepository creates a new PostgreSQL store repository.
func NewPostgresRepository(db *gateway.DB) Repository {
	return &postgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanStore maps one Store row. managerID and dateEstablished are nullable;
// NULL maps to the zero value.
func scanStore(row rowScanner) (*Store, error) {
	s := &Store{}
	var established sql.NullTime
	if err := row.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.ManagerID, &established); err != nil {
		return nil, err
	}
	s.DateEstablished = established.Time
	return s, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]*Store, error) {
	rows, err := r.db.Query(ctx, `
		SELECT storeID, name, latitude, longitude, COALESCE(managerID, 0), dateEstablished
		FROM Store ORDER BY storeID`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []*Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Store, error) {
	s, err := scanStore(r.db.QueryRow(ctx, `
		SELECT storeID, name, latitude, longitude, COALESCE(managerID, 0), dateEstablished
		FROM Store WHERE storeID = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
