package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chandamulenga/retail-backend/internal/modules/gateway"
)

type postgresRepository struct {
	db *gateway.DB
}

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *gateway.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListByStore(ctx context.Context, storeID int64) ([]*Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product WHERE storeID = $1 ORDER BY productName`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.StoreID, &p.Name, &p.Units, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepository) Get(ctx context.Context, storeID int64, name string) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRow(ctx, `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product WHERE storeID = $1 AND productName = $2`, storeID, name).
		Scan(&p.StoreID, &p.Name, &p.Units, &p.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepository) UpdateProduct(ctx context.Context, storeID int64, name string, units int, price float64) error {
	n, err := r.db.Count(ctx, `
		SELECT storeID FROM Product WHERE storeID = $1 AND productName = $2`,
		storeID, name)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return r.db.Exec(ctx, `
		UPDATE Product SET numberOfUnits = $1, pricePerUnit = $2
		WHERE storeID = $3 AND productName = $4`,
		units, price, storeID, name)
}

func (r *postgresRepository) RecordUpdate(ctx context.Context, managerID, storeID int64, name string) (int64, error) {
	err := r.db.Exec(ctx, `
		INSERT INTO ProductUpdates (managerID, storeID, productName, updatedOn)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)`,
		managerID, storeID, name)
	if err != nil {
		return 0, err
	}
	return r.db.CurrentSequenceValue(ctx, "productupdates_updatenumber_seq")
}

func (r *postgresRepository) RecentUpdatesForManager(ctx context.Context, managerID int64, limit int) ([]*Update, error) {
	return r.queryUpdates(ctx, `
		SELECT P.updateNumber, P.managerID, P.storeID, P.productName, P.updatedOn
		FROM ProductUpdates P
		WHERE P.storeID IN (SELECT S.storeID FROM Store S WHERE S.managerID = $1)
		ORDER BY P.updatedOn DESC LIMIT $2`, managerID, limit)
}

func (r *postgresRepository) RecentUpdatesAll(ctx context.Context, limit int) ([]*Update, error) {
	return r.queryUpdates(ctx, `
		SELECT updateNumber, managerID, storeID, productName, updatedOn
		FROM ProductUpdates
		ORDER BY updatedOn DESC LIMIT $1`, limit)
}

func (r *postgresRepository) queryUpdates(ctx context.Context, query string, args ...interface{}) ([]*Update, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []*Update
	for rows.Next() {
		u := &Update{}
		if err := rows.Scan(&u.UpdateNumber, &u.ManagerID, &u.StoreID, &u.ProductName, &u.UpdatedOn); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, rows.Err()
}

func (r *postgresRepository) CreateSupplyRequest(ctx context.Context, req *SupplyRequest) error {
	err := r.db.Exec(ctx, `
		INSERT INTO ProductSupplyRequests (managerID, warehouseID, storeID, productName, unitsRequested)
		VALUES ($1, $2, $3, $4, $5)`,
		req.ManagerID, req.WarehouseID, req.StoreID, req.ProductName, req.UnitsRequested)
	if err != nil {
		return err
	}
	n, err := r.db.CurrentSequenceValue(ctx, "productsupplyrequests_requestnumber_seq")
	if err != nil {
		return err
	}
	req.RequestNumber = n
	return nil
}
