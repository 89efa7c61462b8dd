package order

import (
	"context"

	"github.com/chandamulenga/retail-backend/internal/modules/gateway"
)

type postgresRepository struct {
	db *gateway.DB
}

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *gateway.DB) Repository {
	return &postgresRepository{db: db}
}

// Create inserts the order and fills in the server-assigned order number and
// timestamp, so o.OrderTime always matches the stored row.
func (r *postgresRepository) Create(ctx context.Context, o *Order) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO Orders (customerID, storeID, productName, unitsOrdered, orderTime)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING orderNumber, orderTime`,
		o.CustomerID, o.StoreID, o.ProductName, o.UnitsOrdered).
		Scan(&o.OrderNumber, &o.OrderTime)
}

func (r *postgresRepository) RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]*RecentOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT O.storeID, S.name, O.productName, O.unitsOrdered, O.orderTime
		FROM Orders O JOIN Store S ON S.storeID = O.storeID
		WHERE O.customerID = $1
		ORDER BY O.orderTime DESC LIMIT $2`, customerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*RecentOrder
	for rows.Next() {
		o := &RecentOrder{}
		if err := rows.Scan(&o.StoreID, &o.StoreName, &o.ProductName, &o.UnitsOrdered, &o.OrderTime); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepository) PopularProducts(ctx context.Context, storeID int64, limit int) ([]*ProductRank, error) {
	rows, err := r.db.Query(ctx, `
		SELECT productName, COUNT(*)
		FROM Orders WHERE storeID = $1
		GROUP BY productName
		ORDER BY COUNT(*) DESC, productName LIMIT $2`, storeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranks []*ProductRank
	for rows.Next() {
		p := &ProductRank{}
		if err := rows.Scan(&p.ProductName, &p.Orders); err != nil {
			return nil, err
		}
		ranks = append(ranks, p)
	}
	return ranks, rows.Err()
}

func (r *postgresRepository) PopularCustomers(ctx context.Context, storeID int64, limit int) ([]*CustomerRank, error) {
	rows, err := r.db.Query(ctx, `
		SELECT O.customerID, U.name, COUNT(*)
		FROM Orders O JOIN Users U ON U.userID = O.customerID
		WHERE O.storeID = $1
		GROUP BY O.customerID, U.name
		ORDER BY COUNT(*) DESC, O.customerID LIMIT $2`, storeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranks []*CustomerRank
	for rows.Next() {
		c := &CustomerRank{}
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Orders); err != nil {
			return nil, err
		}
		ranks = append(ranks, c)
	}
	return ranks, rows.Err()
}
