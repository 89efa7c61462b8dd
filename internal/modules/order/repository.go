package order

import "context"

// Repository defines order data access.
type Repository interface {
	// Create appends the order row and fills in the database-assigned order
	// number and timestamp from the stored row.
	Create(ctx context.Context, o *Order) error

	// RecentByCustomer returns the customer's latest orders, newest first,
	// store name joined per row. Never more than limit rows.
	RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]*RecentOrder, error)

	// PopularProducts ranks a store's products by order count descending,
	// ties broken by product name.
	PopularProducts(ctx context.Context, storeID int64, limit int) ([]*ProductRank, error)

	// PopularCustomers ranks a store's customers by order count descending,
	// ties broken by customer ID.
	PopularCustomers(ctx context.Context, storeID int64, limit int) ([]*CustomerRank, error)
}
