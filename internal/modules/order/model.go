package order

import "time"

// Order is one placed order: a customer buying units of one product at one
// store. Rows are append-only facts.
type Order struct {
	OrderNumber  int64     `json:"order_number"`
	CustomerID   int64     `json:"customer_id"`
	StoreID      int64     `json:"store_id"`
	ProductName  string    `json:"product_name"`
	UnitsOrdered int       `json:"units_ordered"`
	OrderTime    time.Time `json:"order_time"`
}

// RecentOrder is an order row joined with its store's name, for the
// customer-facing recent-orders listing.
type RecentOrder struct {
	StoreID      int64     `json:"store_id"`
	StoreName    string    `json:"store_name"`
	ProductName  string    `json:"product_name"`
	UnitsOrdered int       `json:"units_ordered"`
	OrderTime    time.Time `json:"order_time"`
}

// ProductRank is one row of the popular-products report.
type ProductRank struct {
	ProductName string `json:"product_name"`
	Orders      int    `json:"orders"`
}

// CustomerRank is one row of the popular-customers report.
type CustomerRank struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Orders     int    `json:"orders"`
}
