package product

import "time"

// Product is a store's stock of one item. The composite key is
// (StoreID, Name). Units never goes negative.
type Product struct {
	StoreID int64   `json:"store_id"`
	Name    string  `json:"product_name"`
	Units   int     `json:"number_of_units"`
	Price   float64 `json:"price_per_unit"`
}

// Update is one row of the append-only product-update audit trail.
type Update struct {
	UpdateNumber int64     `json:"update_number"`
	ManagerID    int64     `json:"manager_id"`
	StoreID      int64     `json:"store_id"`
	ProductName  string    `json:"product_name"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// SupplyRequest is one row of the append-only warehouse request log.
type SupplyRequest struct {
	RequestNumber  int64  `json:"request_number"`
	ManagerID      int64  `json:"manager_id"`
	WarehouseID    int64  `json:"warehouse_id"`
	StoreID        int64  `json:"store_id"`
	ProductName    string `json:"product_name"`
	UnitsRequested int    `json:"units_requested"`
}
