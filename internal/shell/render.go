package shell

import (
	"fmt"
	"strconv"

	"github.com/chandamulenga/retail-backend/internal/modules/gateway"
	"github.com/chandamulenga/retail-backend/internal/modules/order"
	"github.com/chandamulenga/retail-backend/internal/modules/product"
	"github.com/chandamulenga/retail-backend/internal/modules/store"
)

const timeLayout = "2006-01-02 15:04:05"

// printResult writes a tab-separated table and the original's trailing row
// count line.
func (s *Shell) printResult(res *gateway.Result) {
	n := res.WriteTab(s.out)
	fmt.Fprintf(s.out, "total row(s): %d\n", n)
}

func (s *Shell) renderNearby(stores []*store.NearbyStore) {
	res := &gateway.Result{Columns: []string{"storeID", "name", "dist"}}
	for _, ns := range stores {
		res.Records = append(res.Records, []string{
			strconv.FormatInt(ns.Store.ID, 10),
			ns.Store.Name,
			strconv.FormatFloat(ns.Distance, 'f', 2, 64),
		})
	}
	s.printResult(res)
}

func (s *Shell) renderProducts(products []*product.Product) {
	res := &gateway.Result{Columns: []string{"storeID", "productName", "numberOfUnits", "pricePerUnit"}}
	for _, p := range products {
		res.Records = append(res.Records, []string{
			strconv.FormatInt(p.StoreID, 10),
			p.Name,
			strconv.Itoa(p.Units),
			strconv.FormatFloat(p.Price, 'f', 2, 64),
		})
	}
	s.printResult(res)
}

func (s *Shell) renderOrders(orders []*order.RecentOrder) {
	res := &gateway.Result{Columns: []string{"storeID", "storeName", "productName", "unitsOrdered", "orderTime"}}
	for _, o := range orders {
		res.Records = append(res.Records, []string{
			strconv.FormatInt(o.StoreID, 10),
			o.StoreName,
			o.ProductName,
			strconv.Itoa(o.UnitsOrdered),
			o.OrderTime.Format(timeLayout),
		})
	}
	s.printResult(res)
}

func (s *Shell) renderUpdates(updates []*product.Update) {
	res := &gateway.Result{Columns: []string{"updateNumber", "managerID", "storeID", "productName", "updatedOn"}}
	for _, u := range updates {
		res.Records = append(res.Records, []string{
			strconv.FormatInt(u.UpdateNumber, 10),
			strconv.FormatInt(u.ManagerID, 10),
			strconv.FormatInt(u.StoreID, 10),
			u.ProductName,
			u.UpdatedOn.Format(timeLayout),
		})
	}
	s.printResult(res)
}

func (s *Shell) renderProductRanks(ranks []*order.ProductRank) {
	res := &gateway.Result{Columns: []string{"productName", "orders"}}
	for _, r := range ranks {
		res.Records = append(res.Records, []string{r.ProductName, strconv.Itoa(r.Orders)})
	}
	s.printResult(res)
}

func (s *Shell) renderCustomerRanks(ranks []*order.CustomerRank) {
	res := &gateway.Result{Columns: []string{"customerID", "name", "orders"}}
	for _, r := range ranks {
		res.Records = append(res.Records, []string{
			strconv.FormatInt(r.CustomerID, 10),
			r.Name,
			strconv.Itoa(r.Orders),
		})
	}
	s.printResult(res)
}
