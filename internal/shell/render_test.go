package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chandamulenga/retail-backend/internal/modules/product"
	"github.com/chandamulenga/retail-backend/internal/modules/store"
)

func TestRenderProductsTabular(t *testing.T) {
	s, out := newTestShell("")

	s.renderProducts([]*product.Product{
		{StoreID: 7, Name: "Milk", Units: 3, Price: 2.5},
	})

	got := out.String()
	assert.Contains(t, got, "storeID\tproductName\tnumberOfUnits\tpricePerUnit")
	assert.Contains(t, got, "7\tMilk\t3\t2.50")
	assert.Contains(t, got, "total row(s): 1")
}

func TestRenderEmptyListingPrintsCountOnly(t *testing.T) {
	s, out := newTestShell("")

	s.renderNearby(nil)

	assert.Equal(t, "total row(s): 0\n", out.String())
}

func TestRenderNearbyDistances(t *testing.T) {
	s, out := newTestShell("")

	s.renderNearby([]*store.NearbyStore{
		{Store: &store.Store{ID: 4, Name: "Here"}, Distance: 0},
		{Store: &store.Store{ID: 1, Name: "Close"}, Distance: 25},
	})

	got := out.String()
	assert.Contains(t, got, "4\tHere\t0.00")
	assert.Contains(t, got, "1\tClose\t25.00")
	assert.Contains(t, got, "total row(s): 2")
}
