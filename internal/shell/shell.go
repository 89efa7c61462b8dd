package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/chandamulenga/retail-backend/internal/modules/gateway"
	"github.com/chandamulenga/retail-backend/internal/modules/identity"
	"github.com/chandamulenga/retail-backend/internal/modules/order"
	"github.com/chandamulenga/retail-backend/internal/modules/product"
	"github.com/chandamulenga/retail-backend/internal/modules/store"
)

// browseTables is the whitelist for the admin browse-table item. Identifiers
// come from this map only, never from raw input, so the query stays
// injection-free.
var browseTables = map[string]string{
	"users":                 "Users",
	"store":                 "Store",
	"product":               "Product",
	"warehouse":             "Warehouse",
	"orders":                "Orders",
	"productupdates":        "ProductUpdates",
	"productsupplyrequests": "ProductSupplyRequests",
}

// Shell is the interactive session: one terminal, one actor at a time.
type Shell struct {
	in  *bufio.Reader
	out io.Writer

	db       *gateway.DB
	identity identity.Service
	resolver *identity.Resolver
	stores   store.Service
	products product.Service
	orders   order.Service

	session uuid.UUID
}

// New creates a session shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, db *gateway.DB, ids identity.Service,
	resolver *identity.Resolver, stores store.Service, products product.Service,
	orders order.Service) *Shell {
	return &Shell{
		in:       bufio.NewReader(in),
		out:      out,
		db:       db,
		identity: ids,
		resolver: resolver,
		stores:   stores,
		products: products,
		orders:   orders,
		session:  uuid.New(),
	}
}

// Run drives the menu loop until the user exits or input ends. Operation
// failures print a message and return to the menu; nothing here ends the
// process.
func (s *Shell) Run(ctx context.Context) {
	log.Printf("session %s started", s.session)
	fmt.Fprintln(s.out, "\n*******************************************************")
	fmt.Fprintln(s.out, "              Retail Chain Terminal")
	fmt.Fprintln(s.out, "*******************************************************")

	for {
		fmt.Fprintln(s.out, "\nMAIN MENU")
		fmt.Fprintln(s.out, "---------")
		fmt.Fprintln(s.out, "1. Create user")
		fmt.Fprintln(s.out, "2. Log in")
		fmt.Fprintln(s.out, "9. < EXIT")

		choice, err := s.readChoice()
		if err != nil {
			return
		}
		switch choice {
		case 1:
			s.createUser(ctx)
		case 2:
			if token := s.logIn(ctx); token != "" {
				s.userMenu(ctx, token)
			}
		case 9:
			log.Printf("session %s ended", s.session)
			return
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}
	}
}

func (s *Shell) userMenu(ctx context.Context, token string) {
	actorID, err := s.identity.Subject(token)
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}

	for {
		fmt.Fprintln(s.out, "\nMAIN MENU")
		fmt.Fprintln(s.out, "---------")
		fmt.Fprintln(s.out, "1. View stores within 30 units")
		fmt.Fprintln(s.out, "2. View product list")
		fmt.Fprintln(s.out, "3. Place an order")
		fmt.Fprintln(s.out, "4. View 5 recent orders")
		fmt.Fprintln(s.out, "5. Update product")
		fmt.Fprintln(s.out, "6. View 5 recent product updates")
		fmt.Fprintln(s.out, "7. View 5 popular products")
		fmt.Fprintln(s.out, "8. View 5 popular customers")
		fmt.Fprintln(s.out, "9. Place product supply request to warehouse")
		fmt.Fprintln(s.out, "10. Browse table (admin)")
		fmt.Fprintln(s.out, ".........................")
		fmt.Fprintln(s.out, "20. Log out")

		choice, err := s.readChoice()
		if err != nil {
			return
		}
		switch choice {
		case 1:
			s.viewStores(ctx, actorID)
		case 2:
			s.viewProducts(ctx)
		case 3:
			s.placeOrder(ctx, actorID)
		case 4:
			s.viewRecentOrders(ctx, actorID)
		case 5:
			s.updateProduct(ctx, actorID)
		case 6:
			s.viewRecentUpdates(ctx, actorID)
		case 7:
			s.viewPopularProducts(ctx, actorID)
		case 8:
			s.viewPopularCustomers(ctx, actorID)
		case 9:
			s.placeSupplyRequest(ctx, actorID)
		case 10:
			s.browseTable(ctx, actorID)
		case 20:
			return
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}
	}
}

func (s *Shell) createUser(ctx context.Context) {
	name, err := s.readLine("\tEnter name: ")
	if err != nil {
		return
	}
	password, err := s.readLine("\tEnter password: ")
	if err != nil {
		return
	}
	latitude, err := s.promptFloat("\tEnter latitude [0-100]: ")
	if err != nil {
		return
	}
	longitude, err := s.promptFloat("\tEnter longitude [0-100]: ")
	if err != nil {
		return
	}

	u, regErr := s.identity.Register(ctx, name, password, latitude, longitude)
	if regErr != nil {
		fmt.Fprintln(s.out, regErr.Error())
		return
	}
	fmt.Fprintf(s.out, "User successfully created! Your user ID is %d.\n", u.ID)
}

// logIn returns a session token, or "" on a failed login.
func (s *Shell) logIn(ctx context.Context) string {
	name, err := s.readLine("\tEnter name: ")
	if err != nil {
		return ""
	}
	password, err := s.readLine("\tEnter password: ")
	if err != nil {
		return ""
	}

	token, loginErr := s.identity.Login(ctx, name, password)
	if loginErr != nil {
		fmt.Fprintln(s.out, loginErr.Error())
		return ""
	}
	fmt.Fprintf(s.out, "Welcome, %s!\n", name)
	return token
}

func (s *Shell) viewStores(ctx context.Context, actorID int64) {
	stores, err := s.stores.ListNearby(ctx, actorID)
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	s.renderNearby(stores)
}

func (s *Shell) viewProducts(ctx context.Context) {
	storeID, err := s.promptInt("\tEnter store ID: ")
	if err != nil {
		return
	}
	products, listErr := s.products.ListProducts(ctx, storeID)
	if listErr != nil {
		fmt.Fprintln(s.out, listErr.Error())
		return
	}
	s.renderProducts(products)
}

func (s *Shell) placeOrder(ctx context.Context, actorID int64) {
	storeID, err := s.promptInt("\tEnter store ID: ")
	if err != nil {
		return
	}
	name, err := s.readLine("\tEnter product name: ")
	if err != nil {
		return
	}
	units, err := s.promptInt("\tEnter number of units: ")
	if err != nil {
		return
	}

	o, orderErr := s.orders.Place(ctx, actorID, storeID, name, int(units))
	if orderErr != nil {
		fmt.Fprintln(s.out, orderErr.Error())
		return
	}
	fmt.Fprintf(s.out, "Order %d placed: %d x %s from store %d.\n",
		o.OrderNumber, o.UnitsOrdered, o.ProductName, o.StoreID)
}

func (s *Shell) viewRecentOrders(ctx context.Context, actorID int64) {
	orders, err := s.orders.Recent(ctx, actorID)
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintln(s.out, "\nYour most recent orders:")
	s.renderOrders(orders)
}

func (s *Shell) updateProduct(ctx context.Context, actorID int64) {
	storeID, err := s.promptInt("\tEnter store ID: ")
	if err != nil {
		return
	}
	name, err := s.readLine("\tEnter product name: ")
	if err != nil {
		return
	}
	units, err := s.promptInt("\tEnter number of units: ")
	if err != nil {
		return
	}
	price, err := s.promptFloat("\tEnter price per unit: ")
	if err != nil {
		return
	}

	products, updErr := s.products.UpdateProduct(ctx, actorID, storeID, name, int(units), price)
	if updErr != nil {
		fmt.Fprintln(s.out, updErr.Error())
		return
	}
	fmt.Fprintf(s.out, "Product updated. Store %d now stocks:\n", storeID)
	s.renderProducts(products)
}

func (s *Shell) viewRecentUpdates(ctx context.Context, actorID int64) {
	updates, err := s.products.RecentUpdates(ctx, actorID)
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	s.renderUpdates(updates)
}

func (s *Shell) viewPopularProducts(ctx context.Context, actorID int64) {
	storeID, err := s.promptInt("\tEnter store ID: ")
	if err != nil {
		return
	}
	ranks, rankErr := s.orders.PopularProducts(ctx, actorID, storeID)
	if rankErr != nil {
		fmt.Fprintln(s.out, rankErr.Error())
		return
	}
	s.renderProductRanks(ranks)
}

func (s *Shell) viewPopularCustomers(ctx context.Context, actorID int64) {
	storeID, err := s.promptInt("\tEnter store ID: ")
	if err != nil {
		return
	}
	ranks, rankErr := s.orders.PopularCustomers(ctx, actorID, storeID)
	if rankErr != nil {
		fmt.Fprintln(s.out, rankErr.Error())
		return
	}
	s.renderCustomerRanks(ranks)
}

func (s *Shell) placeSupplyRequest(ctx context.Context, actorID int64) {
	storeID, err := s.promptInt("\tEnter store ID: ")
	if err != nil {
		return
	}
	name, err := s.readLine("\tEnter product name: ")
	if err != nil {
		return
	}
	units, err := s.promptInt("\tEnter number of units needed: ")
	if err != nil {
		return
	}
	warehouseID, err := s.promptInt("\tEnter warehouse ID: ")
	if err != nil {
		return
	}

	req, reqErr := s.products.SubmitSupplyRequest(ctx, actorID, storeID, warehouseID, name, int(units))
	if reqErr != nil {
		fmt.Fprintln(s.out, reqErr.Error())
		return
	}
	fmt.Fprintf(s.out, "Supply request %d filed with warehouse %d.\n",
		req.RequestNumber, req.WarehouseID)
}

// browseTable prints a whole table for admins. The table name is resolved
// through the whitelist; anything else is rejected.
func (s *Shell) browseTable(ctx context.Context, actorID int64) {
	res, err := s.resolver.ResolveRole(ctx, actorID)
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	if res.Kind != identity.KindAdmin {
		fmt.Fprintln(s.out, identity.ErrNotAuthorized.Error())
		return
	}

	name, err := s.readLine("\tEnter table name: ")
	if err != nil {
		return
	}
	table, ok := browseTables[strings.ToLower(name)]
	if !ok {
		fmt.Fprintln(s.out, "Unknown table.")
		return
	}
	n, printErr := s.db.PrintRows(ctx, s.out, "SELECT * FROM "+table)
	if printErr != nil {
		fmt.Fprintln(s.out, printErr.Error())
		return
	}
	fmt.Fprintf(s.out, "total row(s): %d\n", n)
}
