package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/chandamulenga/retail-backend/internal/modules/gateway"
	"github.com/chandamulenga/retail-backend/internal/modules/identity"
	"github.com/chandamulenga/retail-backend/internal/modules/order"
	"github.com/chandamulenga/retail-backend/internal/modules/product"
	"github.com/chandamulenga/retail-backend/internal/modules/store"
	"github.com/chandamulenga/retail-backend/internal/shell"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbname> <port> <user>\n", os.Args[0])
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		// No .env is fine; the password may come from the environment.
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := gateway.Config{
		DBName:   os.Args[1],
		Port:     os.Args[2],
		User:     os.Args[3],
		Password: os.Getenv("RETAIL_DB_PASSWORD"),
	}

	fmt.Print("Connecting to database...")
	db, err := gateway.Open(cfg)
	if err != nil {
		fmt.Println()
		log.Fatal(err)
	}
	fmt.Println("Done")
	defer func() {
		fmt.Print("Disconnecting from database...")
		if err := db.Close(); err != nil {
			log.Printf("close: %v", err)
		}
		fmt.Println("Done\n\nBye!")
	}()

	userRepo := identity.NewPostgresRepository(db)
	identityService := identity.NewService(userRepo)
	resolver := identity.NewResolver(userRepo)

	storeRepo := store.NewPostgresRepository(db)
	storeService := store.NewService(storeRepo, userRepo)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo, resolver)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, storeRepo, productRepo, userRepo, resolver)

	sh := shell.New(os.Stdin, os.Stdout, db, identityService, resolver,
		storeService, productService, orderService)
	sh.Run(context.Background())
}
