package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/loganlanou/popx/internal/identity"
	"github.com/loganlanou/popx/storage"
)

func main() {
	count := flag.Int("n", 25, "number of fake users to create")
	password := flag.String("password", "popx1234", "password given to every seeded user")
	seed := flag.Uint64("seed", 0, "faker seed, 0 picks a random one")
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/popx.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	faker := gofakeit.New(*seed)
	provider := identity.NewStoreProvider(store.Queries)
	ctx := context.Background()

	fmt.Printf("Seeding %d users into %s\n", *count, dbPath)

	created := 0
	for i := 0; i < *count; i++ {
		params := identity.SignupParams{
			Name:     faker.Name(),
			Email:    faker.Email(),
			Password: *password,
			Phone:    faker.Phone(),
			Company:  faker.Company(),
			IsAgency: faker.Bool(),
		}

		user, err := provider.Signup(ctx, params)
		if err != nil {
			if errors.Is(err, identity.ErrAuth) {
				fmt.Printf("  skipped %s: already registered\n", params.Email)
				continue
			}
			log.Fatalf("Failed to create user %s: %v", params.Email, err)
		}

		created++
		fmt.Printf("  ✓ %s <%s> agency=%t\n", user.Name, user.Email, user.IsAgency)
	}

	total, err := store.Queries.CountUsers(ctx)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}

	fmt.Printf("Created %d users, directory now holds %d\n", created, total)
}
