// Command authcheck verifies a YNAB Personal Access Token end to end: it
// creates a client, resolves the authenticated user, and lists the budgets
// the token can reach. Exit status 0 means the token works.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/eshaffer321/ynab-go/pkg/ynab"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	client, err := ynab.NewClient(&ynab.ClientOptions{
		Token:   os.Getenv("YNAB_ACCESS_TOKEN"),
		BaseURL: os.Getenv("YNAB_API_URL"),
	})
	if err != nil {
		fail(err)
	}
	defer client.Close()

	fmt.Println("✓ YNAB client initialized successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := client.User.Get(ctx)
	if err != nil {
		fail(err)
	}

	budgets, err := client.Budgets.List(ctx)
	if err != nil {
		fail(err)
	}

	fmt.Println("\n✓ Authentication successful!")
	fmt.Printf("\nAuthenticated as user %s\n", user.ID)
	fmt.Printf("\nFound %d budget(s):\n", len(budgets))
	for _, budget := range budgets {
		fmt.Printf("  - %s (ID: %s)\n", budget.Name, budget.ID)
	}
}

func fail(err error) {
	fmt.Printf("✗ Authentication failed: %v\n", err)

	if ynab.IsAuthError(err) {
		fmt.Println("\nCheck that YNAB_ACCESS_TOKEN is set to a valid Personal Access Token.")
		fmt.Println("Tokens are issued at: https://app.ynab.com/settings/developer")
	}

	os.Exit(1)
}
