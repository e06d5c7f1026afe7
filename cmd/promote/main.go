// Command promote grants the admin flag to a user by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com
//
// The database is taken from the regular application configuration
// (CONFIG_PATH or DATABASE_DSN); auth settings are not needed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/polls-backend/internal/adapter/postgres"
	"github.com/heartmarshall/polls-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/polls-backend/internal/config"
	"github.com/heartmarshall/polls-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	normalized := domain.NormalizeEmail(*email)
	changed, err := user.New(pool).SetAdmin(ctx, normalized)
	if err != nil {
		log.Fatalf("set admin: %v", err)
	}

	if !changed {
		fmt.Printf("No user found with email %q, or already admin.\n", normalized)
		os.Exit(1)
	}

	fmt.Printf("User %q promoted to admin.\n", normalized)
}
