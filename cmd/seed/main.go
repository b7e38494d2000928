package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/config"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/entity"
	repo "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/repository"
	pginfra "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/infrastructure/postgres"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/helpers"
)

// Seeds the initial operator account from ADMIN_USERNAME / ADMIN_PASSWORD.
// Re-running against an existing account is a no-op.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := pginfra.NewUserRepository(pool)
	u := &entity.User{Username: username, PasswordHash: hash}
	if err := users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			fmt.Printf("user %q already exists, nothing to do\n", username)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded admin user: id=%s username=%s\n", u.ID, u.Username)
}
