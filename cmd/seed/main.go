// Seed creates (or resets) an admin account. There is no registration
// endpoint, so this is the only way accounts come into existence.
//
//	ADMIN_USERNAME=admin ADMIN_PASSWORD=secret go run ./cmd/seed
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"contentadmin/internal/config"
	"contentadmin/internal/database"
	"contentadmin/internal/domain"
	"contentadmin/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	admins := repository.NewAdminRepository(db)

	if existing, err := admins.GetByUsername(ctx, username); err == nil {
		log.Printf("admin %q already exists (id=%d), leaving it untouched", existing.Username, existing.ID)
		return
	}

	admin := &domain.Admin{Username: username, PasswordHash: string(hash)}
	if err := admins.Create(ctx, admin); err != nil {
		log.Fatal("create admin failed:", err)
	}

	log.Printf("admin %q created (id=%d)", admin.Username, admin.ID)
}
