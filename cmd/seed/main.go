// Command seed idempotently creates the bootstrap admin account. Running it
// against a database that already has the admin is a no-op.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/shippy/shipment-tracker/internal/config"
	"github.com/shippy/shipment-tracker/internal/database"
	"github.com/shippy/shipment-tracker/internal/model"
	"github.com/shippy/shipment-tracker/internal/repository"
	"github.com/shippy/shipment-tracker/internal/utils"
)

const (
	adminEmail    = "admin@shippy.com"
	adminUsername = "admin"
	adminPassword = "adm_shi_001"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := users.GetByEmail(ctx, adminEmail); err == nil {
		log.Println("Admin already exists")
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		log.Fatalf("lookup admin: %v", err)
	}

	hash, err := utils.HashPassword(adminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := model.User{
		ID:           uuid.NewString(),
		Email:        adminEmail,
		Username:     adminUsername,
		PasswordHash: hash,
		Name:         "System Admin",
		Address:      "No 49/52, Colombo 03",
		Phone:        "0000000000",
		Usertype:     model.UserTypeAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("Admin created: %s", admin.Email)
}
