// Command createadmin seeds the first admin account directly against the
// database. Admin accounts are never created through the HTTP API.
//
// Usage:
//
//	ADMIN_NAME="..." ADMIN_EMAIL="..." ADMIN_PASSWORD="..." go run ./cmd/createadmin
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"gefen_backend/internal/config"
	"gefen_backend/internal/logging"
	"gefen_backend/internal/model"
	"gefen_backend/internal/repository"
	"gefen_backend/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on environment variables")
	}
	logging.Setup()

	name := os.Getenv("ADMIN_NAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if name == "" || email == "" || password == "" {
		logging.Fatal("ADMIN_NAME, ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logging.Fatal("failed to load DB config", "error", err)
	}
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(dbPool); err != nil {
		logging.Fatal("failed to auto-migrate database", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	adminRepo := repository.NewAdminRepository(dbPool)

	existing, err := adminRepo.FindByEmail(ctx, email)
	if err != nil {
		logging.Fatal("failed to check for existing admin", "error", err)
	}
	if existing != nil {
		slog.Warn("admin already exists, nothing to do", "email", existing.Email)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logging.Fatal("failed to hash password", "error", err)
	}

	admin := &model.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		logging.Fatal("failed to create admin", "error", err)
	}

	slog.Info("admin created", "id", admin.ID, "email", admin.Email)
	slog.Info("please change the password after first login")
}
