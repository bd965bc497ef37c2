package repository

import (
	"context"
	"errors"
	"fmt"

	"gefen_backend/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdminRepository defines operations for admin account data
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindByID(ctx context.Context, id int) (*model.Admin, error)
}

type adminRepository struct {
	db DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin account into the database
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	sql := `INSERT INTO admins (name, email, password_hash, role, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, admin.Name, admin.Email, admin.PasswordHash, admin.Role, admin.CreatedAt).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindByEmail retrieves an admin by email
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admin := &model.Admin{}
	sql := `SELECT id, name, email, password_hash, role, created_at FROM admins WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).
		Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.Role, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer handles it
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return admin, nil
}

// FindByID retrieves an admin by ID
func (r *adminRepository) FindByID(ctx context.Context, id int) (*model.Admin, error) {
	admin := &model.Admin{}
	sql := `SELECT id, name, email, password_hash, role, created_at FROM admins WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).
		Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.Role, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find admin by ID: %w", err)
	}
	return admin, nil
}
