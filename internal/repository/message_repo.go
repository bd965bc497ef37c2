package repository

import (
	"context"
	"errors"
	"fmt"

	"gefen_backend/internal/model"

	"github.com/jackc/pgx/v5"
)

// MessageRepository defines operations for contact message data
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindAll(ctx context.Context) ([]model.Message, error)
	FindByID(ctx context.Context, id int64) (*model.Message, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type messageRepository struct {
	db DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new contact message into the database
func (r *messageRepository) Create(ctx context.Context, m *model.Message) error {
	sql := `INSERT INTO messages (full_name, email, subject, body, mobile_number, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, m.FullName, m.Email, m.Subject, m.Body, m.MobileNumber, m.CreatedAt).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// FindAll retrieves all contact messages, newest first
func (r *messageRepository) FindAll(ctx context.Context) ([]model.Message, error) {
	sql := `SELECT id, full_name, email, subject, body, mobile_number, created_at
            FROM messages ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.Subject, &m.Body, &m.MobileNumber, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}

// FindByID retrieves a contact message by its ID
func (r *messageRepository) FindByID(ctx context.Context, id int64) (*model.Message, error) {
	m := &model.Message{}
	sql := `SELECT id, full_name, email, subject, body, mobile_number, created_at
            FROM messages WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).
		Scan(&m.ID, &m.FullName, &m.Email, &m.Subject, &m.Body, &m.MobileNumber, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find message by ID: %w", err)
	}
	return m, nil
}

// Delete removes a contact message. The boolean reports whether a row was
// actually deleted, so a concurrent delete of the same ID cannot succeed twice.
func (r *messageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql := `DELETE FROM messages WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
