package repository

import (
	"context"
	"testing"
	"time"

	"gefen_backend/internal/model"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMessageRepository(mock)

	now := time.Now()
	m := &model.Message{
		FullName:     "Ada",
		Email:        "ada@x.com",
		Subject:      "scholarship",
		Body:         "Hi",
		MobileNumber: 2348000000000,
		CreatedAt:    now,
	}

	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(m.FullName, m.Email, m.Subject, m.Body, m.MobileNumber, m.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	err := repo.Create(context.Background(), m)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_FindAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMessageRepository(mock)

	now := time.Now()
	earlier := now.Add(-time.Hour)
	mock.ExpectQuery("SELECT id, full_name, email, subject, body, mobile_number, created_at").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "subject", "body", "mobile_number", "created_at"}).
			AddRow(int64(2), "Grace", "grace@x.com", "visa", "Hello", int64(2348000000001), now).
			AddRow(int64(1), "Ada", "ada@x.com", "scholarship", "Hi", int64(2348000000000), earlier))

	messages, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, int64(2), messages[0].ID) // newest first
	assert.Equal(t, "Ada", messages[1].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_FindAll_Empty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMessageRepository(mock)

	mock.ExpectQuery("SELECT id, full_name, email, subject, body, mobile_number, created_at").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "subject", "body", "mobile_number", "created_at"}))

	messages, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, messages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_FindByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMessageRepository(mock)

	now := time.Now()
	mock.ExpectQuery("SELECT id, full_name, email, subject, body, mobile_number, created_at").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "subject", "body", "mobile_number", "created_at"}).
			AddRow(int64(1), "Ada", "ada@x.com", "scholarship", "Hi", int64(2348000000000), now))

	m, err := repo.FindByID(context.Background(), 1)

	assert.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Ada", m.FullName)
	assert.Equal(t, int64(2348000000000), m.MobileNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMessageRepository(mock)

	mock.ExpectQuery("SELECT id, full_name, email, subject, body, mobile_number, created_at").
		WithArgs(int64(55)).
		WillReturnError(pgx.ErrNoRows)

	m, err := repo.FindByID(context.Background(), 55)

	assert.NoError(t, err)
	assert.Nil(t, m)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMessageRepository(mock)

	mock.ExpectExec("DELETE FROM messages").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_Delete_NoRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMessageRepository(mock)

	mock.ExpectExec("DELETE FROM messages").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), 1)

	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
