package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gefen_backend/internal/model"
	"gefen_backend/internal/repository"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageService defines operations for contact messages
type MessageService interface {
	CreateMessage(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error)
	ListMessages(ctx context.Context) ([]model.Message, error)
	GetMessageByID(ctx context.Context, id int64) (*model.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

func (s *messageService) CreateMessage(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error) {
	message := &model.Message{
		FullName:     req.FullName,
		Email:        req.Email,
		Subject:      req.Subject,
		Body:         req.Body,
		MobileNumber: req.MobileNumber,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message in repo: %w", err)
	}
	return message, nil
}

func (s *messageService) ListMessages(ctx context.Context) ([]model.Message, error) {
	messages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages from repo: %w", err)
	}
	if messages == nil {
		messages = []model.Message{} // Empty inbox serializes as [], not null
	}
	return messages, nil
}

func (s *messageService) GetMessageByID(ctx context.Context, id int64) (*model.Message, error) {
	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find message by ID: %w", err)
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}
	return message, nil
}

// DeleteMessage removes a message permanently. The not-found check rides on
// the delete itself, so of two racing deletes only one can succeed.
func (s *messageService) DeleteMessage(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete message in repo: %w", err)
	}
	if !deleted {
		return ErrMessageNotFound
	}
	return nil
}
