package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/domain"
	"github.com/freelancehub/marketplace-system/internal/core/ports"
)

// MessageService implements project messaging. The sender recorded on a
// message is always the authenticated subject, and only that sender may
// update or delete it.
type MessageService struct {
	messages ports.MessageRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	queue    ports.NotificationQueue
	logger   zerolog.Logger
}

func NewMessageService(messages ports.MessageRepository, projects ports.ProjectRepository, users ports.UserRepository, queue ports.NotificationQueue, logger zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, projects: projects, users: users, queue: queue, logger: logger}
}

func (s *MessageService) Create(ctx context.Context, claims *auth.Claims, input ports.CreateMessageInput) (*domain.Message, error) {
	if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, input.ReceiverID); err != nil {
		return nil, err
	}

	message := &domain.Message{
		ProjectID:  input.ProjectID,
		SenderID:   claims.AccountID(),
		ReceiverID: input.ReceiverID,
		FileID:     input.FileID,
		Content:    input.Content,
		SentAt:     time.Now().UTC(),
	}
	created, err := s.messages.Create(ctx, message)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", input.ProjectID).Msg("failed to create message")
		return nil, err
	}

	s.queue.Enqueue(domain.Notification{
		ProjectID:  created.ProjectID,
		MessageID:  created.ID,
		SenderID:   created.SenderID,
		ReceiverID: created.ReceiverID,
		SentAt:     created.SentAt,
	})

	return created, nil
}

func (s *MessageService) ListByProject(ctx context.Context, projectID string) ([]*domain.Message, error) {
	return s.messages.FindByProject(ctx, projectID)
}

func (s *MessageService) Get(ctx context.Context, id string) (*domain.Message, error) {
	return s.messages.FindByID(ctx, id)
}

// UpdateContent replaces a message's content. Denied unless the caller is
// the recorded sender.
func (s *MessageService) UpdateContent(ctx context.Context, claims *auth.Claims, id, content string) (*domain.Message, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(claims, message.SenderID); err != nil {
		return nil, err
	}
	if err := s.messages.UpdateContent(ctx, id, content); err != nil {
		return nil, err
	}
	message.Content = content
	return message, nil
}

// Delete removes a message. Denied unless the caller is the recorded sender.
func (s *MessageService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(claims, message.SenderID); err != nil {
		return err
	}
	return s.messages.Delete(ctx, id)
}
