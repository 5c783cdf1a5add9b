package ports

import (
	"context"

	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// CreateMessageInput is the caller-supplied part of a new message; the sender
// is always the authenticated identity, never caller input.
type CreateMessageInput struct {
	ProjectID  string
	ReceiverID string
	FileID     string
	Content    string
}

// MessageService handles message CRUD. Update and Delete enforce sender
// ownership before committing.
type MessageService interface {
	Create(ctx context.Context, claims *auth.Claims, input CreateMessageInput) (*domain.Message, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Message, error)
	Get(ctx context.Context, id string) (*domain.Message, error)
	UpdateContent(ctx context.Context, claims *auth.Claims, id, content string) (*domain.Message, error)
	Delete(ctx context.Context, claims *auth.Claims, id string) error
}
