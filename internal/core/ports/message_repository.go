package ports

import (
	"context"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// MessageRepository persists project messages.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	FindByProject(ctx context.Context, projectID string) ([]*domain.Message, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}
