package ports

import (
	"context"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// BidRepository persists bids.
type BidRepository interface {
	Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
	FindByID(ctx context.Context, id string) (*domain.Bid, error)
	FindByProject(ctx context.Context, projectID string) ([]*domain.Bid, error)
	Update(ctx context.Context, bid *domain.Bid) error
	Delete(ctx context.Context, id string) error
}
