package ports

import (
	"context"

	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// CreateBidInput is the caller-supplied part of a new bid; the bidding
// freelancer id comes from the authenticated identity.
type CreateBidInput struct {
	ProjectID string
	BidAmount float64
	Proposal  string
}

// UpdateBidInput carries the mutable bid fields. Nil pointers mean "leave
// unchanged".
type UpdateBidInput struct {
	BidAmount *float64
	Proposal  *string
	Status    *domain.BidStatus
}

// BidService handles bid CRUD. Update and Delete enforce freelancer
// ownership before committing.
type BidService interface {
	Create(ctx context.Context, claims *auth.Claims, input CreateBidInput) (*domain.Bid, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Bid, error)
	Get(ctx context.Context, id string) (*domain.Bid, error)
	Update(ctx context.Context, claims *auth.Claims, id string, input UpdateBidInput) (*domain.Bid, error)
	Delete(ctx context.Context, claims *auth.Claims, id string) error
}
