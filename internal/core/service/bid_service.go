package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/domain"
	"github.com/freelancehub/marketplace-system/internal/core/ports"
)

// BidService implements bids on projects. The bidding freelancer id is the
// authenticated subject at creation time and gates every mutation.
type BidService struct {
	bids     ports.BidRepository
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewBidService(bids ports.BidRepository, projects ports.ProjectRepository, logger zerolog.Logger) *BidService {
	return &BidService{bids: bids, projects: projects, logger: logger}
}

func (s *BidService) Create(ctx context.Context, claims *auth.Claims, input ports.CreateBidInput) (*domain.Bid, error) {
	if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	bid := &domain.Bid{
		ProjectID:    input.ProjectID,
		FreelancerID: claims.AccountID(),
		BidAmount:    input.BidAmount,
		Proposal:     input.Proposal,
		Status:       domain.BidSubmitted,
		SubmittedAt:  time.Now().UTC(),
	}
	created, err := s.bids.Create(ctx, bid)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", input.ProjectID).Msg("failed to create bid")
		return nil, err
	}
	return created, nil
}

func (s *BidService) ListByProject(ctx context.Context, projectID string) ([]*domain.Bid, error) {
	return s.bids.FindByProject(ctx, projectID)
}

func (s *BidService) Get(ctx context.Context, id string) (*domain.Bid, error) {
	return s.bids.FindByID(ctx, id)
}

func (s *BidService) Update(ctx context.Context, claims *auth.Claims, id string, input ports.UpdateBidInput) (*domain.Bid, error) {
	bid, err := s.bids.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(claims, bid.FreelancerID); err != nil {
		return nil, err
	}

	if input.BidAmount != nil {
		bid.BidAmount = *input.BidAmount
	}
	if input.Proposal != nil {
		bid.Proposal = *input.Proposal
	}
	if input.Status != nil {
		bid.Status = *input.Status
	}

	if err := s.bids.Update(ctx, bid); err != nil {
		return nil, err
	}
	return bid, nil
}

func (s *BidService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	bid, err := s.bids.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(claims, bid.FreelancerID); err != nil {
		return err
	}
	return s.bids.Delete(ctx, id)
}
