package ports

import (
	"context"
	"time"

	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// CreateProjectInput is the caller-supplied part of a new project; the owning
// client id comes from the authenticated identity.
type CreateProjectInput struct {
	Title       string
	Description string
	Budget      float64
	Deadline    time.Time
}

// UpdateProjectInput carries the mutable project fields. Nil pointers mean
// "leave unchanged".
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Budget      *float64
	Status      *domain.ProjectStatus
	Deadline    *time.Time
}

// ProjectService handles project CRUD. Update and Delete enforce client
// ownership before committing.
type ProjectService interface {
	Create(ctx context.Context, claims *auth.Claims, input CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, claims *auth.Claims, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, claims *auth.Claims, id string) error
}
