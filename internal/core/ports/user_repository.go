package ports

import (
	"context"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// UserRepository is the credential store adapter. Email and username
// uniqueness is enforced by the store's own constraints; Create surfaces a
// violation as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}
