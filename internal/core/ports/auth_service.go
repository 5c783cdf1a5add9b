package ports

import (
	"context"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// RegisterInput carries the self-declared registration data. UserType is
// taken at face value; anyone may declare either role.
type RegisterInput struct {
	Email    string
	Password string
	Username string
	UserType domain.Role
}

// AuthService exchanges credentials for tokens. Login's role argument is an
// optional discriminant: when non-empty it must match the stored role, and a
// mismatch is indistinguishable from any other credential failure.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.Account, error)
	Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.Account, error)
}
