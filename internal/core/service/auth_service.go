package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/domain"
	"github.com/freelancehub/marketplace-system/internal/core/ports"
)

// lookupTimeout bounds the credential-store round trip during login and
// register so a slow store cannot hold the request open indefinitely.
const lookupTimeout = 5 * time.Second

// AuthService implements the credential exchange: registration and login.
type AuthService struct {
	users     ports.UserRepository
	passwords *auth.PasswordVerifier
	tokens    *auth.TokenCodec
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, passwords *auth.PasswordVerifier, tokens *auth.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, passwords: passwords, tokens: tokens, logger: logger}
}

// Login exchanges (email, password) for a token and the sanitized account.
// An unknown email, a wrong password, and a role-discriminant mismatch all
// fail with the same ErrInvalidCredentials; nothing distinguishes them to the
// caller. Store failures map to ErrUnavailable, never to bad credentials.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	account, err := s.users.FindByEmail(lookupCtx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("credential store lookup failed")
		return "", nil, domain.ErrUnavailable
	}

	if !s.passwords.Verify(password, account.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if role != "" && role != account.UserType {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Email, account.UserType)
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return "", nil, err
	}

	return token, sanitize(account), nil
}

// Register creates an account with a freshly hashed password and then
// behaves like a successful login, issuing a token for the new identity.
// The declared role is trusted as-is; there is no external proof of being a
// client or freelancer.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.Account, error) {
	if input.Email == "" || input.Password == "" || input.Username == "" || !input.UserType.Valid() {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return "", nil, err
	}

	createCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	account := &domain.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		UserType:     input.UserType,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.users.Create(createCtx, account)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return "", nil, domain.ErrUserExists
		}
		s.logger.Error().Err(err).Msg("account creation failed")
		return "", nil, domain.ErrUnavailable
	}

	token, err := s.tokens.Issue(created.ID, created.Email, created.UserType)
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return "", nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Str("user_type", string(created.UserType)).Msg("account registered")
	return token, sanitize(created), nil
}

// sanitize strips the password hash before the account crosses the API
// boundary. The json tag hides it too; stripping keeps it out of logs.
func sanitize(a *domain.Account) *domain.Account {
	clone := *a
	clone.PasswordHash = ""
	return &clone
}
