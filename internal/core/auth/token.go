package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// Verification failures, classified for internal logging and metrics only.
// Externally every one of them maps to the same 401 response.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims is the identity embedded in every issued token. Subject carries the
// account id. Claims are the sole source of truth for "who is calling" for
// the lifetime of the token: the server never re-fetches the account, so a
// role change or deletion after issuance is not reflected until expiry.
type Claims struct {
	Email    string      `json:"email"`
	UserType domain.Role `json:"user_type"`
	jwt.RegisteredClaims
}

// AccountID returns the subject account id.
func (c *Claims) AccountID() string {
	return c.Subject
}

// TokenCodec signs claims into compact HS256 tokens and verifies them back.
// The secret is immutable process-wide state injected at construction;
// rotating it invalidates all outstanding tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
}

// NewTokenCodec builds a codec with the given signing secret, token lifetime,
// and clock-skew leeway. A non-positive ttl falls back to 24h; a negative
// leeway is treated as zero.
func NewTokenCodec(secret string, ttl, leeway time.Duration) *TokenCodec {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	if leeway < 0 {
		leeway = 0
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, leeway: leeway}
}

// Issue signs a token for the account. Issued-at and expiry are embedded, so
// the same identity issued twice at different times yields different tokens.
func (tc *TokenCodec) Issue(accountID, email string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:    email,
		UserType: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Verify parses and validates a token, returning its claims. Failures are
// classified as ErrTokenExpired, ErrTokenSignature, or ErrTokenMalformed.
// Verification is pure computation; no I/O, no shared mutable state.
func (tc *TokenCodec) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	}, jwt.WithLeeway(tc.leeway))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
