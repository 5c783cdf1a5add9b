package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier hashes and checks login secrets with bcrypt. Hashing is
// intentionally slow; it runs only on the login/register path, never during
// token verification.
type PasswordVerifier struct {
	cost int
}

// NewPasswordVerifier returns a verifier using the given bcrypt cost.
// A non-positive cost falls back to bcrypt.DefaultCost.
func NewPasswordVerifier(cost int) *PasswordVerifier {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordVerifier{cost: cost}
}

// Hash produces a salted one-way hash of secret. Two calls with the same
// secret yield different hashes; Verify succeeds against either.
func (p *PasswordVerifier) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether secret matches storedHash. Every failure mode,
// including a malformed stored hash, collapses to false so callers map it to
// a single invalid-credentials response.
func (p *PasswordVerifier) Verify(secret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
