package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour, 0)

	token, err := codec.Issue("acc_1", "alice@example.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "acc_1" {
		t.Fatalf("expected subject acc_1, got %s", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.UserType != domain.RoleClient {
		t.Fatalf("unexpected role: %s", claims.UserType)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected iat and exp to be set")
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("secret", -time.Minute, 0)

	token, err := codec.Issue("acc_1", "a@x.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := codec.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_LeewayAcceptsRecentExpiry(t *testing.T) {
	issuer := NewTokenCodec("secret", -10*time.Second, 0)
	token, err := issuer.Issue("acc_1", "a@x.com", domain.RoleFreelancer)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	strict := NewTokenCodec("secret", time.Hour, 0)
	if _, err := strict.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("zero-leeway codec should reject, got %v", err)
	}

	lenient := NewTokenCodec("secret", time.Hour, 30*time.Second)
	claims, err := lenient.Verify(token)
	if err != nil {
		t.Fatalf("30s-leeway codec should accept a token expired 10s ago: %v", err)
	}
	if claims.Subject != "acc_1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour, 0)
	other := NewTokenCodec("different", time.Hour, 0)

	token, err := other.Issue("acc_1", "a@x.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := codec.Verify(token); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenCodec_TamperedToken(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour, 0)

	token, err := codec.Issue("acc_1", "a@x.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip one byte at every position; verification must fail each time.
	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == token {
			continue
		}
		if _, err := codec.Verify(string(mutated)); err == nil {
			t.Fatalf("tampered token accepted at byte %d", i)
		}
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour, 0)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := codec.Verify(tok); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", tok, err)
		}
	}
}

func TestTokenCodec_DifferentIssuanceTimesDifferentTokens(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour, 0)

	t1, err := codec.Issue("acc_1", "a@x.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	time.Sleep(1100 * time.Millisecond) // iat has second granularity
	t2, err := codec.Issue("acc_1", "a@x.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("tokens issued at different times should differ")
	}
}
