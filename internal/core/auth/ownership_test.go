package auth

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

func claimsFor(accountID string) *Claims {
	return &Claims{
		UserType:         domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{Subject: accountID},
	}
}

func TestAuthorize_OwnerAllowed(t *testing.T) {
	if err := Authorize(claimsFor("acc_a"), "acc_a"); err != nil {
		t.Fatalf("owner should be allowed: %v", err)
	}
}

func TestAuthorize_NonOwnerDenied(t *testing.T) {
	if err := Authorize(claimsFor("acc_b"), "acc_a"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorize_RoleGrantsNothing(t *testing.T) {
	// Same role as the owner, different account: still denied.
	claims := claimsFor("acc_b")
	claims.UserType = domain.RoleClient
	if err := Authorize(claims, "acc_a"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("role must not grant ownership, got %v", err)
	}
}

func TestAuthorize_DegenerateInputs(t *testing.T) {
	if err := Authorize(nil, "acc_a"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("nil claims should be denied, got %v", err)
	}
	if err := Authorize(claimsFor(""), ""); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("empty owner id should never match, got %v", err)
	}
}
