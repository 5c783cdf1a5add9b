package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordVerifier_HashAndVerify(t *testing.T) {
	p := NewPasswordVerifier(bcrypt.MinCost)

	hash, err := p.Hash("password1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "password1" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !p.Verify("password1", hash) {
		t.Fatalf("verify should succeed with correct secret")
	}
	if p.Verify("password2", hash) {
		t.Fatalf("verify should fail with wrong secret")
	}
}

func TestPasswordVerifier_SaltedHashesDiffer(t *testing.T) {
	p := NewPasswordVerifier(bcrypt.MinCost)

	h1, err := p.Hash("same-secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := p.Hash("same-secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same secret should differ")
	}
	if !p.Verify("same-secret", h1) || !p.Verify("same-secret", h2) {
		t.Fatalf("verify should succeed against both hashes")
	}
}

func TestPasswordVerifier_MalformedHash(t *testing.T) {
	p := NewPasswordVerifier(bcrypt.MinCost)

	if p.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("verify should return false on malformed hash, not panic or error")
	}
	if p.Verify("anything", "") {
		t.Fatalf("verify should return false on empty hash")
	}
}
