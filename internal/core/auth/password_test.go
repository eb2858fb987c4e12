package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPassword_Match(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash: %v", err)
	}

	if !VerifyPassword("s3cret", string(hash)) {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword("wrong", string(hash)) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestVerifyPassword_PrefixVariants(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash: %v", err)
	}

	// Hashes from other bcrypt libraries differ only in the version prefix.
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		variant := prefix + string(hash)[4:]
		if !VerifyPassword("s3cret", variant) {
			t.Fatalf("hash with prefix %s did not verify", prefix)
		}
		if VerifyPassword("wrong", variant) {
			t.Fatalf("wrong password verified under prefix %s", prefix)
		}
	}
}

func TestVerifyPassword_FailsClosed(t *testing.T) {
	if VerifyPassword("anything", "") {
		t.Fatalf("empty stored hash must deny")
	}
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed stored hash must deny")
	}
	if VerifyPassword("anything", "$2a$xx$garbage") {
		t.Fatalf("corrupt bcrypt hash must deny")
	}
}

func TestVerifyPassword_TrimsWhitespace(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash: %v", err)
	}

	if !VerifyPassword("s3cret", "  "+string(hash)+"\n") {
		t.Fatalf("expected padded stored hash to verify")
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("portal-pass", 12)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "portal-pass" {
		t.Fatalf("expected password to be hashed")
	}
	if !VerifyPassword("portal-pass", hash) {
		t.Fatalf("hashed password did not verify")
	}
}
