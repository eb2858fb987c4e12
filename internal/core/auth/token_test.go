package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestToken_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	verifier := NewTokenVerifier("secret")

	token, err := issuer.Issue(42, "carol", "salesperson")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}
}

func TestToken_Expired(t *testing.T) {
	// Sign an already-expired token directly to simulate clock skew.
	claims := jwt.MapClaims{
		"sub":      "7",
		"username": "carol",
		"role":     "salesperson",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenVerifier("secret").Verify(signed); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestToken_WrongKey(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(1, "alice", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenVerifier("other-secret").Verify(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestToken_Malformed(t *testing.T) {
	if _, err := NewTokenVerifier("secret").Verify("not-a-token"); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestToken_MissingSubject(t *testing.T) {
	verifier := NewTokenVerifier("secret")

	for name, claims := range map[string]jwt.MapClaims{
		"absent":      {"username": "alice", "exp": time.Now().Add(time.Hour).Unix()},
		"non-numeric": {"sub": "alice", "exp": time.Now().Add(time.Hour).Unix()},
	} {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign %s: %v", name, err)
		}
		if _, err := verifier.Verify(signed); !errors.Is(err, ErrMissingSubject) {
			t.Fatalf("%s subject: expected ErrMissingSubject, got %v", name, err)
		}
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	if issuer.ttl != DefaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTokenTTL, issuer.ttl)
	}
}
