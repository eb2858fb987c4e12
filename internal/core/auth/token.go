package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the session lifetime applied when none is configured.
const DefaultTokenTTL = 24 * time.Hour

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")
	ErrMissingSubject   = errors.New("token missing subject")
)

// sessionClaims is the claim set carried by a session token. Only the
// subject id is authoritative for authorization decisions; username and role
// are informational for clients.
type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints signed, expiring session tokens. The signing secret is
// process-wide configuration injected at construction; it is never read from
// ambient state and never rotated at runtime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the stringified principal id, with
// username and role as extra claims and an absolute expiry of now + TTL.
func (i *TokenIssuer) Issue(subjectID int, username, role string) (string, error) {
	claims := sessionClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(subjectID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// TokenVerifier validates session tokens issued under the same secret.
// Verification touches no shared mutable state and is safe for unbounded
// concurrent use.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify checks signature and expiry and returns the integer subject id.
func (v *TokenVerifier) Verify(token string) (int, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})

	switch {
	case err == nil && parsed.Valid:
		// fall through to subject extraction
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return 0, ErrInvalidSignature
	default:
		return 0, ErrMalformedToken
	}

	if claims.Subject == "" {
		return 0, ErrMissingSubject
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrMissingSubject
	}
	return id, nil
}
