package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single outcome for every verification failure:
// bad signature, wrong algorithm, malformed payload, missing subject or
// expiry.  Callers must not be able to distinguish these cases.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTokenTTL applies when a TokenService is constructed without an
// explicit lifetime.
const DefaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies signed HS256 bearer tokens carrying an
// account id as subject.  It is stateless: verification is a pure function
// of token, secret and current time.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService.  A non-positive ttl falls back to
// DefaultTokenTTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token for the given subject and returns it along with its
// expiration instant.
func (s *TokenService) Issue(subject string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks signature and expiry and returns the embedded subject.
// The signing method is pinned to HS256: tokens signed with any other
// algorithm are rejected regardless of their signature.
func (s *TokenService) Verify(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidToken
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
