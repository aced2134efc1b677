package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinesolutions/website-backend/internal/auth"
)

var testSecret = []byte("unit-test-secret")

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)

	token, exp, err := svc.Issue("account-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "account-123", subject)
}

func TestTokenService_WrongSecretRejected(t *testing.T) {
	issuer := auth.NewTokenService([]byte("secret-A"), time.Hour)
	verifier := auth.NewTokenService([]byte("secret-B"), time.Hour)

	token, _, err := issuer.Issue("account-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_AlgorithmPinned(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)

	// Same secret, different HMAC variant: must still be rejected.
	claims := jwt.MapClaims{
		"sub": "account-123",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_ExpiredRejected(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)

	claims := jwt.MapClaims{
		"sub": "account-123",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_ShortTTLExpires(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Second)

	token, _, err := svc.Issue("account-123")
	require.NoError(t, err)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "account-123", subject)

	time.Sleep(2 * time.Second)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_MalformedRejected(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", raw)
	}
}

func TestTokenService_MissingSubjectRejected(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)

	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
