package jwt

import (
	"testing"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *jwtService {
	return &jwtService{
		secretKey: "test-secret",
		issuer:    "smartpantry-test",
		audience:  "smartpantry-client",
		expiry:    time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	service := newTestService()

	token := service.GenerateTokenUser("user-123", "A B", "a@b.com")
	require.NotEmpty(t, token)

	subject, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestTamperedTokenRejected(t *testing.T) {
	service := newTestService()

	token := service.GenerateTokenUser("user-123", "A B", "a@b.com")
	_, err := service.GetUserIDByToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenFromOtherIssuerRejected(t *testing.T) {
	other := &jwtService{
		secretKey: "test-secret",
		issuer:    "someone-else",
		audience:  "smartpantry-client",
		expiry:    time.Hour,
	}
	token := other.GenerateTokenUser("user-123", "A B", "a@b.com")

	_, err := newTestService().GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredTokenRejected(t *testing.T) {
	service := newTestService()
	service.expiry = -time.Minute

	token := service.GenerateTokenUser("user-123", "A B", "a@b.com")
	_, err := service.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
