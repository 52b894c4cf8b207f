package jwt

import (
	"testing"
	"time"

	"benihealth/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "ada@example.com", "EMPLOYER")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "EMPLOYER", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "ada@example.com", "EMPLOYEE")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(config.JWTConfig{Secret: "different", AccessExpiry: time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.c", "ADMIN")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.c", "ADMIN")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
