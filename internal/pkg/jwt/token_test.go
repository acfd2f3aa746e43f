package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "kemana-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	passengerID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(passengerID, "passenger", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, passengerID.String(), (*claims)["user_id"])
	assert.Equal(t, "passenger", (*claims)["role"])
	assert.Equal(t, "kemana-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "passenger", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")

	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")

	assert.Error(t, err)
}
