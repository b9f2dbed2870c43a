package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"painter-booking-backend/internal/auth"
	"painter-booking-backend/internal/models"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

func TestCreateAndParseToken(t *testing.T) {
	id := uuid.New()

	token, err := auth.CreateToken(testSecret, id, models.RoleCustomer, auth.SessionTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, claims.Role)

	parsedID, err := claims.PrincipalID()
	require.NoError(t, err)
	assert.Equal(t, id, parsedID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.CreateToken(testSecret, uuid.New(), models.RolePainter, auth.SessionTTL)
	require.NoError(t, err)

	_, err = auth.ParseToken("a-different-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := auth.CreateToken(testSecret, uuid.New(), models.RoleCustomer, -time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseToken(testSecret, token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := auth.ParseToken(testSecret, "not-a-token")
	assert.Error(t, err)
}

func TestTokenCarriesRole(t *testing.T) {
	for _, role := range []models.Role{models.RoleCustomer, models.RolePainter, models.RoleAdmin} {
		token, err := auth.CreateToken(testSecret, uuid.New(), role, auth.AdminTTL)
		require.NoError(t, err)

		claims, err := auth.ParseToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, role, claims.Role)
	}
}
