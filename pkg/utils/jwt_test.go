package utils

import (
	"testing"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTokenRoundTripUsesInjectedSecret(t *testing.T) {
	user := &models.User{
		Model: gorm.Model{ID: 42},
		Email: "admin@example.com",
		Role:  "ADMIN",
	}

	tokenString, err := GenerateToken(user, "configured-secret")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ValidateToken(tokenString, "configured-secret")
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["id"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{Model: gorm.Model{ID: 7}, Email: "user@example.com"}

	tokenString, err := GenerateToken(user, "secret-a")
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "secret-b")
	assert.Error(t, err)
}
