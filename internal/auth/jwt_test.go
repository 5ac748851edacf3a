package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Minute)

	token, err := manager.GenerateAccessToken("user-1", "alice@example.com", "servicer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "servicer", claims.Role)
}

func TestJWTWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Minute)
	other := NewJWTManager("other-secret", time.Minute)

	token, err := manager.GenerateAccessToken("user-1", "alice@example.com", "user")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.GenerateAccessToken("user-1", "alice@example.com", "user")
	require.NoError(t, err)

	_, err = manager.ParseAndValidate(token)
	assert.Error(t, err)
}
