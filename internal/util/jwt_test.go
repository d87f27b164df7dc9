package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("test-secret", "finance-tracker", 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("test-secret", "finance-tracker", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "finance-tracker", claims.Issuer)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "finance-tracker", 1, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("secret-b", "finance-tracker", token)
	assert.Error(t, err)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	token, err := GenerateToken("test-secret", "some-other-service", 1, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("test-secret", "finance-tracker", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", "finance-tracker", 1, time.Millisecond)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = ParseToken("test-secret", "finance-tracker", token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("test-secret", "finance-tracker", "not.a.token")
	assert.Error(t, err)
}
