package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()

	tokenString, err := s.IssueAccessToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	userID, err := s.VerifyAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	s := newTestService()

	tokenString, err := s.IssueRefreshToken("user-2")
	require.NoError(t, err)

	userID, err := s.VerifyRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}

func TestExpiredTokenFailsVerification(t *testing.T) {
	s := NewService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	tokenString, err := s.IssueAccessToken("user-1")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestKindsUseIndependentSecrets(t *testing.T) {
	s := newTestService()

	accessToken, err := s.IssueAccessToken("user-1")
	require.NoError(t, err)
	refreshToken, err := s.IssueRefreshToken("user-1")
	require.NoError(t, err)

	_, err = s.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenFailsVerification(t *testing.T) {
	s := newTestService()

	tokenString, err := s.IssueAccessToken("user-1")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(tokenString + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.VerifyAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
