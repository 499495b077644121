package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siakad/config"
	"siakad/internal/domain/service"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret"
	cfg.SecretKey.Refresh = "test_refresh_secret"
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = 7 * 24 * time.Hour
	cfg.Token.SetPasswordTTL = time.Hour

	return cfg
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)

	assert.Error(t, err)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(42, "adminSD")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "adminSD", claims.Role)
}

func TestJWTService_RefreshTokenUsesDistinctSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	refreshToken, err := svc.GenerateRefreshToken(7, "siswa")
	require.NoError(t, err)

	// A refresh token must not verify against the access secret.
	_, err = svc.ParseAccessToken(refreshToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	claims, err := svc.ParseRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "siswa", claims.Role)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.Token.AccessTTL = -time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(1, "siswa")
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_SetPasswordTokenCarriesOnlyUserID(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := svc.GenerateSetPasswordToken(9)
	require.NoError(t, err)

	claims, err := svc.ParseSetPasswordToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)
	assert.Empty(t, claims.Role)
}

func TestJWTService_RefreshTokenTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenTTL())
}
