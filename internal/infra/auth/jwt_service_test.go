package auth

import (
	"testing"

	"easyshop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken(42, []string{"user", "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
}

func TestJWTService_ValidateToken_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "another-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken(7, []string{"user"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
