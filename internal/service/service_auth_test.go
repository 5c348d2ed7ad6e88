package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-sync/internal/config"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/utils"
)

func newTestAuthService(duration time.Duration) AuthService {
	return NewAuthService(config.ServerConfig{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "case-authority",
		TokenDuration: duration,
	}, logger.Nop())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	token, err := svc.CreateToken(context.Background(), 7)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.OrgID)
}

func TestAuthService_ParseTokenErrors(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	t.Run("expired", func(t *testing.T) {
		expired, err := utils.GenerateJWTToken("case-authority", 7, -time.Minute, "sign-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), expired.SignedString)

		assert.ErrorIs(t, err, ErrTokenIsExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := utils.GenerateJWTToken("someone-else", 7, time.Hour, "sign-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), other.SignedString)

		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ParseToken(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}

func TestAuthService_CreateTokenWithoutKey(t *testing.T) {
	svc := NewAuthService(config.ServerConfig{TokenIssuer: "case-authority", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), 7)

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
