//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"tagmytrophy/internal/domain/user"
	"tagmytrophy/internal/pkg/clock"
	"tagmytrophy/internal/pkg/config"
	"tagmytrophy/internal/pkg/jwt"
	"tagmytrophy/internal/pkg/password"
	"tagmytrophy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@tagmytrophy.test"
	adminPassword = "correct horse battery staple"
)

func newSessionManager(t *testing.T, admin config.AdminConfig) (usecase.SessionManager, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	jwtService := jwt.NewService("test-secret", 24*time.Hour, clk)

	sessions, err := usecase.NewSessionManager(admin, jwtService)
	require.NoError(t, err)
	return sessions, clk
}

func TestLogin(t *testing.T) {
	hash, err := password.Hash(adminPassword)
	require.NoError(t, err)
	admin := config.AdminConfig{Email: adminEmail, PasswordHash: hash}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		sessions, _ := newSessionManager(t, admin)
		token, err := sessions.Login(adminEmail, adminPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		sessions, _ := newSessionManager(t, admin)
		_, err := sessions.Login(adminEmail, "wrong")
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected with the same error", func(t *testing.T) {
		sessions, _ := newSessionManager(t, admin)
		_, err := sessions.Login("someone@else.test", adminPassword)
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("plain password config is hashed at boot", func(t *testing.T) {
		sessions, _ := newSessionManager(t, config.AdminConfig{
			Email:    adminEmail,
			Password: adminPassword,
		})
		token, err := sessions.Login(adminEmail, adminPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unconfigured credentials fail loudly", func(t *testing.T) {
		sessions, _ := newSessionManager(t, config.AdminConfig{})
		_, err := sessions.Login(adminEmail, adminPassword)
		assert.ErrorIs(t, err, usecase.ErrMissingAdminConfig)
	})

	t.Run("padded admin email is normalized at boot", func(t *testing.T) {
		sessions, _ := newSessionManager(t, config.AdminConfig{
			Email:        "  " + adminEmail + "  ",
			PasswordHash: hash,
		})
		token, err := sessions.Login(adminEmail, adminPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("malformed admin email fails at boot", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		jwtService := jwt.NewService("test-secret", 24*time.Hour, clk)

		_, err := usecase.NewSessionManager(config.AdminConfig{
			Email:        "not-an-email",
			PasswordHash: hash,
		}, jwtService)
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash(adminPassword)
	require.NoError(t, err)
	admin := config.AdminConfig{Email: adminEmail, PasswordHash: hash}

	t.Run("valid token comes back refreshed", func(t *testing.T) {
		sessions, clk := newSessionManager(t, admin)
		token, err := sessions.Login(adminEmail, adminPassword)
		require.NoError(t, err)

		clk.Advance(time.Hour)
		result := sessions.Verify(token)
		assert.True(t, result.Valid)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("expired token is just invalid", func(t *testing.T) {
		sessions, clk := newSessionManager(t, admin)
		token, err := sessions.Login(adminEmail, adminPassword)
		require.NoError(t, err)

		clk.Advance(25 * time.Hour)
		result := sessions.Verify(token)
		assert.False(t, result.Valid)
		assert.Empty(t, result.Token)
	})

	t.Run("garbage token is just invalid", func(t *testing.T) {
		sessions, _ := newSessionManager(t, admin)
		result := sessions.Verify("garbage")
		assert.False(t, result.Valid)
	})
}
