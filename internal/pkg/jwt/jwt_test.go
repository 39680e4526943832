//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"tagmytrophy/internal/pkg/clock"
	"tagmytrophy/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestService(t *testing.T) (*jwt.Service, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return jwt.NewService(testSecret, 24*time.Hour, clk), clk
}

func TestIssueAndValidate(t *testing.T) {
	svc, _ := newTestService(t)

	token, err := svc.Issue("admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestValidateFailures(t *testing.T) {
	svc, clk := newTestService(t)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("a-different-secret", 24*time.Hour, clk)
		token, err := other.Issue("admin@example.com")
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.Issue("admin@example.com")
		require.NoError(t, err)

		clk.Advance(24*time.Hour + time.Minute)
		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("valid just before expiry", func(t *testing.T) {
		token, err := svc.Issue("admin@example.com")
		require.NoError(t, err)

		clk.Advance(24*time.Hour - time.Minute)
		_, err = svc.Validate(token)
		assert.NoError(t, err)
	})
}

func TestRefresh(t *testing.T) {
	svc, clk := newTestService(t)

	t.Run("resets the validity window", func(t *testing.T) {
		token, err := svc.Issue("admin@example.com")
		require.NoError(t, err)

		clk.Advance(23 * time.Hour)
		refreshed, err := svc.Refresh(token)
		require.NoError(t, err)

		// The original dies an hour from now; the refreshed one survives.
		clk.Advance(2 * time.Hour)
		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)

		claims, err := svc.Validate(refreshed)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
	})

	t.Run("refuses an expired input", func(t *testing.T) {
		token, err := svc.Issue("admin@example.com")
		require.NoError(t, err)

		clk.Advance(25 * time.Hour)
		_, err = svc.Refresh(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
