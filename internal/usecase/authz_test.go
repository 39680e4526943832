//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/usecase"
	"tagmytrophy/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type profileRoleStub struct {
	profile *queries.ProfileView
	err     error
}

func (s *profileRoleStub) FindByEmail(_ context.Context, _ string) (*queries.ProfileView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func profileWithRole(role string) *queries.ProfileView {
	return &queries.ProfileView{
		ID:    uuid.New(),
		Email: "admin@tagmytrophy.test",
		Role:  role,
	}
}

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin profile passes", func(t *testing.T) {
		authz := usecase.NewAuthorizer(&profileRoleStub{profile: profileWithRole("admin")})
		assert.NoError(t, authz.RequireAdmin(ctx, "admin@tagmytrophy.test"))
	})

	t.Run("empty email is not authenticated", func(t *testing.T) {
		authz := usecase.NewAuthorizer(&profileRoleStub{})
		assert.ErrorIs(t, authz.RequireAdmin(ctx, ""), usecase.ErrNotAuthenticated)
	})

	t.Run("missing profile is forbidden", func(t *testing.T) {
		authz := usecase.NewAuthorizer(&profileRoleStub{
			err: infra.WrapRepoErr("no row", nil, infra.KindNotFound),
		})
		assert.ErrorIs(t, authz.RequireAdmin(ctx, "ghost@tagmytrophy.test"), usecase.ErrForbidden)
	})

	t.Run("non-admin roles are forbidden", func(t *testing.T) {
		for _, role := range []string{"customer", "superuser", ""} {
			authz := usecase.NewAuthorizer(&profileRoleStub{profile: profileWithRole(role)})
			assert.ErrorIs(t, authz.RequireAdmin(ctx, "someone@tagmytrophy.test"),
				usecase.ErrForbidden, "role %q", role)
		}
	})

	t.Run("store failures pass through unmasked", func(t *testing.T) {
		dbErr := infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure)
		authz := usecase.NewAuthorizer(&profileRoleStub{err: dbErr})

		err := authz.RequireAdmin(ctx, "admin@tagmytrophy.test")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrForbidden)
	})
}
