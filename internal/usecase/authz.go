package usecase

import (
	"context"
	"strings"

	"tagmytrophy/internal/domain/user"
	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/pkg/errs"
	"tagmytrophy/internal/usecase/queries"
)

var (
	ErrNotAuthenticated = errs.New("not authenticated")
	ErrForbidden        = errs.New("administrator role required")
)

// Authorizer is the single role predicate shared by every handler that
// needs an admin check. The role comes from the caller's profile row, not
// from the session token, so demoting a profile takes effect immediately.
type Authorizer interface {
	RequireAdmin(ctx context.Context, email string) error
}

type ProfileRoleReads interface {
	FindByEmail(ctx context.Context, email string) (*queries.ProfileView, error)
}

type authorizerImpl struct {
	profiles ProfileRoleReads
}

func NewAuthorizer(profiles ProfileRoleReads) Authorizer {
	return &authorizerImpl{profiles: profiles}
}

func (a *authorizerImpl) RequireAdmin(ctx context.Context, email string) error {
	if email == "" {
		return ErrNotAuthenticated
	}

	profile, err := a.profiles.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrForbidden
		}
		return err
	}

	role, err := user.NewRole(profile.Role)
	if err != nil || role != user.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// StoryURL builds the canonical public URL a tag's QR image encodes.
func StoryURL(siteBaseURL, slug string) string {
	return strings.TrimRight(siteBaseURL, "/") + "/story/" + slug
}
