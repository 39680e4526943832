package usecase

import (
	"tagmytrophy/internal/domain/user"
	"tagmytrophy/internal/pkg/config"
	"tagmytrophy/internal/pkg/errs"
	"tagmytrophy/internal/pkg/jwt"
	"tagmytrophy/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrMissingAdminConfig = errs.New("admin credentials not configured")
	ErrTokenIssue         = errs.New("token issue failed")
)

type VerifyResult struct {
	Valid bool
	// Token is a refreshed credential with a reset validity window,
	// present only when the input was valid.
	Token string
}

// SessionManager is the admin session surface: a single env-configured
// credential pair exchanged for self-contained 24h tokens. Logout is
// advisory only; issued tokens remain valid until expiry.
type SessionManager interface {
	Login(email, plainPassword string) (string, error)
	Verify(token string) VerifyResult
	Refresh(token string) (string, error)
}

type sessionManagerImpl struct {
	adminEmail string
	adminHash  string
	jwtService *jwt.Service
}

// NewSessionManager normalizes the configured admin email at boot so a
// malformed ADMIN_EMAIL fails startup rather than silently locking every
// login out.
func NewSessionManager(admin config.AdminConfig, jwtService *jwt.Service) (SessionManager, error) {
	adminEmail := ""
	if admin.Email != "" {
		email, err := user.NewEmail(admin.Email)
		if err != nil {
			return nil, errs.Wrap(err, "admin email")
		}
		adminEmail = email.Value()
	}

	hash := admin.PasswordHash
	if hash == "" && admin.Password != "" {
		var err error
		hash, err = password.Hash(admin.Password)
		if err != nil {
			return nil, err
		}
	}

	return &sessionManagerImpl{
		adminEmail: adminEmail,
		adminHash:  hash,
		jwtService: jwtService,
	}, nil
}

func (s *sessionManagerImpl) Login(email, plainPassword string) (string, error) {
	if s.adminEmail == "" || s.adminHash == "" {
		return "", ErrMissingAdminConfig
	}

	if email != s.adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := password.Compare(s.adminHash, plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(email)
	if err != nil {
		return "", errs.Mark(err, ErrTokenIssue)
	}
	return token, nil
}

// Verify collapses every failure mode (malformed, expired, bad signature)
// into Valid=false; callers never learn which. A valid token comes back
// with a refreshed replacement.
func (s *sessionManagerImpl) Verify(token string) VerifyResult {
	refreshed, err := s.jwtService.Refresh(token)
	if err != nil {
		return VerifyResult{Valid: false}
	}
	return VerifyResult{Valid: true, Token: refreshed}
}

func (s *sessionManagerImpl) Refresh(token string) (string, error) {
	return s.jwtService.Refresh(token)
}
