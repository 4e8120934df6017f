// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"

	"inhome/internal/domain"
)

// ErrMissingCredentials indicates a login attempt with an empty email or
// password. It is rejected locally, before any request is sent.
var ErrMissingCredentials = errors.New("email and password are required")

// AuthService handles login, session bootstrap and account operations
// against the upstream directory.
type AuthService struct {
	dir   domain.Directory
	store domain.SessionStore
}

// NewAuthService creates an AuthService over the given directory and
// session store.
func NewAuthService(dir domain.Directory, store domain.SessionStore) *AuthService {
	return &AuthService{dir: dir, store: store}
}

// credentialContext decorates ctx with the latest session credential so the
// outgoing request selects its Authorization scheme from current state.
// Called per operation, never cached: a role change between requests must
// take effect immediately.
func credentialContext(ctx context.Context, store domain.SessionStore) context.Context {
	token, user := store.Load(ctx)
	if token == "" {
		return ctx
	}
	cred := domain.Credential{Token: token}
	if user != nil {
		cred.Role = domain.ParseRole(user.Role)
	}
	return domain.WithCredential(ctx, cred)
}

// Login authenticates against the upstream service and persists the token
// and user together. On failure the session is left untouched and the
// returned error carries the server-reported message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	token, user, err := s.dir.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, token, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Resolve performs the session bootstrap and always terminates with a
// definite answer:
//   - no token: unauthenticated, zero network calls
//   - token and cached user: that user, zero network calls
//   - token only: exactly one profile fetch; success caches and adopts the
//     returned user, failure clears the session and resolves
//     unauthenticated (a stale token is demoted silently, not surfaced)
func (s *AuthService) Resolve(ctx context.Context) (*domain.User, error) {
	token, user := s.store.Load(ctx)
	if token == "" {
		return nil, nil
	}
	if user != nil {
		return user, nil
	}

	user, err := s.dir.GetProfile(domain.WithCredential(ctx, domain.Credential{Token: token}))
	if err != nil {
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}
	if err := s.store.Save(ctx, token, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session unconditionally. It always succeeds.
func (s *AuthService) Logout(ctx context.Context) {
	_ = s.store.Clear(ctx)
}

// UpdateProfile applies a partial profile update and refreshes the cached
// user on success. A failed update leaves the cache as it was.
func (s *AuthService) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.User, error) {
	token, _ := s.store.Load(ctx)

	user, err := s.dir.UpdateProfile(credentialContext(ctx, s.store), patch)
	if err != nil {
		return nil, err
	}
	if token != "" {
		if err := s.store.Save(ctx, token, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// UpdatePassword changes the password of the given account.
func (s *AuthService) UpdatePassword(ctx context.Context, userID string, change domain.PasswordChange) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	if change.NewPassword == "" {
		return errors.New("new password is required")
	}
	return s.dir.UpdatePassword(credentialContext(ctx, s.store), userID, change)
}

// CreateUser registers a new account through the admin endpoint.
func (s *AuthService) CreateUser(ctx context.Context, fields domain.NewUser) (*domain.User, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return nil, errors.New("name is required")
	}
	if strings.TrimSpace(fields.Email) == "" {
		return nil, errors.New("email is required")
	}
	if fields.Password == "" {
		return nil, errors.New("password is required")
	}
	return s.dir.CreateUser(credentialContext(ctx, s.store), fields)
}

// FreezeUser soft-deactivates an account. The operation is reversible
// upstream; nothing is deleted.
func (s *AuthService) FreezeUser(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	return s.dir.FreezeUser(credentialContext(ctx, s.store), userID)
}
