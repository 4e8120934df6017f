// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"strings"
)

// Role is the privilege level of a dashboard account.
type Role string

// Known roles. The upstream service only ever issues these two.
const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole maps an upstream role string to a Role. Matching is
// case-insensitive; anything that is not superadmin is a plain admin.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleSuperAdmin)) {
		return RoleSuperAdmin
	}
	return RoleAdmin
}

// AuthScheme returns the Authorization scheme the upstream API expects for
// this role. The mapping is total: every role resolves to a scheme.
func (r Role) AuthScheme() string {
	if r == RoleSuperAdmin {
		return "Super"
	}
	return "Bearer"
}

// User represents a dashboard account as returned by the upstream API.
// Accounts are never hard-deleted; IsFrozen marks a soft deactivation.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
	IsFrozen bool   `json:"isFreezed"`
}

// ProfilePatch is a partial profile update. Nil fields are left unchanged.
type ProfilePatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// PasswordChange carries a password update for a user.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// NewUser carries the fields for an administrator-created account.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Credential is the authentication material attached to outgoing upstream
// requests: the opaque token plus the role that selects its scheme.
type Credential struct {
	Token string
	Role  Role
}

type credentialKey struct{}

// WithCredential returns a context carrying cred for outgoing upstream calls.
func WithCredential(ctx context.Context, cred Credential) context.Context {
	return context.WithValue(ctx, credentialKey{}, cred)
}

// CredentialFromContext returns the credential attached to ctx, if any.
func CredentialFromContext(ctx context.Context) (Credential, bool) {
	cred, ok := ctx.Value(credentialKey{}).(Credential)
	return cred, ok
}

// Directory defines the port for account and profile operations on the
// upstream service.
type Directory interface {
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetProfile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, patch ProfilePatch) (*User, error)
	UpdatePassword(ctx context.Context, userID string, change PasswordChange) error
	CreateUser(ctx context.Context, fields NewUser) (*User, error)
	FreezeUser(ctx context.Context, userID string) error
}

// SessionStore defines the port for the durable credential cache. Load
// returns the persisted token and cached user; either may be absent. Save
// persists both together and Clear removes both.
type SessionStore interface {
	Load(ctx context.Context) (token string, user *User)
	Save(ctx context.Context, token string, user *User) error
	Clear(ctx context.Context) error
}
