package remote

import (
	"context"
	"net/http"
	"net/url"

	"inhome/internal/domain"
)

// Login exchanges credentials for a token and the account record.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &out); err != nil {
		return "", nil, err
	}
	if out.Token == "" || out.User == nil {
		return "", nil, &APIError{Status: http.StatusBadGateway, Message: genericErrorMessage}
	}
	return out.Token, out.User, nil
}

// GetProfile fetches the account behind the current credential.
func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	var out struct {
		User *domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/GetProfile", nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, &APIError{Status: http.StatusBadGateway, Message: genericErrorMessage}
	}
	return out.User, nil
}

// UpdateProfile applies a partial profile update and returns the fresh record.
func (c *Client) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.User, error) {
	var out struct {
		User *domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "/users/UpdateProfile", patch, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, &APIError{Status: http.StatusBadGateway, Message: genericErrorMessage}
	}
	return out.User, nil
}

// UpdatePassword changes the password of the given account.
func (c *Client) UpdatePassword(ctx context.Context, userID string, change domain.PasswordChange) error {
	return c.do(ctx, http.MethodPatch, "/users/UpdatePassword/"+url.PathEscape(userID), change, nil)
}

// CreateUser registers a new account through the admin endpoint. Some
// upstream deployments omit the created record from the response, so a nil
// user with a nil error means created-but-not-returned.
func (c *Client) CreateUser(ctx context.Context, fields domain.NewUser) (*domain.User, error) {
	var out struct {
		User *domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/createUserByAdmin", fields, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// FreezeUser soft-deactivates an account. The upstream route uses a DELETE
// verb (and its historical spelling) but the operation is reversible and
// non-destructive.
func (c *Client) FreezeUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/users/FreazUser/"+url.PathEscape(userID), nil, nil)
}
