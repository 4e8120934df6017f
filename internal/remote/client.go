// Package remote implements the driven adapter for the upstream in-home
// REST service. All reads and writes of users and products go through here.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inhome/internal/domain"
)

// genericErrorMessage is surfaced when the upstream reports a failure
// without a usable message payload.
const genericErrorMessage = "the server reported an error"

// Client talks to the upstream REST service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL. Per-request authorization is
// handled by the transport, which reads the credential from each request's
// context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: authTransport{base: http.DefaultTransport},
		},
	}
}

// Ensure the ports are met.
var _ domain.Directory = (*Client)(nil)
var _ domain.Catalog = (*Client)(nil)

// authTransport attaches the Authorization header to every outgoing request.
// The scheme is chosen from the credential carried by the request context,
// so a role change between requests is honoured immediately. Requests
// without a token go out unauthenticated.
type authTransport struct {
	base http.RoundTripper
}

func (t authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if cred, ok := domain.CredentialFromContext(req.Context()); ok && cred.Token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", cred.Role.AuthScheme()+" "+cred.Token)
	}
	return t.base.RoundTrip(req)
}

// APIError is a structured failure reported by the upstream service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether the upstream rejected the credential.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// do issues one request and decodes a JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, falling back to a
// generic message when the body carries no usable message field.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: genericErrorMessage}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.Error != "":
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}
