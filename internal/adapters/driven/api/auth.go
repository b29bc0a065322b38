package api

import (
	"context"
	"net/http"
	"time"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driven"
)

// userPayload is the wire form of a user.
type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Active   bool   `json:"is_active"`
}

func (p userPayload) toDomain() *domain.User {
	return &domain.User{
		ID:       p.ID,
		Username: p.Username,
		Email:    p.Email,
		FullName: p.FullName,
		Active:   p.Active,
	}
}

// Register creates a new account. It does not attach a token and does not
// log in; the session service composes registration with login.
func (c *Client) Register(ctx context.Context, req driven.RegisterRequest) (*domain.User, error) {
	payload := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name,omitempty"`
	}{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	}

	var out userPayload
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   payload,
		anon:   true,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   payload,
		anon:   true,
		out:    &out,
	})
	if err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Me resolves the currently attached token to its user.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out userPayload
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/me",
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// parseTime decodes the service's timestamps. They are ISO 8601, usually
// with an offset but occasionally without one.
func parseTime(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
