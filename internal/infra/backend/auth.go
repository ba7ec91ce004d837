package backend

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

func (c *Client) Login(ctx context.Context, email, password string) (*entity.Identity, error) {
	return c.authenticate(ctx, "/auth/login", loginRequest{Email: email, Password: password})
}

func (c *Client) Register(ctx context.Context, req service.RegisterRequest) (*entity.Identity, error) {
	return c.authenticate(ctx, "/auth/register", registerRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role.String(),
	})
}

func (c *Client) authenticate(ctx context.Context, path string, payload any) (*entity.Identity, error) {
	req, err := jsonRequest(http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}

	var resp authResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.Errorf("%s returned no token", path)
	}

	return resp.toIdentity(), nil
}

// Logout calls POST /auth/logout with the current token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/auth/logout"}, nil)
}
