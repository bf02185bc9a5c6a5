package gateway

import (
	"context"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login proxies the credential check to the gateway. This service never sees
// a password beyond forwarding it; the returned token and role are what the
// browser stores.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	env, err := c.post(ctx, "/auth/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		Token:          env.Token,
		Role:           env.Role,
		ExpirationTime: env.ExpirationTime,
	}, nil
}

// Profile resolves the acting user's identity from their token.
func (c *Client) Profile(ctx context.Context, token string) (*UserDTO, error) {
	env, err := c.get(ctx, "/users/get-logged-in-profile-info", token)
	if err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, NewError(KindAuth, "", nil)
	}
	return env.User, nil
}

// Dashboard fetches the admin aggregate. The gateway enforces the role; a
// 403 comes back as KindForbidden.
func (c *Client) Dashboard(ctx context.Context, token string) (*DashboardDTO, error) {
	env, err := c.get(ctx, "/admin/dashboard", token)
	if err != nil {
		return nil, err
	}
	if env.Dashboard == nil {
		return nil, NewError(KindUnavailable, "No data available", nil)
	}
	return env.Dashboard, nil
}
