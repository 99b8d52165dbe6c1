package gateway

import (
	"context"
	"net/url"

	"github.com/Zomujo/dial4inclusion/internal/domain"
)

// AuthResult is the payload of a successful login or registration.
type AuthResult struct {
	User        domain.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// RegisterInput describes a self-service registration.
type RegisterInput struct {
	Email    string           `json:"email"`
	Password string           `json:"password"`
	FullName string           `json:"fullName"`
	Role     domain.Role      `json:"role,omitempty"`
	District *domain.District `json:"district,omitempty"`
}

type loginRequest struct {
	UserIdentifier string `json:"userIdentifier"`
	Password       string `json:"password"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, userIdentifier, password string) (*AuthResult, error) {
	var result AuthResult
	body := loginRequest{UserIdentifier: userIdentifier, Password: password}
	if err := c.post(ctx, "/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account and returns the issued session.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	var result AuthResult
	if err := c.post(ctx, "/auth/register", "", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile fetches the current user for the given token.
func (c *Client) Profile(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/auth/me", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches a single user by id, used to backfill denormalized
// createdBy/assignedTo references.
func (c *Client) GetUser(ctx context.Context, token, id string) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/users/"+url.PathEscape(id), token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type userRows struct {
	Rows []domain.User `json:"rows"`
}

// ListUsers fetches users by role, optionally scoped to a district.
func (c *Client) ListUsers(ctx context.Context, token string, role domain.Role, district *domain.District) ([]domain.User, error) {
	values := url.Values{}
	values.Set("role", string(role))
	if district != nil {
		values.Set("district", string(*district))
	}
	var result userRows
	if err := c.get(ctx, "/users"+encodeQuery(values), token, &result); err != nil {
		return nil, err
	}
	return result.Rows, nil
}
