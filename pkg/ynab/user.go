package ynab

import (
	"context"
	"net/http"

	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/pkg/errors"
)

// userService implements the UserService interface
type userService struct {
	client *Client
}

// Get retrieves the authenticated user. Useful as a cheap credential check.
func (s *userService) Get(ctx context.Context) (*User, error) {
	var result userData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   "user",
	}

	if err := s.client.execute(ctx, "get_user", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return result.User, nil
}
