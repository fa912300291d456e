package ports

import (
	"context"

	"github.com/sun-min-kim/TaskManagementAPI/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and issues an opaque session token bound to
	// the user. Unknown username and wrong password are indistinguishable.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout destroys the session binding for token.
	Logout(ctx context.Context, token string) error
}
