package ports

import "context"

// SessionStore binds opaque session tokens to user identities. Bindings are
// created on login, resolved on every authenticated request and destroyed on
// logout; expiry is handled by the backing store's TTL.
type SessionStore interface {
	Put(ctx context.Context, token, userID string) error
	// Get resolves a token to a user id. Returns domain.ErrSessionNotFound
	// when the token is unknown or expired.
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
