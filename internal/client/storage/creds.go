package storage

import (
	"context"

	"github.com/iudanet/gocial-client/pkg/api"
)

// CredentialStore defines interface for persisting session credentials
// on the client. Three logical keys survive process restarts: the access
// token, the refresh token and a JSON-serialized copy of the user record.
// Implementations must serialize writes so that a refresh completing
// concurrently with a logout cannot leave a partial session behind.
type CredentialStore interface {
	// SetAccessToken stores the access token (called by the refresh flow)
	SetAccessToken(ctx context.Context, token string) error

	// AccessToken returns the stored access token.
	// Returns ErrNotFound if no token is stored.
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken returns the stored refresh token.
	// Returns ErrNotFound if no token is stored.
	RefreshToken(ctx context.Context) (string, error)

	// SetUser overwrites the cached user record
	SetUser(ctx context.Context, user *api.User) error

	// User returns the cached user record.
	// Returns ErrNotFound if none is stored.
	User(ctx context.Context) (*api.User, error)

	// SaveSession stores all three keys in a single transaction
	// (login / register)
	SaveSession(ctx context.Context, accessToken, refreshToken string, user *api.User) error

	// Clear removes all three keys atomically (logout, failed refresh)
	Clear(ctx context.Context) error

	// ClientID returns a stable install identifier, generating and
	// persisting one on first use
	ClientID(ctx context.Context) (string, error)
}
