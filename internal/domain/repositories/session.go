package repositories

import (
	"context"

	"docuforge/internal/domain/models"
)

// SessionRepository maps bearer tokens to users. Sessions live for the
// life of the process; there is no expiry or refresh.
type SessionRepository interface {
	// Put stores a session under the given token.
	Put(ctx context.Context, token string, user *models.User) error

	// Get returns the user for a token, or domain.ErrNotFound.
	Get(ctx context.Context, token string) (*models.User, error)
}
