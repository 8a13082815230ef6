package repositories

import (
	"context"

	"docuforge/internal/domain/models"
)

// ActivityRepository is the bounded, append-only activity log,
// ordered newest first.
type ActivityRepository interface {
	// Append prepends an event. Once the log exceeds its capacity the
	// oldest entries are dropped.
	Append(ctx context.Context, event *models.ActivityEvent) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]models.ActivityEvent, error)
}
