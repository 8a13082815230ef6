package memory

import (
	"context"
	"sync"

	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
)

// DefaultActivityCapacity bounds the activity log.
const DefaultActivityCapacity = 5000

// ActivityLog is a bounded, append-only event log, newest first.
// Once capacity is exceeded the oldest entries are dropped.
type ActivityLog struct {
	mu       sync.RWMutex
	capacity int
	events   []models.ActivityEvent
}

// NewActivityLog creates an activity log with the given capacity.
// A non-positive capacity falls back to DefaultActivityCapacity.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityLog{capacity: capacity}
}

var _ repositories.ActivityRepository = (*ActivityLog)(nil)

// Append prepends the event, truncating to capacity.
func (l *ActivityLog) Append(ctx context.Context, event *models.ActivityEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append([]models.ActivityEvent{*event}, l.events...)
	if len(l.events) > l.capacity {
		l.events = l.events[:l.capacity]
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (l *ActivityLog) Recent(ctx context.Context, limit int) ([]models.ActivityEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit > len(l.events) {
		limit = len(l.events)
	}
	snapshot := make([]models.ActivityEvent, limit)
	copy(snapshot, l.events[:limit])
	return snapshot, nil
}
