package service

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docuforge/internal/domain"
	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
)

// Activity feed limits.
const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

// ActivityService records project lifecycle events and serves the
// activity feed.
type ActivityService struct {
	activityRepo repositories.ActivityRepository
	logger       *slog.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(activityRepo repositories.ActivityRepository, logger *slog.Logger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Record appends an event for a project change. A zero occurredAt
// defaults to the current time. Recording never fails the mutation it
// describes; repository errors are logged and swallowed.
func (s *ActivityService) Record(ctx context.Context, action models.ActivityAction, project *models.Project, actor models.Actor, occurredAt time.Time) {
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	event := &models.ActivityEvent{
		ID:           uuid.NewString(),
		Action:       action,
		ResourceType: models.ResourceTypeProject,
		ResourceID:   project.ID,
		ResourceName: project.Name,
		ActorID:      actor.ID,
		ActorName:    actor.Name,
		OccurredAt:   occurredAt,
	}

	if err := s.activityRepo.Append(ctx, event); err != nil {
		s.logger.Error("failed to record activity",
			"action", action,
			"resource_id", project.ID,
			"error", err,
		)
	}
}

// List returns the newest events, most recent first. A zero limit
// defaults to DefaultActivityLimit. Events failing schema validation
// are dropped from the result.
func (s *ActivityService) List(ctx context.Context, limit int) ([]models.ActivityEvent, error) {
	if limit == 0 {
		limit = DefaultActivityLimit
	}
	if err := validation.Validate(limit,
		validation.Min(1).Error("Limit must be a positive integer."),
		validation.Max(MaxActivityLimit).Error("Limit must be at most 100."),
	); err != nil {
		return nil, domain.Validation(err.Error())
	}

	events, err := s.activityRepo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	valid := make([]models.ActivityEvent, 0, len(events))
	for _, event := range events {
		if event.Validate() != nil {
			continue
		}
		valid = append(valid, event)
	}
	return valid, nil
}
