package models

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ActivityAction names the project lifecycle change an event records.
type ActivityAction string

const (
	ActivityProjectCreated ActivityAction = "project.created"
	ActivityProjectUpdated ActivityAction = "project.updated"
	ActivityProjectDeleted ActivityAction = "project.deleted"
)

// Valid reports whether a is a known activity action.
func (a ActivityAction) Valid() bool {
	switch a {
	case ActivityProjectCreated, ActivityProjectUpdated, ActivityProjectDeleted:
		return true
	}
	return false
}

// ResourceTypeProject is the only resource type the activity log records.
const ResourceTypeProject = "project"

// ActivityEvent is an append-only audit-log entry for a project change.
// Events are never mutated after insertion.
type ActivityEvent struct {
	ID           string         `json:"id" yaml:"id"`
	Action       ActivityAction `json:"action" yaml:"action"`
	ResourceType string         `json:"resourceType" yaml:"resourceType"`
	ResourceID   string         `json:"resourceId" yaml:"resourceId"`
	ResourceName string         `json:"resourceName" yaml:"resourceName"`
	ActorID      string         `json:"actorId" yaml:"actorId"`
	ActorName    string         `json:"actorName" yaml:"actorName"`
	OccurredAt   time.Time      `json:"occurredAt" yaml:"occurredAt"`
}

// Validate checks the event shape. Reads drop events that fail it.
func (e ActivityEvent) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.Required),
		validation.Field(&e.Action, validation.Required, validation.By(validActivityAction)),
		validation.Field(&e.ResourceType, validation.Required, validation.In(ResourceTypeProject)),
		validation.Field(&e.ResourceID, validation.Required),
		validation.Field(&e.ResourceName, validation.Required),
		validation.Field(&e.ActorID, validation.Required),
		validation.Field(&e.ActorName, validation.Required),
		validation.Field(&e.OccurredAt, validation.Required),
	)
}

var errInvalidActivityAction = errors.New("must be one of: project.created, project.updated, project.deleted")

func validActivityAction(value interface{}) error {
	action, _ := value.(ActivityAction)
	if !action.Valid() {
		return errInvalidActivityAction
	}
	return nil
}
