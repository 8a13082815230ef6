package models

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusDraft    ProjectStatus = "draft"
	ProjectStatusArchived ProjectStatus = "archived"
)

// ProjectStatuses lists every valid project status, in display order.
var ProjectStatuses = []ProjectStatus{
	ProjectStatusActive,
	ProjectStatusDraft,
	ProjectStatusArchived,
}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ProjectType categorizes what kind of documentation a project holds.
type ProjectType string

const (
	ProjectTypeAPI            ProjectType = "api"
	ProjectTypeDashboard      ProjectType = "dashboard"
	ProjectTypeInfrastructure ProjectType = "infrastructure"
	ProjectTypeFinance        ProjectType = "finance"
	ProjectTypeCompliance     ProjectType = "compliance"
	ProjectTypeMigration      ProjectType = "migration"
	ProjectTypeGeneral        ProjectType = "general"
)

// ProjectTypes lists every valid project type.
var ProjectTypes = []ProjectType{
	ProjectTypeAPI,
	ProjectTypeDashboard,
	ProjectTypeInfrastructure,
	ProjectTypeFinance,
	ProjectTypeCompliance,
	ProjectTypeMigration,
	ProjectTypeGeneral,
}

// ProjectStatusValues returns the status enum as plain strings, for
// filter validation and error messages.
func ProjectStatusValues() []string {
	values := make([]string, len(ProjectStatuses))
	for i, s := range ProjectStatuses {
		values[i] = string(s)
	}
	return values
}

// ProjectTypeValues returns the type enum as plain strings.
func ProjectTypeValues() []string {
	values := make([]string, len(ProjectTypes))
	for i, t := range ProjectTypes {
		values[i] = string(t)
	}
	return values
}

// Valid reports whether t is a known project type.
func (t ProjectType) Valid() bool {
	for _, known := range ProjectTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Project is a documentation workspace, the core user-facing resource.
type Project struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Status      ProjectStatus `json:"status" yaml:"status"`
	Type        ProjectType   `json:"type" yaml:"type"`
	DocsCount   int           `json:"docsCount" yaml:"docsCount"`
	UpdatedAt   time.Time     `json:"updatedAt" yaml:"updatedAt"`
	CreatedAt   time.Time     `json:"createdAt" yaml:"createdAt"`
	OwnerID     string        `json:"ownerId" yaml:"ownerId"`
}

// Validate checks the full record against the project schema. It guards
// reads and merged updates against a corrupted stored record.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required, validation.RuneLength(2, 0)),
		validation.Field(&p.Description, validation.Required, validation.RuneLength(5, 0)),
		validation.Field(&p.Status, validation.Required, validation.By(validProjectStatus)),
		validation.Field(&p.Type, validation.Required, validation.By(validProjectType)),
		validation.Field(&p.DocsCount, validation.Min(0)),
		validation.Field(&p.CreatedAt, validation.Required),
		validation.Field(&p.UpdatedAt, validation.Required),
		validation.Field(&p.OwnerID, validation.Required),
	)
}

var (
	errInvalidProjectStatus = errors.New("must be one of: active, draft, archived")
	errInvalidProjectType   = errors.New("must be one of: api, dashboard, infrastructure, finance, compliance, migration, general")
)

func validProjectStatus(value interface{}) error {
	status, _ := value.(ProjectStatus)
	if !status.Valid() {
		return errInvalidProjectStatus
	}
	return nil
}

func validProjectType(value interface{}) error {
	projectType, _ := value.(ProjectType)
	if !projectType.Valid() {
		return errInvalidProjectType
	}
	return nil
}
