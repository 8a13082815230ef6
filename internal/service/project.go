package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docuforge/internal/domain"
	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
	"docuforge/internal/query"
)

// Validation messages, first-failing rule wins. Field order on create
// is name, description, type; on update each supplied field is checked
// in the same order.
const (
	msgProjectName        = "Project name must be at least 2 characters."
	msgProjectDescription = "Project description must be at least 5 characters."
	msgProjectStatus      = "Project status must be one of: active, draft, archived."
	msgProjectType        = "Project type must be one of: api, dashboard, infrastructure, finance, compliance, migration, general."
	msgProjectDocsCount   = "Docs count must be zero or greater."
	msgProjectUpdateEmpty = "Provide at least one field to update."
	msgProjectConfirm     = "Project name confirmation does not match."
	msgProjectNotFound    = "Project not found."
)

// CreateProjectRequest is the POST /projects payload.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// UpdateProjectRequest is the PATCH /projects/{id} payload. Nil fields
// are left untouched; unknown body fields are ignored upstream.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Type        *string `json:"type"`
	DocsCount   *int    `json:"docsCount"`
}

// DeleteProjectRequest is the DELETE /projects/{id} payload. The
// confirmation must match the project name exactly, case included.
type DeleteProjectRequest struct {
	ConfirmName string `json:"confirmName"`
}

// projectCollection configures the query engine for the project list.
var projectCollection = query.Collection[models.Project]{
	Statuses: models.ProjectStatusValues(),
	Types:    models.ProjectTypeValues(),
	StatusOf: func(p models.Project) string { return string(p.Status) },
	TypeOf:   func(p models.Project) string { return string(p.Type) },
	SearchFields: func(p models.Project) []string {
		return []string{p.Name, p.Description}
	},
	SortKeys: []query.SortKey[models.Project]{
		{Name: "updatedAt", Compare: func(a, b models.Project) int { return a.UpdatedAt.Compare(b.UpdatedAt) }},
		{Name: "createdAt", Compare: func(a, b models.Project) int { return a.CreatedAt.Compare(b.CreatedAt) }},
		{Name: "name", Compare: func(a, b models.Project) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}},
	},
}

// ProjectService owns all project mutations and the project listing.
type ProjectService struct {
	projectRepo repositories.ProjectRepository
	activity    *ActivityService
	logger      *slog.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo repositories.ProjectRepository, activity *ActivityService, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		activity:    activity,
		logger:      logger,
	}
}

// List runs the filter/sort/paginate pipeline over the collection.
func (s *ProjectService) List(ctx context.Context, params query.Params) ([]models.Project, query.Meta, error) {
	if err := projectCollection.Validate(params); err != nil {
		return nil, query.Meta{}, err
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, query.Meta{}, err
	}

	page, meta := projectCollection.Run(projects, params)
	return page, meta, nil
}

// Get retrieves a project by id. A stored record failing the schema is
// treated as absent.
func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := project.Validate(); err != nil {
		return nil, domain.NotFound(msgProjectNotFound)
	}
	return project, nil
}

// Create validates the payload and inserts a new draft project.
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest, actor models.Actor) (*models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if err := validation.Validate(name,
		validation.Required.Error(msgProjectName),
		validation.RuneLength(2, 0).Error(msgProjectName),
	); err != nil {
		return nil, domain.Validation(err.Error())
	}

	description := strings.TrimSpace(req.Description)
	if err := validation.Validate(description,
		validation.Required.Error(msgProjectDescription),
		validation.RuneLength(5, 0).Error(msgProjectDescription),
	); err != nil {
		return nil, domain.Validation(err.Error())
	}

	projectType := models.ProjectTypeGeneral
	if req.Type != "" {
		if err := validation.Validate(req.Type,
			validation.In(enumValues(models.ProjectTypeValues())...).Error(msgProjectType),
		); err != nil {
			return nil, domain.Validation(err.Error())
		}
		projectType = models.ProjectType(req.Type)
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Status:      models.ProjectStatusDraft,
		Type:        projectType,
		DocsCount:   0,
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerID:     actor.ID,
	}

	if err := s.projectRepo.Insert(ctx, project); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, models.ActivityProjectCreated, project, actor, now)

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"actor_id", actor.ID,
	)
	return project, nil
}

// Update applies a partial update. At least one recognized field must
// be supplied; the merged record is re-validated against the full
// schema before it is stored.
func (s *ProjectService) Update(ctx context.Context, id string, req *UpdateProjectRequest, actor models.Actor) (*models.Project, error) {
	project, err := s.projectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name == nil && req.Description == nil && req.Status == nil && req.Type == nil && req.DocsCount == nil {
		return nil, domain.Validation(msgProjectUpdateEmpty)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validation.Validate(name,
			validation.Required.Error(msgProjectName),
			validation.RuneLength(2, 0).Error(msgProjectName),
		); err != nil {
			return nil, domain.Validation(err.Error())
		}
		project.Name = name
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if err := validation.Validate(description,
			validation.Required.Error(msgProjectDescription),
			validation.RuneLength(5, 0).Error(msgProjectDescription),
		); err != nil {
			return nil, domain.Validation(err.Error())
		}
		project.Description = description
	}

	if req.Status != nil {
		if err := validation.Validate(*req.Status,
			validation.Required.Error(msgProjectStatus),
			validation.In(enumValues(models.ProjectStatusValues())...).Error(msgProjectStatus),
		); err != nil {
			return nil, domain.Validation(err.Error())
		}
		project.Status = models.ProjectStatus(*req.Status)
	}

	if req.Type != nil {
		if err := validation.Validate(*req.Type,
			validation.Required.Error(msgProjectType),
			validation.In(enumValues(models.ProjectTypeValues())...).Error(msgProjectType),
		); err != nil {
			return nil, domain.Validation(err.Error())
		}
		project.Type = models.ProjectType(*req.Type)
	}

	if req.DocsCount != nil {
		if err := validation.Validate(*req.DocsCount,
			validation.Min(0).Error(msgProjectDocsCount),
		); err != nil {
			return nil, domain.Validation(err.Error())
		}
		project.DocsCount = *req.DocsCount
	}

	now := time.Now().UTC()
	project.UpdatedAt = now

	// The per-field checks above should make this unreachable, but a
	// merge must never store an invalid record.
	if err := project.Validate(); err != nil {
		return nil, domain.Validation(err.Error())
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, models.ActivityProjectUpdated, project, actor, now)

	s.logger.Info("project updated",
		"id", project.ID,
		"name", project.Name,
		"actor_id", actor.ID,
	)
	return project, nil
}

// Delete removes a project after an exact name confirmation.
func (s *ProjectService) Delete(ctx context.Context, id string, req *DeleteProjectRequest, actor models.Actor) error {
	project, err := s.projectRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if req.ConfirmName != project.Name {
		return domain.Validation(msgProjectConfirm)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, models.ActivityProjectDeleted, project, actor, time.Time{})

	s.logger.Info("project deleted",
		"id", id,
		"name", project.Name,
		"actor_id", actor.ID,
	)
	return nil
}

func enumValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
