package repositories

import (
	"context"

	"docuforge/internal/domain/models"
)

// ProjectRepository is the ordered project collection. Implementations
// keep insertion order (newest first) and must serialize writers.
type ProjectRepository interface {
	// List returns a snapshot of every project in insertion order.
	List(ctx context.Context) ([]models.Project, error)

	// Get returns the project with the given id, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Project, error)

	// Insert prepends a new project to the collection.
	Insert(ctx context.Context, project *models.Project) error

	// Update replaces the stored record with the same id,
	// or returns domain.ErrNotFound.
	Update(ctx context.Context, project *models.Project) error

	// Delete removes the project with the given id,
	// or returns domain.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
