// Package memory implements the repository interfaces over
// process-memory collections. Everything is lost on restart; a mutex
// per store preserves the at-most-one-writer invariant the original
// single-threaded runtime provided implicitly.
package memory

import (
	"context"
	"sync"

	"docuforge/internal/domain"
	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
)

// ProjectStore keeps projects in insertion order, newest first.
type ProjectStore struct {
	mu       sync.RWMutex
	projects []models.Project
}

// NewProjectStore creates an empty project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}

var _ repositories.ProjectRepository = (*ProjectStore)(nil)

// List returns a snapshot copy of the collection.
func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Project, len(s.projects))
	copy(snapshot, s.projects)
	return snapshot, nil
}

// Get returns the project with the given id.
func (s *ProjectStore) Get(ctx context.Context, id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			project := s.projects[i]
			return &project, nil
		}
	}
	return nil, domain.NotFound("Project not found.")
}

// Insert prepends the project to the collection.
func (s *ProjectStore) Insert(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = append([]models.Project{*project}, s.projects...)
	return nil
}

// Update replaces the stored record with the same id in place.
func (s *ProjectStore) Update(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == project.ID {
			s.projects[i] = *project
			return nil
		}
	}
	return domain.NotFound("Project not found.")
}

// Delete removes the project with the given id.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return domain.NotFound("Project not found.")
}
