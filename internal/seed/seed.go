// Package seed ships the embedded development dataset the dashboard
// starts with.
package seed

import (
	_ "embed"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixtures is the parsed seed dataset, newest first.
type Fixtures struct {
	Projects   []models.Project       `yaml:"projects"`
	Documents  []models.Document      `yaml:"documents"`
	Activities []models.ActivityEvent `yaml:"activities"`
}

// Load parses the embedded fixtures.
func Load() (*Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fixtures); err != nil {
		return nil, fmt.Errorf("parse seed fixtures: %w", err)
	}

	for _, project := range fixtures.Projects {
		if err := project.Validate(); err != nil {
			return nil, fmt.Errorf("seed project %s: %w", project.ID, err)
		}
	}
	for _, event := range fixtures.Activities {
		if err := event.Validate(); err != nil {
			return nil, fmt.Errorf("seed activity %s: %w", event.ID, err)
		}
	}

	return &fixtures, nil
}

// Apply inserts the fixtures into the stores. Fixtures are listed
// newest first while inserts prepend, so each slice is applied in
// reverse.
func Apply(ctx context.Context, fixtures *Fixtures, projects repositories.ProjectRepository, documents repositories.DocumentRepository, activities repositories.ActivityRepository) error {
	for i := len(fixtures.Projects) - 1; i >= 0; i-- {
		project := fixtures.Projects[i]
		if err := projects.Insert(ctx, &project); err != nil {
			return err
		}
	}

	for i := len(fixtures.Documents) - 1; i >= 0; i-- {
		document := fixtures.Documents[i]
		if err := documents.Insert(ctx, &document); err != nil {
			return err
		}
	}

	for i := len(fixtures.Activities) - 1; i >= 0; i-- {
		event := fixtures.Activities[i]
		if err := activities.Append(ctx, &event); err != nil {
			return err
		}
	}

	return nil
}
