package repositories

import (
	"context"

	"docuforge/internal/domain/models"
)

// DocumentRepository is the read-mostly document collection.
// Documents are seeded at startup; the API never mutates them.
type DocumentRepository interface {
	// List returns a snapshot of every document in insertion order.
	List(ctx context.Context) ([]models.Document, error)

	// Insert prepends a document (used by seeding).
	Insert(ctx context.Context, document *models.Document) error
}
