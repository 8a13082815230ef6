package memory

import (
	"context"
	"sync"

	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
)

// DocumentStore keeps documents in insertion order, newest first.
type DocumentStore struct {
	mu        sync.RWMutex
	documents []models.Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

var _ repositories.DocumentRepository = (*DocumentStore)(nil)

// List returns a snapshot copy of the collection.
func (s *DocumentStore) List(ctx context.Context) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Document, len(s.documents))
	copy(snapshot, s.documents)
	return snapshot, nil
}

// Insert prepends the document to the collection.
func (s *DocumentStore) Insert(ctx context.Context, document *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents = append([]models.Document{*document}, s.documents...)
	return nil
}
