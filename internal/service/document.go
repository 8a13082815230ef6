package service

import (
	"context"
	"log/slog"
	"strings"

	"docuforge/internal/domain/models"
	"docuforge/internal/domain/repositories"
	"docuforge/internal/query"
)

// documentCollection configures the query engine for the document
// list. Documents have no type filter; search matches title and
// summary.
var documentCollection = query.Collection[models.Document]{
	Statuses: models.DocumentStatusValues(),
	StatusOf: func(d models.Document) string { return string(d.Status) },
	SearchFields: func(d models.Document) []string {
		return []string{d.Title, d.Summary}
	},
	SortKeys: []query.SortKey[models.Document]{
		{Name: "updatedAt", Compare: func(a, b models.Document) int { return a.UpdatedAt.Compare(b.UpdatedAt) }},
		{Name: "title", Compare: func(a, b models.Document) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}},
	},
}

// DocumentService serves the read-only document listing.
type DocumentService struct {
	documentRepo repositories.DocumentRepository
	logger       *slog.Logger
}

// NewDocumentService creates a new document service.
func NewDocumentService(documentRepo repositories.DocumentRepository, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

// List runs the filter/sort/paginate pipeline over the collection.
func (s *DocumentService) List(ctx context.Context, params query.Params) ([]models.Document, query.Meta, error) {
	if err := documentCollection.Validate(params); err != nil {
		return nil, query.Meta{}, err
	}

	documents, err := s.documentRepo.List(ctx)
	if err != nil {
		return nil, query.Meta{}, err
	}

	page, meta := documentCollection.Run(documents, params)
	return page, meta, nil
}
