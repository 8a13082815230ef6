package models

import "time"

// DocumentStatus is the review state of a document.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusReview    DocumentStatus = "review"
	DocumentStatusPublished DocumentStatus = "published"
)

// DocumentStatuses lists every valid document status.
var DocumentStatuses = []DocumentStatus{
	DocumentStatusDraft,
	DocumentStatusReview,
	DocumentStatusPublished,
}

// DocumentStatusValues returns the status enum as plain strings.
func DocumentStatusValues() []string {
	values := make([]string, len(DocumentStatuses))
	for i, s := range DocumentStatuses {
		values[i] = string(s)
	}
	return values
}

// Valid reports whether s is a known document status.
func (s DocumentStatus) Valid() bool {
	for _, known := range DocumentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Document is a read-only documentation artifact belonging to a project.
// Documents are seeded at startup; generation and export are out of scope.
type Document struct {
	ID        string         `json:"id" yaml:"id"`
	ProjectID string         `json:"projectId" yaml:"projectId"`
	Title     string         `json:"title" yaml:"title"`
	Summary   string         `json:"summary" yaml:"summary"`
	Status    DocumentStatus `json:"status" yaml:"status"`
	Version   string         `json:"version" yaml:"version"`
	UpdatedAt time.Time      `json:"updatedAt" yaml:"updatedAt"`
}
