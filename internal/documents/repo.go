package documents

import "context"

// DocumentsRepo defines persistence operations for document records.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, documentID string) (Document, error)
	ListByRacer(ctx context.Context, racerID string) ([]Document, error)
	// UpdateAnalysis stores the analysis text and status for a document.
	UpdateAnalysis(ctx context.Context, documentID, analysis, status string) error
	Delete(ctx context.Context, documentID string) error
}
