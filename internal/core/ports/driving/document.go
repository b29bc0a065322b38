package driving

import (
	"context"
	"io"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// DocumentService manages uploaded documents and their summaries.
type DocumentService interface {
	// List returns all documents owned by the authenticated user.
	List(ctx context.Context) ([]domain.Document, error)

	// Get returns a single document including its extracted content.
	Get(ctx context.Context, id int64) (*domain.Document, error)

	// Delete removes a document and its derived materials.
	Delete(ctx context.Context, id int64) error

	// Upload validates the file kind client-side and sends the file.
	// Unsupported extensions fail with domain.ErrInvalidInput before any
	// network call.
	Upload(ctx context.Context, filename string, content io.Reader) (*domain.Document, error)

	// Summary returns the existing summary, or nil (no error) when none
	// has been generated yet.
	Summary(ctx context.Context, documentID int64) (*domain.Summary, error)

	// GenerateSummary synthesises a summary for the document.
	GenerateSummary(ctx context.Context, documentID int64) (*domain.Summary, error)
}
