package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driven"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages uploaded documents and their summaries.
// Documents are owned by the remote service; this service is a thin
// orchestration layer adding client-side validation.
type DocumentService struct {
	docs     driven.DocumentAPI
	learning driven.LearningAPI
}

// NewDocumentService creates a document service.
func NewDocumentService(docs driven.DocumentAPI, learning driven.LearningAPI) *DocumentService {
	return &DocumentService{docs: docs, learning: learning}
}

// List returns all documents owned by the authenticated user.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docs.List(ctx)
}

// Get returns a single document including its extracted content.
func (s *DocumentService) Get(ctx context.Context, id int64) (*domain.Document, error) {
	return s.docs.Get(ctx, id)
}

// Delete removes a document and its derived materials.
func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	return s.docs.Delete(ctx, id)
}

// Upload validates the file kind from its extension and sends the file.
// Unsupported extensions fail before any network call.
func (s *DocumentService) Upload(ctx context.Context, filename string, content io.Reader) (*domain.Document, error) {
	if _, err := domain.KindFromFilename(filename); err != nil {
		return nil, fmt.Errorf("unsupported file %q: %w", filename, err)
	}
	return s.docs.Upload(ctx, filename, content)
}

// Summary returns the existing summary, or nil when none has been
// generated yet: for load operations NotFound is an empty state, not an
// error.
func (s *DocumentService) Summary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	summary, err := s.learning.GetSummary(ctx, documentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return summary, nil
}

// GenerateSummary synthesises a summary for the document.
func (s *DocumentService) GenerateSummary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	return s.learning.GenerateSummary(ctx, documentID)
}
