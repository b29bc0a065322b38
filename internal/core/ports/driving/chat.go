package driving

import (
	"context"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// ChatSession holds the append-only transcript of question/answer
// exchanges over the selected document.
//
// Scope and transcript are independent: selecting a document does not
// clear the transcript, only Clear does.
type ChatSession interface {
	// SelectDocument sets the active document scope.
	SelectDocument(doc domain.Document)

	// Scope returns the active document. The second return is false while
	// no document is selected.
	Scope() (domain.Document, bool)

	// EligibleDocuments lists the documents available for chat.
	EligibleDocuments(ctx context.Context) ([]domain.Document, error)

	// Ask sends a question scoped to the selected document and appends the
	// exchange to the transcript on success. Blank questions and a missing
	// scope are rejected locally without a remote call. On failure nothing
	// is appended.
	Ask(ctx context.Context, question string) (*domain.Exchange, error)

	// Transcript returns the exchanges in ask order.
	Transcript() []domain.Exchange

	// Clear empties the transcript without touching the scope.
	Clear()

	// Busy reports whether an ask is outstanding.
	Busy() bool
}
