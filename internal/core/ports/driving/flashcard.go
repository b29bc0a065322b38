package driving

import (
	"context"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// FlashcardEngine is the finite-state flow for reviewing one deck.
//
// Per card the state machine is question-shown <-> answer-shown via Flip;
// Review is only reachable from answer-shown. Load, Generate and Review
// are network-bound and serialized under the same busy/stale discipline
// as the quiz engine.
type FlashcardEngine interface {
	// Load fetches the existing deck for a document. An empty deck is the
	// empty state, not an error.
	Load(ctx context.Context, documentID int64) error

	// Generate requests synthesis of a new deck, replacing the current one
	// and resetting the cursor to the first card, question side up.
	Generate(ctx context.Context, documentID int64, cardCount int) error

	// Session returns a snapshot of the review session. The second return
	// is false while no deck is loaded.
	Session() (domain.ReviewSession, bool)

	// Flip toggles between question and answer sides.
	Flip() error

	// Next moves to the next card, clamped at the last one.
	Next() error

	// Prev moves to the previous card, clamped at the first one.
	Prev() error

	// Review submits a difficulty rating for the current card, then
	// behaves as Next. Rejected with domain.ErrNotRevealed, without any
	// remote call, unless the answer side is showing.
	Review(ctx context.Context, difficulty domain.Difficulty) error

	// Busy reports whether a mutating call is outstanding.
	Busy() bool
}
