package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driven"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// DefaultCardCount is the card count requested when the caller does not
// specify one.
const DefaultCardCount = 10

// Ensure FlashcardEngine implements the interface.
var _ driving.FlashcardEngine = (*FlashcardEngine)(nil)

// FlashcardEngine drives one deck review sitting. The session value is an
// immutable domain value; the engine serializes transitions and applies
// the busy/epoch discipline to Load, Generate and Review.
type FlashcardEngine struct {
	mu  sync.Mutex
	api driven.LearningAPI

	session *domain.ReviewSession
	busy    bool
	epoch   uint64
}

// NewFlashcardEngine creates an engine with no deck loaded.
func NewFlashcardEngine(api driven.LearningAPI) *FlashcardEngine {
	return &FlashcardEngine{api: api}
}

func (e *FlashcardEngine) begin() (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return 0, domain.ErrBusy
	}
	e.busy = true
	e.epoch++
	return e.epoch, nil
}

func (e *FlashcardEngine) applyDeck(epoch uint64, deck []domain.Flashcard) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.busy = false
	if epoch != e.epoch {
		return domain.ErrStaleResponse
	}
	if len(deck) == 0 {
		e.session = nil
		return nil
	}
	session := domain.NewReviewSession(deck)
	e.session = &session
	return nil
}

func (e *FlashcardEngine) fail() {
	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()
}

// Load fetches the existing deck for a document. An empty or missing deck
// is the empty state, not an error.
func (e *FlashcardEngine) Load(ctx context.Context, documentID int64) error {
	epoch, err := e.begin()
	if err != nil {
		return err
	}

	deck, err := e.api.ListFlashcards(ctx, documentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return e.applyDeck(epoch, nil)
		}
		e.fail()
		return fmt.Errorf("loading flashcards: %w", err)
	}
	return e.applyDeck(epoch, deck)
}

// Generate requests synthesis of a new deck, replacing the current one.
// The cursor resets to the first card, question side up.
func (e *FlashcardEngine) Generate(ctx context.Context, documentID int64, cardCount int) error {
	if cardCount <= 0 {
		return domain.ErrInvalidInput
	}

	epoch, err := e.begin()
	if err != nil {
		return err
	}

	deck, err := e.api.GenerateFlashcards(ctx, documentID, cardCount)
	if err != nil {
		e.fail()
		return fmt.Errorf("generating flashcards: %w", err)
	}
	return e.applyDeck(epoch, deck)
}

// Session returns a snapshot of the review session.
func (e *FlashcardEngine) Session() (domain.ReviewSession, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return domain.ReviewSession{}, false
	}
	return *e.session, true
}

// Flip toggles between question and answer sides.
func (e *FlashcardEngine) Flip() error {
	return e.transition(domain.ReviewSession.Flipped)
}

// Next moves to the next card, clamped at the last one.
func (e *FlashcardEngine) Next() error {
	return e.transition(domain.ReviewSession.Next)
}

// Prev moves to the previous card, clamped at the first one.
func (e *FlashcardEngine) Prev() error {
	return e.transition(domain.ReviewSession.Prev)
}

// Review submits a difficulty rating for the current card, then advances
// like Next. It is rejected locally, with no remote call, while the
// question side is showing or the rating is unknown.
func (e *FlashcardEngine) Review(ctx context.Context, difficulty domain.Difficulty) error {
	if !difficulty.Valid() {
		return domain.ErrInvalidInput
	}

	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return domain.ErrNoDeck
	}
	if !e.session.Revealed {
		e.mu.Unlock()
		return domain.ErrNotRevealed
	}
	if e.busy {
		e.mu.Unlock()
		return domain.ErrBusy
	}
	e.busy = true
	e.epoch++
	epoch := e.epoch
	cardID := e.session.Card().ID
	e.mu.Unlock()

	err := e.api.ReviewFlashcard(ctx, cardID, difficulty)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.busy = false
	if err != nil {
		return fmt.Errorf("reviewing card %d: %w", cardID, err)
	}
	if epoch != e.epoch || e.session == nil {
		return domain.ErrStaleResponse
	}
	session := e.session.Next()
	e.session = &session
	return nil
}

// Busy reports whether a mutating call is outstanding.
func (e *FlashcardEngine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

func (e *FlashcardEngine) transition(fn func(domain.ReviewSession) domain.ReviewSession) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return domain.ErrNoDeck
	}
	session := fn(*e.session)
	e.session = &session
	return nil
}
