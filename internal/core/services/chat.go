package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driven"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// Ensure ChatSession implements the interface.
var _ driving.ChatSession = (*ChatSession)(nil)

// ChatSession keeps the append-only transcript for the selected document.
// Scope and transcript are independent pieces of state; only Clear empties
// the transcript.
type ChatSession struct {
	mu  sync.Mutex
	api driven.ChatAPI

	scope      *domain.Document
	transcript []domain.Exchange
	busy       bool
	epoch      uint64

	// now is swappable for tests.
	now func() time.Time
}

// NewChatSession creates a session with no document selected.
func NewChatSession(api driven.ChatAPI) *ChatSession {
	return &ChatSession{api: api, now: time.Now}
}

// SelectDocument sets the active document scope.
func (c *ChatSession) SelectDocument(doc domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scope = &doc
}

// Scope returns the active document.
func (c *ChatSession) Scope() (domain.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scope == nil {
		return domain.Document{}, false
	}
	return *c.scope, true
}

// EligibleDocuments lists the documents available for chat.
func (c *ChatSession) EligibleDocuments(ctx context.Context) ([]domain.Document, error) {
	return c.api.EligibleDocuments(ctx)
}

// Ask sends a question scoped to the selected document and appends the
// exchange on success. Blank questions and a missing scope are rejected
// locally; on any failure nothing is appended.
func (c *ChatSession) Ask(ctx context.Context, question string) (*domain.Exchange, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	c.mu.Lock()
	if c.scope == nil {
		c.mu.Unlock()
		return nil, domain.ErrNoDocumentSelected
	}
	if c.busy {
		c.mu.Unlock()
		return nil, domain.ErrBusy
	}
	c.busy = true
	c.epoch++
	epoch := c.epoch
	documentID := c.scope.ID
	c.mu.Unlock()

	exchange, err := c.api.Ask(ctx, question, documentID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		return nil, fmt.Errorf("asking: %w", err)
	}
	if epoch != c.epoch {
		return nil, domain.ErrStaleResponse
	}
	exchange.AskedAt = c.now()
	c.transcript = append(c.transcript, *exchange)
	return exchange, nil
}

// Transcript returns the exchanges in ask order.
func (c *ChatSession) Transcript() []domain.Exchange {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Exchange, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Clear empties the transcript without touching the scope. An in-flight
// ask from before the clear is discarded when it lands.
func (c *ChatSession) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = nil
	c.epoch++
}

// Busy reports whether an ask is outstanding.
func (c *ChatSession) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}
