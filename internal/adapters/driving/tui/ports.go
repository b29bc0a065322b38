// Package tui provides the interactive terminal user interface for tutor.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session owns the credential lifecycle.
	Session driving.SessionService

	// Document manages uploaded documents and summaries.
	Document driving.DocumentService

	// Quiz drives quiz attempts.
	Quiz driving.QuizEngine

	// Flashcard drives deck review sessions.
	Flashcard driving.FlashcardEngine

	// Chat keeps the document Q&A transcript.
	Chat driving.ChatSession
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	if p.Quiz == nil {
		return ErrMissingQuizEngine
	}
	if p.Flashcard == nil {
		return ErrMissingFlashcardEngine
	}
	if p.Chat == nil {
		return ErrMissingChatSession
	}
	return nil
}
