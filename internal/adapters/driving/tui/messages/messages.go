// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLogin is the login / register form.
	ViewLogin ViewType = iota
	// ViewMenu is the main navigation menu.
	ViewMenu
	// ViewDocuments is the document list and upload view.
	ViewDocuments
	// ViewSummary shows a document summary.
	ViewSummary
	// ViewQuiz is the quiz-taking view.
	ViewQuiz
	// ViewFlashcards is the flashcard review view.
	ViewFlashcards
	// ViewChat is the document Q&A view.
	ViewChat
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewMenu:
		return "menu"
	case ViewDocuments:
		return "documents"
	case ViewSummary:
		return "summary"
	case ViewQuiz:
		return "quiz"
	case ViewFlashcards:
		return "flashcards"
	case ViewChat:
		return "chat"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SessionResolved carries the outcome of restoring the persisted session
// at startup.
type SessionResolved struct {
	State driving.SessionState
	Err   error
}

// LoginCompleted carries the outcome of a login or register attempt.
type LoginCompleted struct {
	Err error
}

// LoggedOut signals the session was discarded.
type LoggedOut struct{}

// DocumentsLoaded carries the user's document list.
type DocumentsLoaded struct {
	Documents []domain.Document
	Err       error
}

// DocumentSelected signals a document was chosen for a study activity.
type DocumentSelected struct {
	Document domain.Document
	Target   ViewType
}

// DocumentDeleted signals a document deletion completed.
type DocumentDeleted struct {
	ID  int64
	Err error
}

// SummaryLoaded carries a document summary. A nil summary with a nil
// error means none has been generated yet.
type SummaryLoaded struct {
	DocumentID int64
	Summary    *domain.Summary
	Err        error
}

// QuizLoaded signals the quiz engine finished loading or generating.
type QuizLoaded struct {
	Err error
}

// FlashcardsLoaded signals the flashcard engine finished loading or
// generating.
type FlashcardsLoaded struct {
	Err error
}

// CardReviewed signals a difficulty rating was submitted.
type CardReviewed struct {
	Err error
}

// AnswerReceived carries a chat exchange back to the chat view.
type AnswerReceived struct {
	Exchange *domain.Exchange
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
