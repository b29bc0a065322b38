package driving

import (
	"context"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// QuizState is the engine state over one quiz attempt.
type QuizState int

const (
	// QuizEmpty means no quiz is loaded (none exists yet for the document).
	QuizEmpty QuizState = iota
	// QuizReady means an attempt is in progress.
	QuizReady
	// QuizFinished means the attempt has reached the results state.
	QuizFinished
)

// String returns the state name.
func (s QuizState) String() string {
	switch s {
	case QuizEmpty:
		return "empty"
	case QuizReady:
		return "ready"
	case QuizFinished:
		return "finished"
	default:
		return "invalid"
	}
}

// QuizEngine is the finite-state flow for taking one quiz.
//
// Load and Generate are network-bound and serialized: a second mutating
// call while one is outstanding fails with domain.ErrBusy. A response that
// arrives after the engine was reset or replaced is discarded
// (domain.ErrStaleResponse), never applied.
type QuizEngine interface {
	// Load fetches existing quizzes for a document, selects the most
	// recently created and starts a fresh attempt. If none exist the
	// engine reports the empty state without error.
	Load(ctx context.Context, documentID int64) error

	// Generate requests synthesis of a new quiz, replacing any current
	// quiz and attempt atomically. An empty question list leaves the
	// engine in the empty state.
	Generate(ctx context.Context, documentID int64, questionCount int) error

	// State returns the current engine state.
	State() QuizState

	// Attempt returns a snapshot of the current attempt. The second return
	// is false in the empty state.
	Attempt() (domain.QuizAttempt, bool)

	// SelectAnswer records a label for the current question without
	// advancing.
	SelectAnswer(label string) error

	// Advance moves to the next question, or finishes the attempt when
	// already on the last question.
	Advance() error

	// Retreat moves to the previous question; from the finished state it
	// resumes at the last question.
	Retreat() error

	// Score returns the attempt outcome. Only valid once finished.
	Score() (domain.QuizScore, error)

	// Reset re-initialises the attempt against the same quiz.
	Reset() error

	// Busy reports whether a mutating call is outstanding.
	Busy() bool
}
