package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driven"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/logger"
)

// DefaultQuestionCount is the question count requested when the caller
// does not specify one.
const DefaultQuestionCount = 5

// Ensure QuizEngine implements the interface.
var _ driving.QuizEngine = (*QuizEngine)(nil)

// QuizEngine drives one quiz attempt: Empty -> Ready -> Finished.
//
// The attempt itself is an immutable domain value; the engine serializes
// transitions and guards network calls with a busy flag and an epoch so a
// response issued against a discarded attempt is never applied.
type QuizEngine struct {
	mu  sync.Mutex
	api driven.LearningAPI

	attempt *domain.QuizAttempt
	busy    bool
	epoch   uint64
}

// NewQuizEngine creates an engine in the empty state.
func NewQuizEngine(api driven.LearningAPI) *QuizEngine {
	return &QuizEngine{api: api}
}

// begin marks a mutating call outstanding and returns the epoch it was
// issued under.
func (e *QuizEngine) begin() (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return 0, domain.ErrBusy
	}
	e.busy = true
	e.epoch++
	return e.epoch, nil
}

// apply installs a fetched quiz if the engine state has not moved on
// since the call was issued.
func (e *QuizEngine) apply(epoch uint64, quiz *domain.Quiz) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.busy = false
	if epoch != e.epoch {
		return domain.ErrStaleResponse
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		e.attempt = nil
		return nil
	}
	attempt := domain.NewQuizAttempt(*quiz)
	e.attempt = &attempt
	return nil
}

// fail clears the busy flag after a failed call without touching state.
func (e *QuizEngine) fail() {
	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()
}

// Load fetches existing quizzes for a document and starts a fresh attempt
// against the most recently created one. No quizzes is the empty state,
// not an error.
func (e *QuizEngine) Load(ctx context.Context, documentID int64) error {
	epoch, err := e.begin()
	if err != nil {
		return err
	}

	quizzes, err := e.api.ListQuizzes(ctx, documentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return e.apply(epoch, nil)
		}
		e.fail()
		return fmt.Errorf("loading quizzes: %w", err)
	}

	var latest *domain.Quiz
	for i := range quizzes {
		if latest == nil || quizzes[i].CreatedAt.After(latest.CreatedAt) {
			latest = &quizzes[i]
		}
	}
	return e.apply(epoch, latest)
}

// Generate requests synthesis of a new quiz and replaces the current quiz
// and attempt atomically. A nonpositive count is rejected locally.
func (e *QuizEngine) Generate(ctx context.Context, documentID int64, questionCount int) error {
	if questionCount <= 0 {
		return domain.ErrInvalidInput
	}

	epoch, err := e.begin()
	if err != nil {
		return err
	}

	quiz, err := e.api.GenerateQuiz(ctx, documentID, questionCount)
	if err != nil {
		e.fail()
		return fmt.Errorf("generating quiz: %w", err)
	}
	if quiz != nil && len(quiz.Questions) == 0 {
		logger.Debug("quiz %d generated with no questions", quiz.ID)
	}
	return e.apply(epoch, quiz)
}

// State returns the current engine state.
func (e *QuizEngine) State() driving.QuizState {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.attempt == nil:
		return driving.QuizEmpty
	case e.attempt.Finished:
		return driving.QuizFinished
	default:
		return driving.QuizReady
	}
}

// Attempt returns a snapshot of the current attempt.
func (e *QuizEngine) Attempt() (domain.QuizAttempt, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.attempt == nil {
		return domain.QuizAttempt{}, false
	}
	return *e.attempt, true
}

// SelectAnswer records a label for the current question.
func (e *QuizEngine) SelectAnswer(label string) error {
	return e.transition(func(a domain.QuizAttempt) domain.QuizAttempt {
		return a.WithAnswer(label)
	})
}

// Advance moves to the next question, finishing the attempt when the
// current question is the last one.
func (e *QuizEngine) Advance() error {
	return e.transition(domain.QuizAttempt.Advanced)
}

// Retreat moves to the previous question, clearing the finished state if
// set.
func (e *QuizEngine) Retreat() error {
	return e.transition(domain.QuizAttempt.Retreated)
}

// Reset re-initialises the attempt against the same quiz. Any in-flight
// response from before the reset is discarded when it lands.
func (e *QuizEngine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.attempt == nil {
		return domain.ErrNoQuiz
	}
	e.epoch++
	attempt := e.attempt.Reset()
	e.attempt = &attempt
	return nil
}

// Score returns the attempt outcome; valid only once finished.
func (e *QuizEngine) Score() (domain.QuizScore, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.attempt == nil {
		return domain.QuizScore{}, domain.ErrNoQuiz
	}
	if !e.attempt.Finished {
		return domain.QuizScore{}, domain.ErrNotFinished
	}
	return e.attempt.Score(), nil
}

// Busy reports whether a mutating call is outstanding.
func (e *QuizEngine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

func (e *QuizEngine) transition(fn func(domain.QuizAttempt) domain.QuizAttempt) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.attempt == nil {
		return domain.ErrNoQuiz
	}
	attempt := fn(*e.attempt)
	e.attempt = &attempt
	return nil
}
