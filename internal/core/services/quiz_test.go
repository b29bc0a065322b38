package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

func sampleQuiz(id int64, createdAt time.Time) domain.Quiz {
	return domain.Quiz{
		ID:        id,
		Title:     "Chapter quiz",
		CreatedAt: createdAt,
		Questions: []domain.Question{
			{Text: "Capital of France?", Options: []string{"A. Paris", "B. Rome"}, CorrectLabel: "A"},
			{Text: "Capital of Italy?", Options: []string{"A. Paris", "B. Rome"}, CorrectLabel: "B"},
			{Text: "Capital of Spain?", Options: []string{"A. Madrid", "B. Rome"}, CorrectLabel: "A"},
		},
	}
}

func TestQuizEngine_StartsEmpty(t *testing.T) {
	engine := NewQuizEngine(&MockLearningAPI{})

	assert.Equal(t, driving.QuizEmpty, engine.State())
	_, ok := engine.Attempt()
	assert.False(t, ok)
}

func TestQuizEngine_GenerateEntersReady(t *testing.T) {
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			assert.Equal(t, int64(42), documentID)
			assert.Equal(t, DefaultQuestionCount, questionCount)
			quiz := sampleQuiz(1, time.Now())
			return &quiz, nil
		},
	}
	engine := NewQuizEngine(api)

	err := engine.Generate(context.Background(), 42, DefaultQuestionCount)

	require.NoError(t, err)
	assert.Equal(t, driving.QuizReady, engine.State())
	attempt, ok := engine.Attempt()
	require.True(t, ok)
	assert.Equal(t, 0, attempt.Current)
	assert.False(t, attempt.Finished)
	for i := 0; i < attempt.Len(); i++ {
		assert.Empty(t, attempt.Answers[i], "question %d must start unanswered", i)
	}
	assert.False(t, engine.Busy())
}

func TestQuizEngine_GenerateRejectsNonpositiveCount(t *testing.T) {
	called := false
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			called = true
			return nil, nil
		},
	}
	engine := NewQuizEngine(api)

	assert.ErrorIs(t, engine.Generate(context.Background(), 42, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, engine.Generate(context.Background(), 42, -3), domain.ErrInvalidInput)
	assert.False(t, called, "invalid counts must be rejected before any remote call")
}

func TestQuizEngine_GenerateFailureKeepsCurrentAttempt(t *testing.T) {
	calls := 0
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("service unavailable")
			}
			quiz := sampleQuiz(1, time.Now())
			return &quiz, nil
		},
	}
	engine := NewQuizEngine(api)
	require.NoError(t, engine.Generate(context.Background(), 42, 5))

	err := engine.Generate(context.Background(), 42, 5)

	require.Error(t, err)
	assert.Equal(t, driving.QuizReady, engine.State(), "failure must not discard the live attempt")
	assert.False(t, engine.Busy())
}

func TestQuizEngine_LoadPicksLatestQuiz(t *testing.T) {
	older := sampleQuiz(1, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleQuiz(2, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	api := &MockLearningAPI{
		ListQuizzesFunc: func(ctx context.Context, documentID int64) ([]domain.Quiz, error) {
			return []domain.Quiz{older, newer}, nil
		},
	}
	engine := NewQuizEngine(api)

	require.NoError(t, engine.Load(context.Background(), 42))

	attempt, ok := engine.Attempt()
	require.True(t, ok)
	assert.Equal(t, int64(2), attempt.Quiz.ID)
}

func TestQuizEngine_LoadTreatsNotFoundAsEmpty(t *testing.T) {
	api := &MockLearningAPI{
		ListQuizzesFunc: func(ctx context.Context, documentID int64) ([]domain.Quiz, error) {
			return nil, domain.ErrNotFound
		},
	}
	engine := NewQuizEngine(api)

	err := engine.Load(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, driving.QuizEmpty, engine.State())
	assert.False(t, engine.Busy())
}

func TestQuizEngine_AnswerAndAdvanceThroughToFinished(t *testing.T) {
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			quiz := sampleQuiz(1, time.Now())
			return &quiz, nil
		},
	}
	engine := NewQuizEngine(api)
	require.NoError(t, engine.Generate(context.Background(), 42, 3))

	require.NoError(t, engine.SelectAnswer("A"))
	require.NoError(t, engine.Advance())
	require.NoError(t, engine.SelectAnswer("B"))
	require.NoError(t, engine.Advance())
	require.NoError(t, engine.SelectAnswer("B")) // wrong: correct is A
	require.NoError(t, engine.Advance())

	assert.Equal(t, driving.QuizFinished, engine.State())
	score, err := engine.Score()
	require.NoError(t, err)
	assert.Equal(t, 2, score.Correct)
	assert.Equal(t, 3, score.Total)
	assert.Equal(t, []bool{true, true, false}, score.PerQuestion)
}

func TestQuizEngine_ScoreRequiresFinished(t *testing.T) {
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			quiz := sampleQuiz(1, time.Now())
			return &quiz, nil
		},
	}
	engine := NewQuizEngine(api)

	_, err := engine.Score()
	assert.ErrorIs(t, err, domain.ErrNoQuiz)

	require.NoError(t, engine.Generate(context.Background(), 42, 3))
	_, err = engine.Score()
	assert.ErrorIs(t, err, domain.ErrNotFinished)
}

func TestQuizEngine_RetreatFromFinishedResumesLastQuestion(t *testing.T) {
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			quiz := sampleQuiz(1, time.Now())
			return &quiz, nil
		},
	}
	engine := NewQuizEngine(api)
	require.NoError(t, engine.Generate(context.Background(), 42, 3))
	for i := 0; i < 3; i++ {
		require.NoError(t, engine.Advance())
	}
	require.Equal(t, driving.QuizFinished, engine.State())

	require.NoError(t, engine.Retreat())

	assert.Equal(t, driving.QuizReady, engine.State())
	attempt, _ := engine.Attempt()
	assert.Equal(t, 2, attempt.Current)
}

func TestQuizEngine_ResetClearsAnswersKeepsQuiz(t *testing.T) {
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			quiz := sampleQuiz(5, time.Now())
			return &quiz, nil
		},
	}
	engine := NewQuizEngine(api)
	require.NoError(t, engine.Generate(context.Background(), 42, 3))
	require.NoError(t, engine.SelectAnswer("A"))
	require.NoError(t, engine.Advance())

	require.NoError(t, engine.Reset())

	attempt, ok := engine.Attempt()
	require.True(t, ok)
	assert.Equal(t, int64(5), attempt.Quiz.ID)
	assert.Equal(t, 0, attempt.Current)
	assert.Empty(t, attempt.Answers[0])
}

func TestQuizEngine_TransitionsRequireQuiz(t *testing.T) {
	engine := NewQuizEngine(&MockLearningAPI{})

	assert.ErrorIs(t, engine.SelectAnswer("A"), domain.ErrNoQuiz)
	assert.ErrorIs(t, engine.Advance(), domain.ErrNoQuiz)
	assert.ErrorIs(t, engine.Retreat(), domain.ErrNoQuiz)
	assert.ErrorIs(t, engine.Reset(), domain.ErrNoQuiz)
}

func TestQuizEngine_EmptyGeneratedQuizIsEmptyState(t *testing.T) {
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			return &domain.Quiz{ID: 1, Title: "empty"}, nil
		},
	}
	engine := NewQuizEngine(api)

	require.NoError(t, engine.Generate(context.Background(), 42, 5))

	assert.Equal(t, driving.QuizEmpty, engine.State())
}

func TestQuizEngine_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			<-release
			quiz := sampleQuiz(1, time.Now())
			return &quiz, nil
		},
	}
	engine := NewQuizEngine(api)

	done := make(chan error, 1)
	go func() {
		done <- engine.Generate(context.Background(), 42, 5)
	}()

	// Wait for the call to be outstanding, then move the engine on.
	require.Eventually(t, engine.Busy, time.Second, time.Millisecond)
	engine.mu.Lock()
	engine.epoch++
	engine.mu.Unlock()
	close(release)

	err := <-done
	assert.ErrorIs(t, err, domain.ErrStaleResponse)
	assert.Equal(t, driving.QuizEmpty, engine.State(), "stale response must not install an attempt")
}

func TestQuizEngine_BusyRejectsOverlappingCalls(t *testing.T) {
	release := make(chan struct{})
	api := &MockLearningAPI{
		GenerateQuizFunc: func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
			<-release
			quiz := sampleQuiz(1, time.Now())
			return &quiz, nil
		},
	}
	engine := NewQuizEngine(api)

	done := make(chan error, 1)
	go func() {
		done <- engine.Generate(context.Background(), 42, 5)
	}()
	require.Eventually(t, engine.Busy, time.Second, time.Millisecond)

	assert.ErrorIs(t, engine.Load(context.Background(), 42), domain.ErrBusy)
	assert.ErrorIs(t, engine.Generate(context.Background(), 42, 5), domain.ErrBusy)

	close(release)
	require.NoError(t, <-done)
}
