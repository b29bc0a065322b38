package quiz

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/messages"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/adapters/driving/tui/styles"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// MockQuizEngine implements driving.QuizEngine for testing.
type MockQuizEngine struct {
	LoadFunc         func(ctx context.Context, documentID int64) error
	GenerateFunc     func(ctx context.Context, documentID int64, questionCount int) error
	AttemptFunc      func() (domain.QuizAttempt, bool)
	SelectAnswerFunc func(label string) error
	AdvanceFunc      func() error
	RetreatFunc      func() error
	ScoreFunc        func() (domain.QuizScore, error)
	ResetFunc        func() error
}

func (m *MockQuizEngine) Load(ctx context.Context, documentID int64) error {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, documentID)
	}
	return nil
}

func (m *MockQuizEngine) Generate(ctx context.Context, documentID int64, questionCount int) error {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, documentID, questionCount)
	}
	return nil
}

func (m *MockQuizEngine) State() driving.QuizState { return driving.QuizEmpty }

func (m *MockQuizEngine) Attempt() (domain.QuizAttempt, bool) {
	if m.AttemptFunc != nil {
		return m.AttemptFunc()
	}
	return domain.QuizAttempt{}, false
}

func (m *MockQuizEngine) SelectAnswer(label string) error {
	if m.SelectAnswerFunc != nil {
		return m.SelectAnswerFunc(label)
	}
	return nil
}

func (m *MockQuizEngine) Advance() error {
	if m.AdvanceFunc != nil {
		return m.AdvanceFunc()
	}
	return nil
}

func (m *MockQuizEngine) Retreat() error {
	if m.RetreatFunc != nil {
		return m.RetreatFunc()
	}
	return nil
}

func (m *MockQuizEngine) Score() (domain.QuizScore, error) {
	if m.ScoreFunc != nil {
		return m.ScoreFunc()
	}
	return domain.QuizScore{}, domain.ErrNotFinished
}

func (m *MockQuizEngine) Reset() error {
	if m.ResetFunc != nil {
		return m.ResetFunc()
	}
	return nil
}

func (m *MockQuizEngine) Busy() bool { return false }

func sampleAttempt() domain.QuizAttempt {
	return domain.NewQuizAttempt(domain.Quiz{
		ID:    1,
		Title: "Geography",
		Questions: []domain.Question{
			{
				Text:         "Capital of France?",
				Options:      []string{"A. Paris", "B. Lyon", "C. Nice", "D. Lille"},
				CorrectLabel: "A",
			},
			{
				Text:         "Capital of Japan?",
				Options:      []string{"A. Kyoto", "B. Tokyo", "C. Osaka", "D. Nara"},
				CorrectLabel: "B",
			},
		},
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles(), &MockQuizEngine{})

	require.NotNil(t, view)
	assert.Nil(t, view.document)
	assert.False(t, view.busy)
}

func TestView_SetDocument_LoadsQuiz(t *testing.T) {
	var loadedID int64
	mock := &MockQuizEngine{
		LoadFunc: func(_ context.Context, documentID int64) error {
			loadedID = documentID
			return nil
		},
	}
	view := NewView(nil, mock)

	cmd := view.SetDocument(domain.Document{ID: 5, Title: "Notes"})

	require.NotNil(t, cmd)
	assert.True(t, view.busy)

	result := cmd()
	loaded, ok := result.(messages.QuizLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Equal(t, int64(5), loadedID)
}

func TestView_QuizLoaded_ClearsBusy(t *testing.T) {
	view := NewView(nil, &MockQuizEngine{})
	view.SetDocument(domain.Document{ID: 5})

	view, _ = view.Update(messages.QuizLoaded{})

	assert.False(t, view.busy)
	assert.NoError(t, view.Err())
}

func TestView_QuizLoaded_KeepsError(t *testing.T) {
	view := NewView(nil, &MockQuizEngine{})
	view.SetDocument(domain.Document{ID: 5})

	view, _ = view.Update(messages.QuizLoaded{Err: errors.New("boom")})

	assert.Error(t, view.Err())
}

func TestView_KeysIgnoredWhileBusy(t *testing.T) {
	advanced := false
	mock := &MockQuizEngine{
		AdvanceFunc: func() error {
			advanced = true
			return nil
		},
		AttemptFunc: func() (domain.QuizAttempt, bool) {
			return sampleAttempt(), true
		},
	}
	view := NewView(nil, mock)
	view.SetDocument(domain.Document{ID: 5})

	view.Update(keyMsg("n"))

	assert.False(t, advanced)
}

func TestView_HighlightMoves(t *testing.T) {
	mock := &MockQuizEngine{
		AttemptFunc: func() (domain.QuizAttempt, bool) {
			return sampleAttempt(), true
		},
	}
	view := NewView(nil, mock)
	view.SetDocument(domain.Document{ID: 5})
	view, _ = view.Update(messages.QuizLoaded{})

	view.Update(keyMsg("j"))
	view.Update(keyMsg("j"))
	assert.Equal(t, 2, view.Highlight())

	view.Update(keyMsg("k"))
	assert.Equal(t, 1, view.Highlight())
}

func TestView_HighlightClamps(t *testing.T) {
	mock := &MockQuizEngine{
		AttemptFunc: func() (domain.QuizAttempt, bool) {
			return sampleAttempt(), true
		},
	}
	view := NewView(nil, mock)
	view.SetDocument(domain.Document{ID: 5})
	view, _ = view.Update(messages.QuizLoaded{})

	view.Update(keyMsg("k"))
	assert.Equal(t, 0, view.Highlight())

	for range 10 {
		view.Update(keyMsg("j"))
	}
	assert.Equal(t, 3, view.Highlight())
}

func TestView_EnterAnswersHighlighted(t *testing.T) {
	var selected string
	advanced := false
	mock := &MockQuizEngine{
		AttemptFunc: func() (domain.QuizAttempt, bool) {
			return sampleAttempt(), true
		},
		SelectAnswerFunc: func(label string) error {
			selected = label
			return nil
		},
		AdvanceFunc: func() error {
			advanced = true
			return nil
		},
	}
	view := NewView(nil, mock)
	view.SetDocument(domain.Document{ID: 5})
	view, _ = view.Update(messages.QuizLoaded{})

	view.Update(keyMsg("j"))
	view.Update(keyMsg("enter"))

	assert.Equal(t, "B", selected)
	assert.True(t, advanced)
	assert.Equal(t, 0, view.Highlight(), "highlight resets for the next question")
}

func TestView_TypedLetterAnswersDirectly(t *testing.T) {
	var selected string
	mock := &MockQuizEngine{
		AttemptFunc: func() (domain.QuizAttempt, bool) {
			return sampleAttempt(), true
		},
		SelectAnswerFunc: func(label string) error {
			selected = label
			return nil
		},
	}
	view := NewView(nil, mock)
	view.SetDocument(domain.Document{ID: 5})
	view, _ = view.Update(messages.QuizLoaded{})

	view.Update(keyMsg("c"))

	assert.Equal(t, "C", selected)
}

func TestView_FinishedKeys(t *testing.T) {
	finished := sampleAttempt()
	finished.Finished = true

	reset := false
	retreated := false
	mock := &MockQuizEngine{
		AttemptFunc: func() (domain.QuizAttempt, bool) {
			return finished, true
		},
		ResetFunc: func() error {
			reset = true
			return nil
		},
		RetreatFunc: func() error {
			retreated = true
			return nil
		},
	}
	view := NewView(nil, mock)
	view.SetDocument(domain.Document{ID: 5})
	view, _ = view.Update(messages.QuizLoaded{})

	view.Update(keyMsg("r"))
	assert.True(t, reset)

	view.Update(keyMsg("p"))
	assert.True(t, retreated)
}

func TestView_EscReturnsToDocuments(t *testing.T) {
	view := NewView(nil, &MockQuizEngine{})
	view.SetDocument(domain.Document{ID: 5})
	view, _ = view.Update(messages.QuizLoaded{})

	_, cmd := view.Update(keyMsg("esc"))

	require.NotNil(t, cmd)
	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDocuments, changed.View)
}

func TestView_GenerateRequestsDefaultCount(t *testing.T) {
	var gotCount int
	mock := &MockQuizEngine{
		GenerateFunc: func(_ context.Context, _ int64, questionCount int) error {
			gotCount = questionCount
			return nil
		},
	}
	view := NewView(nil, mock)
	view.SetDocument(domain.Document{ID: 5})
	view, _ = view.Update(messages.QuizLoaded{})

	_, cmd := view.Update(keyMsg("g"))

	require.NotNil(t, cmd)
	assert.True(t, view.generating)
	cmd()
	assert.Equal(t, 5, gotCount)
}

func TestView_RenderStates(t *testing.T) {
	t.Run("no document", func(t *testing.T) {
		view := NewView(nil, &MockQuizEngine{})
		assert.Contains(t, view.View(), "Pick a document")
	})

	t.Run("empty", func(t *testing.T) {
		view := NewView(nil, &MockQuizEngine{})
		view.SetDocument(domain.Document{ID: 5, Title: "Notes"})
		view, _ = view.Update(messages.QuizLoaded{})
		assert.Contains(t, view.View(), "Press g to generate")
	})

	t.Run("question", func(t *testing.T) {
		mock := &MockQuizEngine{
			AttemptFunc: func() (domain.QuizAttempt, bool) {
				return sampleAttempt(), true
			},
		}
		view := NewView(nil, mock)
		view.SetDocument(domain.Document{ID: 5, Title: "Notes"})
		view, _ = view.Update(messages.QuizLoaded{})

		out := view.View()
		assert.Contains(t, out, "Question 1 of 2")
		assert.Contains(t, out, "Capital of France?")
		assert.Contains(t, out, "A. Paris")
	})

	t.Run("score", func(t *testing.T) {
		finished := sampleAttempt().WithAnswer("A").Advanced().WithAnswer("C").Advanced()
		mock := &MockQuizEngine{
			AttemptFunc: func() (domain.QuizAttempt, bool) {
				return finished, true
			},
			ScoreFunc: func() (domain.QuizScore, error) {
				return finished.Score(), nil
			},
		}
		view := NewView(nil, mock)
		view.SetDocument(domain.Document{ID: 5, Title: "Notes"})
		view, _ = view.Update(messages.QuizLoaded{})

		out := view.View()
		assert.Contains(t, out, "Score: 1/2")
		assert.Contains(t, out, "Capital of Japan?")
	})
}
