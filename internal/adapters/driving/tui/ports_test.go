package tui

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// MockSessionService implements driving.SessionService for testing.
type MockSessionService struct {
	StateFunc      func() driving.SessionState
	CredentialFunc func() *domain.Credential
	RestoreFunc    func(ctx context.Context) error
	LoginFunc      func(ctx context.Context, username, password string) error
	RegisterFunc   func(ctx context.Context, input driving.RegisterInput) error
	LogoutCalls    int
}

func (m *MockSessionService) State() driving.SessionState {
	if m.StateFunc != nil {
		return m.StateFunc()
	}
	return driving.SessionAnonymous
}

func (m *MockSessionService) Credential() *domain.Credential {
	if m.CredentialFunc != nil {
		return m.CredentialFunc()
	}
	return nil
}

func (m *MockSessionService) Restore(ctx context.Context) error {
	if m.RestoreFunc != nil {
		return m.RestoreFunc(ctx)
	}
	return nil
}

func (m *MockSessionService) Login(ctx context.Context, username, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil
}

func (m *MockSessionService) Register(ctx context.Context, input driving.RegisterInput) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return nil
}

func (m *MockSessionService) Logout() {
	m.LogoutCalls++
}

// MockDocumentService implements driving.DocumentService for testing.
type MockDocumentService struct {
	ListFunc func(ctx context.Context) ([]domain.Document, error)
}

func (m *MockDocumentService) List(ctx context.Context) ([]domain.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockDocumentService) Get(ctx context.Context, id int64) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (m *MockDocumentService) Delete(ctx context.Context, id int64) error {
	return nil
}

func (m *MockDocumentService) Upload(ctx context.Context, filename string, content io.Reader) (*domain.Document, error) {
	return nil, nil
}

func (m *MockDocumentService) Summary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	return nil, nil
}

func (m *MockDocumentService) GenerateSummary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	return nil, nil
}

// MockQuizEngine implements driving.QuizEngine for testing.
type MockQuizEngine struct {
	LoadFunc    func(ctx context.Context, documentID int64) error
	AttemptFunc func() (domain.QuizAttempt, bool)
}

func (m *MockQuizEngine) Load(ctx context.Context, documentID int64) error {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, documentID)
	}
	return nil
}

func (m *MockQuizEngine) Generate(ctx context.Context, documentID int64, questionCount int) error {
	return nil
}

func (m *MockQuizEngine) State() driving.QuizState {
	return driving.QuizEmpty
}

func (m *MockQuizEngine) Attempt() (domain.QuizAttempt, bool) {
	if m.AttemptFunc != nil {
		return m.AttemptFunc()
	}
	return domain.QuizAttempt{}, false
}

func (m *MockQuizEngine) SelectAnswer(label string) error { return nil }
func (m *MockQuizEngine) Advance() error                  { return nil }
func (m *MockQuizEngine) Retreat() error                  { return nil }
func (m *MockQuizEngine) Reset() error                    { return nil }
func (m *MockQuizEngine) Busy() bool                      { return false }

func (m *MockQuizEngine) Score() (domain.QuizScore, error) {
	return domain.QuizScore{}, domain.ErrNotFinished
}

// MockFlashcardEngine implements driving.FlashcardEngine for testing.
type MockFlashcardEngine struct {
	LoadFunc    func(ctx context.Context, documentID int64) error
	SessionFunc func() (domain.ReviewSession, bool)
}

func (m *MockFlashcardEngine) Load(ctx context.Context, documentID int64) error {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, documentID)
	}
	return nil
}

func (m *MockFlashcardEngine) Generate(ctx context.Context, documentID int64, cardCount int) error {
	return nil
}

func (m *MockFlashcardEngine) Session() (domain.ReviewSession, bool) {
	if m.SessionFunc != nil {
		return m.SessionFunc()
	}
	return domain.ReviewSession{}, false
}

func (m *MockFlashcardEngine) Flip() error { return nil }
func (m *MockFlashcardEngine) Next() error { return nil }
func (m *MockFlashcardEngine) Prev() error { return nil }
func (m *MockFlashcardEngine) Busy() bool  { return false }

func (m *MockFlashcardEngine) Review(ctx context.Context, difficulty domain.Difficulty) error {
	return nil
}

// MockChatSession implements driving.ChatSession for testing.
type MockChatSession struct {
	SelectedDocs []domain.Document
	AskFunc      func(ctx context.Context, question string) (*domain.Exchange, error)
	ClearCalls   int
}

func (m *MockChatSession) SelectDocument(doc domain.Document) {
	m.SelectedDocs = append(m.SelectedDocs, doc)
}

func (m *MockChatSession) Scope() (domain.Document, bool) {
	if len(m.SelectedDocs) == 0 {
		return domain.Document{}, false
	}
	return m.SelectedDocs[len(m.SelectedDocs)-1], true
}

func (m *MockChatSession) EligibleDocuments(ctx context.Context) ([]domain.Document, error) {
	return nil, nil
}

func (m *MockChatSession) Ask(ctx context.Context, question string) (*domain.Exchange, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question)
	}
	return &domain.Exchange{}, nil
}

func (m *MockChatSession) Transcript() []domain.Exchange { return nil }

func (m *MockChatSession) Clear() {
	m.ClearCalls++
}

func (m *MockChatSession) Busy() bool { return false }

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Session:   &MockSessionService{},
		Document:  &MockDocumentService{},
		Quiz:      &MockQuizEngine{},
		Flashcard: &MockFlashcardEngine{},
		Chat:      &MockChatSession{},
	}

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingPorts(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Ports)
		wantErr error
	}{
		{"missing session", func(p *Ports) { p.Session = nil }, ErrMissingSessionService},
		{"missing document", func(p *Ports) { p.Document = nil }, ErrMissingDocumentService},
		{"missing quiz", func(p *Ports) { p.Quiz = nil }, ErrMissingQuizEngine},
		{"missing flashcard", func(p *Ports) { p.Flashcard = nil }, ErrMissingFlashcardEngine},
		{"missing chat", func(p *Ports) { p.Chat = nil }, ErrMissingChatSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := &Ports{
				Session:   &MockSessionService{},
				Document:  &MockDocumentService{},
				Quiz:      &MockQuizEngine{},
				Flashcard: &MockFlashcardEngine{},
				Chat:      &MockChatSession{},
			}
			tt.mutate(ports)

			assert.ErrorIs(t, ports.Validate(), tt.wantErr)
		})
	}
}
