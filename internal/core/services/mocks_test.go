package services

import (
	"context"
	"io"
	"sync"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driven"
)

// MockAuthAPI implements driven.AuthAPI for testing.
type MockAuthAPI struct {
	RegisterFunc func(ctx context.Context, req driven.RegisterRequest) (*domain.User, error)
	LoginFunc    func(ctx context.Context, username, password string) (string, error)
	MeFunc       func(ctx context.Context) (*domain.User, error)
}

func (m *MockAuthAPI) Register(ctx context.Context, req driven.RegisterRequest) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &domain.User{}, nil
}

func (m *MockAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return "", nil
}

func (m *MockAuthAPI) Me(ctx context.Context) (*domain.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx)
	}
	return &domain.User{}, nil
}

// MockLearningAPI implements driven.LearningAPI for testing.
type MockLearningAPI struct {
	GetSummaryFunc         func(ctx context.Context, documentID int64) (*domain.Summary, error)
	GenerateSummaryFunc    func(ctx context.Context, documentID int64) (*domain.Summary, error)
	ListQuizzesFunc        func(ctx context.Context, documentID int64) ([]domain.Quiz, error)
	GenerateQuizFunc       func(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error)
	ListFlashcardsFunc     func(ctx context.Context, documentID int64) ([]domain.Flashcard, error)
	GenerateFlashcardsFunc func(ctx context.Context, documentID int64, cardCount int) ([]domain.Flashcard, error)
	ReviewFlashcardFunc    func(ctx context.Context, cardID int64, difficulty domain.Difficulty) error
}

func (m *MockLearningAPI) GetSummary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, documentID)
	}
	return nil, nil
}

func (m *MockLearningAPI) GenerateSummary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	if m.GenerateSummaryFunc != nil {
		return m.GenerateSummaryFunc(ctx, documentID)
	}
	return nil, nil
}

func (m *MockLearningAPI) ListQuizzes(ctx context.Context, documentID int64) ([]domain.Quiz, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx, documentID)
	}
	return nil, nil
}

func (m *MockLearningAPI) GenerateQuiz(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, documentID, questionCount)
	}
	return nil, nil
}

func (m *MockLearningAPI) ListFlashcards(ctx context.Context, documentID int64) ([]domain.Flashcard, error) {
	if m.ListFlashcardsFunc != nil {
		return m.ListFlashcardsFunc(ctx, documentID)
	}
	return nil, nil
}

func (m *MockLearningAPI) GenerateFlashcards(ctx context.Context, documentID int64, cardCount int) ([]domain.Flashcard, error) {
	if m.GenerateFlashcardsFunc != nil {
		return m.GenerateFlashcardsFunc(ctx, documentID, cardCount)
	}
	return nil, nil
}

func (m *MockLearningAPI) ReviewFlashcard(ctx context.Context, cardID int64, difficulty domain.Difficulty) error {
	if m.ReviewFlashcardFunc != nil {
		return m.ReviewFlashcardFunc(ctx, cardID, difficulty)
	}
	return nil
}

// MockChatAPI implements driven.ChatAPI for testing.
type MockChatAPI struct {
	AskFunc               func(ctx context.Context, question string, documentID int64) (*domain.Exchange, error)
	EligibleDocumentsFunc func(ctx context.Context) ([]domain.Document, error)

	// AskCalls counts remote asks, to assert local rejections never call out.
	AskCalls int
}

func (m *MockChatAPI) Ask(ctx context.Context, question string, documentID int64) (*domain.Exchange, error) {
	m.AskCalls++
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question, documentID)
	}
	return &domain.Exchange{Question: question}, nil
}

func (m *MockChatAPI) EligibleDocuments(ctx context.Context) ([]domain.Document, error) {
	if m.EligibleDocumentsFunc != nil {
		return m.EligibleDocumentsFunc(ctx)
	}
	return nil, nil
}

// MockDocumentAPI implements driven.DocumentAPI for testing.
type MockDocumentAPI struct {
	ListFunc   func(ctx context.Context) ([]domain.Document, error)
	GetFunc    func(ctx context.Context, id int64) (*domain.Document, error)
	DeleteFunc func(ctx context.Context, id int64) error
	UploadFunc func(ctx context.Context, filename string, content io.Reader) (*domain.Document, error)

	// UploadCalls counts remote uploads, to assert local rejections never
	// call out.
	UploadCalls int
}

func (m *MockDocumentAPI) List(ctx context.Context) ([]domain.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockDocumentAPI) Get(ctx context.Context, id int64) (*domain.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDocumentAPI) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockDocumentAPI) Upload(ctx context.Context, filename string, content io.Reader) (*domain.Document, error) {
	m.UploadCalls++
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, filename, content)
	}
	return nil, nil
}

// MockTokenStore is an in-memory driven.TokenStore.
type MockTokenStore struct {
	mu    sync.Mutex
	token string

	SetErr   error
	ClearErr error
}

func (m *MockTokenStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MockTokenStore) SetToken(token string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MockTokenStore) Clear() error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
