package cli

import (
	"context"
	"io"
	"time"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
)

// mockSessionService implements driving.SessionService with function fields.
type mockSessionService struct {
	StateFunc      func() driving.SessionState
	CredentialFunc func() *domain.Credential
	RestoreFunc    func(ctx context.Context) error
	LoginFunc      func(ctx context.Context, username, password string) error
	RegisterFunc   func(ctx context.Context, input driving.RegisterInput) error
	LogoutCalls    int
}

func (m *mockSessionService) State() driving.SessionState {
	if m.StateFunc != nil {
		return m.StateFunc()
	}
	return driving.SessionAnonymous
}

func (m *mockSessionService) Credential() *domain.Credential {
	if m.CredentialFunc != nil {
		return m.CredentialFunc()
	}
	return nil
}

func (m *mockSessionService) Restore(ctx context.Context) error {
	if m.RestoreFunc != nil {
		return m.RestoreFunc(ctx)
	}
	return nil
}

func (m *mockSessionService) Login(ctx context.Context, username, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil
}

func (m *mockSessionService) Register(ctx context.Context, input driving.RegisterInput) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return nil
}

func (m *mockSessionService) Logout() {
	m.LogoutCalls++
}

// mockDocumentService implements driving.DocumentService.
type mockDocumentService struct {
	ListFunc            func(ctx context.Context) ([]domain.Document, error)
	GetFunc             func(ctx context.Context, id int64) (*domain.Document, error)
	DeleteFunc          func(ctx context.Context, id int64) error
	UploadFunc          func(ctx context.Context, filename string, content io.Reader) (*domain.Document, error)
	SummaryFunc         func(ctx context.Context, documentID int64) (*domain.Summary, error)
	GenerateSummaryFunc func(ctx context.Context, documentID int64) (*domain.Summary, error)
}

func (m *mockDocumentService) List(ctx context.Context) ([]domain.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDocumentService) Get(ctx context.Context, id int64) (*domain.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDocumentService) Upload(ctx context.Context, filename string, content io.Reader) (*domain.Document, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, filename, content)
	}
	return nil, nil
}

func (m *mockDocumentService) Summary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, documentID)
	}
	return nil, nil
}

func (m *mockDocumentService) GenerateSummary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	if m.GenerateSummaryFunc != nil {
		return m.GenerateSummaryFunc(ctx, documentID)
	}
	return nil, nil
}

// mockQuizEngine implements driving.QuizEngine.
type mockQuizEngine struct {
	LoadFunc         func(ctx context.Context, documentID int64) error
	GenerateFunc     func(ctx context.Context, documentID int64, questionCount int) error
	StateFunc        func() driving.QuizState
	AttemptFunc      func() (domain.QuizAttempt, bool)
	SelectAnswerFunc func(label string) error
	AdvanceFunc      func() error
	RetreatFunc      func() error
	ScoreFunc        func() (domain.QuizScore, error)
	ResetFunc        func() error
}

func (m *mockQuizEngine) Load(ctx context.Context, documentID int64) error {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, documentID)
	}
	return nil
}

func (m *mockQuizEngine) Generate(ctx context.Context, documentID int64, questionCount int) error {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, documentID, questionCount)
	}
	return nil
}

func (m *mockQuizEngine) State() driving.QuizState {
	if m.StateFunc != nil {
		return m.StateFunc()
	}
	return driving.QuizEmpty
}

func (m *mockQuizEngine) Attempt() (domain.QuizAttempt, bool) {
	if m.AttemptFunc != nil {
		return m.AttemptFunc()
	}
	return domain.QuizAttempt{}, false
}

func (m *mockQuizEngine) SelectAnswer(label string) error {
	if m.SelectAnswerFunc != nil {
		return m.SelectAnswerFunc(label)
	}
	return nil
}

func (m *mockQuizEngine) Advance() error {
	if m.AdvanceFunc != nil {
		return m.AdvanceFunc()
	}
	return nil
}

func (m *mockQuizEngine) Retreat() error {
	if m.RetreatFunc != nil {
		return m.RetreatFunc()
	}
	return nil
}

func (m *mockQuizEngine) Score() (domain.QuizScore, error) {
	if m.ScoreFunc != nil {
		return m.ScoreFunc()
	}
	return domain.QuizScore{}, domain.ErrNotFinished
}

func (m *mockQuizEngine) Reset() error {
	if m.ResetFunc != nil {
		return m.ResetFunc()
	}
	return nil
}

func (m *mockQuizEngine) Busy() bool { return false }

// mockFlashcardEngine implements driving.FlashcardEngine.
type mockFlashcardEngine struct {
	LoadFunc     func(ctx context.Context, documentID int64) error
	GenerateFunc func(ctx context.Context, documentID int64, cardCount int) error
	SessionFunc  func() (domain.ReviewSession, bool)
	FlipFunc     func() error
	NextFunc     func() error
	PrevFunc     func() error
	ReviewFunc   func(ctx context.Context, difficulty domain.Difficulty) error
}

func (m *mockFlashcardEngine) Load(ctx context.Context, documentID int64) error {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, documentID)
	}
	return nil
}

func (m *mockFlashcardEngine) Generate(ctx context.Context, documentID int64, cardCount int) error {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, documentID, cardCount)
	}
	return nil
}

func (m *mockFlashcardEngine) Session() (domain.ReviewSession, bool) {
	if m.SessionFunc != nil {
		return m.SessionFunc()
	}
	return domain.ReviewSession{}, false
}

func (m *mockFlashcardEngine) Flip() error {
	if m.FlipFunc != nil {
		return m.FlipFunc()
	}
	return nil
}

func (m *mockFlashcardEngine) Next() error {
	if m.NextFunc != nil {
		return m.NextFunc()
	}
	return nil
}

func (m *mockFlashcardEngine) Prev() error {
	if m.PrevFunc != nil {
		return m.PrevFunc()
	}
	return nil
}

func (m *mockFlashcardEngine) Review(ctx context.Context, difficulty domain.Difficulty) error {
	if m.ReviewFunc != nil {
		return m.ReviewFunc(ctx, difficulty)
	}
	return nil
}

func (m *mockFlashcardEngine) Busy() bool { return false }

// mockChatSession implements driving.ChatSession.
type mockChatSession struct {
	SelectDocumentFunc    func(doc domain.Document)
	ScopeFunc             func() (domain.Document, bool)
	EligibleDocumentsFunc func(ctx context.Context) ([]domain.Document, error)
	AskFunc               func(ctx context.Context, question string) (*domain.Exchange, error)
	TranscriptFunc        func() []domain.Exchange
	ClearCalls            int
}

func (m *mockChatSession) SelectDocument(doc domain.Document) {
	if m.SelectDocumentFunc != nil {
		m.SelectDocumentFunc(doc)
	}
}

func (m *mockChatSession) Scope() (domain.Document, bool) {
	if m.ScopeFunc != nil {
		return m.ScopeFunc()
	}
	return domain.Document{}, false
}

func (m *mockChatSession) EligibleDocuments(ctx context.Context) ([]domain.Document, error) {
	if m.EligibleDocumentsFunc != nil {
		return m.EligibleDocumentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockChatSession) Ask(ctx context.Context, question string) (*domain.Exchange, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, question)
	}
	return nil, nil
}

func (m *mockChatSession) Transcript() []domain.Exchange {
	if m.TranscriptFunc != nil {
		return m.TranscriptFunc()
	}
	return nil
}

func (m *mockChatSession) Clear() {
	m.ClearCalls++
}

func (m *mockChatSession) Busy() bool { return false }

// testDocuments is a small fixture set shared by command tests.
func testDocuments() []domain.Document {
	return []domain.Document{
		{
			ID:            1,
			Title:         "Linear Algebra Notes",
			Filename:      "linalg.pdf",
			Kind:          domain.KindPDF,
			ContentLength: 20480,
			CreatedAt:     time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:            2,
			Title:         "Compilers Course Reader",
			Filename:      "compilers.md",
			Kind:          domain.KindMarkdown,
			ContentLength: 8192,
			CreatedAt:     time.Date(2025, 4, 2, 17, 30, 0, 0, time.UTC),
		},
	}
}

// setupTestServices swaps the package-level services for mocks and
// returns a cleanup that restores the previous values.
func setupTestServices() func() {
	prevSession := sessionService
	prevDocument := documentService
	prevQuiz := quizEngine
	prevFlashcard := flashcardEngine
	prevChat := chatSession

	sessionService = &mockSessionService{}
	documentService = &mockDocumentService{
		ListFunc: func(context.Context) ([]domain.Document, error) {
			return testDocuments(), nil
		},
	}
	quizEngine = &mockQuizEngine{}
	flashcardEngine = &mockFlashcardEngine{}
	chatSession = &mockChatSession{}

	return func() {
		sessionService = prevSession
		documentService = prevDocument
		quizEngine = prevQuiz
		flashcardEngine = prevFlashcard
		chatSession = prevChat
	}
}
