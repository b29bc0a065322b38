package driven

import (
	"context"
	"io"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// RegisterRequest carries the fields for account creation.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	FullName string
}

// AuthAPI is the authentication surface of the remote service.
type AuthAPI interface {
	// Register creates a new account. It does not log in.
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// Me resolves the currently attached token to its user.
	Me(ctx context.Context) (*domain.User, error)
}

// DocumentAPI manages uploaded documents.
type DocumentAPI interface {
	// List returns all documents owned by the authenticated user.
	List(ctx context.Context) ([]domain.Document, error)

	// Get returns a single document including its extracted content.
	Get(ctx context.Context, id int64) (*domain.Document, error)

	// Delete removes a document and its derived materials.
	Delete(ctx context.Context, id int64) error

	// Upload sends a file as multipart form data and returns the created
	// document reference.
	Upload(ctx context.Context, filename string, content io.Reader) (*domain.Document, error)
}

// LearningAPI fetches and generates derived learning materials.
type LearningAPI interface {
	// GetSummary returns the existing summary for a document.
	GetSummary(ctx context.Context, documentID int64) (*domain.Summary, error)

	// GenerateSummary synthesises (or returns the existing) summary.
	GenerateSummary(ctx context.Context, documentID int64) (*domain.Summary, error)

	// ListQuizzes returns the existing quizzes for a document.
	ListQuizzes(ctx context.Context, documentID int64) ([]domain.Quiz, error)

	// GenerateQuiz synthesises a new quiz with the given question count.
	GenerateQuiz(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error)

	// ListFlashcards returns the existing deck for a document.
	ListFlashcards(ctx context.Context, documentID int64) ([]domain.Flashcard, error)

	// GenerateFlashcards synthesises a new deck with the given card count.
	GenerateFlashcards(ctx context.Context, documentID int64, cardCount int) ([]domain.Flashcard, error)

	// ReviewFlashcard submits a difficulty rating for one card. The service
	// recomputes the card's next review time server-side.
	ReviewFlashcard(ctx context.Context, cardID int64, difficulty domain.Difficulty) error
}

// ChatAPI answers questions over a selected document.
type ChatAPI interface {
	// Ask sends a question scoped to a document and returns the exchange.
	Ask(ctx context.Context, question string, documentID int64) (*domain.Exchange, error)

	// EligibleDocuments returns the documents available for chat.
	EligibleDocuments(ctx context.Context) ([]domain.Document, error)
}
