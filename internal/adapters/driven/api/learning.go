package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// summaryPayload is the wire form of a summary.
type summaryPayload struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func (p summaryPayload) toDomain() *domain.Summary {
	return &domain.Summary{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: parseTime(p.CreatedAt),
	}
}

// questionPayload is the wire form of a quiz question.
type questionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// quizPayload is the wire form of a quiz.
type quizPayload struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Questions []questionPayload `json:"questions"`
	CreatedAt string            `json:"created_at"`
}

func (p quizPayload) toDomain() domain.Quiz {
	questions := make([]domain.Question, 0, len(p.Questions))
	for _, q := range p.Questions {
		questions = append(questions, domain.Question{
			Text:         q.Question,
			Options:      q.Options,
			CorrectLabel: q.CorrectAnswer,
			Explanation:  q.Explanation,
		})
	}
	return domain.Quiz{
		ID:        p.ID,
		Title:     p.Title,
		Questions: questions,
		CreatedAt: parseTime(p.CreatedAt),
	}
}

// wireDifficulty decodes the difficulty field of a card. The service emits
// it as a lowercase name ("easy"/"medium"/"hard") on reads but takes an
// integer on the review endpoint, so accept both forms.
type wireDifficulty domain.Difficulty

func (d *wireDifficulty) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch strings.ToLower(name) {
		case "easy":
			*d = wireDifficulty(domain.DifficultyEasy)
		case "hard":
			*d = wireDifficulty(domain.DifficultyHard)
		default:
			*d = wireDifficulty(domain.DifficultyNormal)
		}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = wireDifficulty(n)
	return nil
}

// flashcardPayload is the wire form of a flashcard.
type flashcardPayload struct {
	ID         int64          `json:"id"`
	Front      string         `json:"front"`
	Back       string         `json:"back"`
	Difficulty wireDifficulty `json:"difficulty"`
	NextReview string         `json:"next_review"`
	CreatedAt  string         `json:"created_at"`
}

func (p flashcardPayload) toDomain() domain.Flashcard {
	return domain.Flashcard{
		ID:         p.ID,
		Front:      p.Front,
		Back:       p.Back,
		Difficulty: domain.Difficulty(p.Difficulty),
		NextReview: parseTime(p.NextReview),
		CreatedAt:  parseTime(p.CreatedAt),
	}
}

// GetSummary returns the existing summary for a document.
func (c *Client) GetSummary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	var out summaryPayload
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/learning-materials/summaries/" + strconv.FormatInt(documentID, 10),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// GenerateSummary synthesises (or returns the existing) summary.
func (c *Client) GenerateSummary(ctx context.Context, documentID int64) (*domain.Summary, error) {
	var out summaryPayload
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/learning-materials/summaries/" + strconv.FormatInt(documentID, 10),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ListQuizzes returns the existing quizzes for a document.
func (c *Client) ListQuizzes(ctx context.Context, documentID int64) ([]domain.Quiz, error) {
	var out []quizPayload
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/learning-materials/quizzes/" + strconv.FormatInt(documentID, 10),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}

	quizzes := make([]domain.Quiz, 0, len(out))
	for _, p := range out {
		quizzes = append(quizzes, p.toDomain())
	}
	return quizzes, nil
}

// GenerateQuiz synthesises a new quiz with the given question count.
func (c *Client) GenerateQuiz(ctx context.Context, documentID int64, questionCount int) (*domain.Quiz, error) {
	query := url.Values{}
	query.Set("numQuestions", strconv.Itoa(questionCount))

	var out quizPayload
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/learning-materials/quizzes/" + strconv.FormatInt(documentID, 10),
		query:  query,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	quiz := out.toDomain()
	return &quiz, nil
}

// ListFlashcards returns the existing deck for a document.
func (c *Client) ListFlashcards(ctx context.Context, documentID int64) ([]domain.Flashcard, error) {
	var out []flashcardPayload
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/learning-materials/flashcards/" + strconv.FormatInt(documentID, 10),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return flashcardsToDomain(out), nil
}

// GenerateFlashcards synthesises a new deck with the given card count.
func (c *Client) GenerateFlashcards(ctx context.Context, documentID int64, cardCount int) ([]domain.Flashcard, error) {
	query := url.Values{}
	query.Set("numCards", strconv.Itoa(cardCount))

	// Generation wraps the deck in an envelope; the list endpoint returns
	// a bare array.
	var out struct {
		Flashcards []flashcardPayload `json:"flashcards"`
	}
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/learning-materials/flashcards/" + strconv.FormatInt(documentID, 10),
		query:  query,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return flashcardsToDomain(out.Flashcards), nil
}

// ReviewFlashcard submits a difficulty rating for one card.
func (c *Client) ReviewFlashcard(ctx context.Context, cardID int64, difficulty domain.Difficulty) error {
	query := url.Values{}
	query.Set("difficulty", strconv.Itoa(int(difficulty)))

	return c.do(ctx, request{
		method: http.MethodPut,
		path:   "/learning-materials/flashcards/" + strconv.FormatInt(cardID, 10) + "/review",
		query:  query,
	})
}

func flashcardsToDomain(payloads []flashcardPayload) []domain.Flashcard {
	deck := make([]domain.Flashcard, 0, len(payloads))
	for _, p := range payloads {
		deck = append(deck, p.toDomain())
	}
	return deck
}
