package domain

import "time"

// Difficulty is the self-reported recall rating for a reviewed card.
// The wire encoding matches the service: 0 easy, 1 normal, 2 hard.
type Difficulty int

const (
	// DifficultyEasy means the card was recalled without effort.
	DifficultyEasy Difficulty = 0
	// DifficultyNormal means the card was recalled with some effort.
	DifficultyNormal Difficulty = 1
	// DifficultyHard means the card was not recalled.
	DifficultyHard Difficulty = 2
)

// Valid reports whether d is one of the known difficulty ratings.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Flashcard is one card of a generated deck. Cards are owned by the remote
// service; the client mutates Difficulty and NextReview only indirectly by
// submitting a review.
type Flashcard struct {
	// ID is the unique identifier for the card.
	ID int64

	// Front is the question side.
	Front string

	// Back is the answer side.
	Back string

	// Difficulty is the last reported rating.
	Difficulty Difficulty

	// NextReview is the server-computed next review time.
	NextReview time.Time

	// CreatedAt is when the card was generated.
	CreatedAt time.Time
}

// ReviewSession is the ephemeral, client-owned progress over one deck.
// Like QuizAttempt it is a value: transitions return a new session.
// Invariant: the cursor stays within [0, len(deck)-1] for a non-empty deck,
// and Revealed is false immediately after any cursor change.
type ReviewSession struct {
	// Deck is the ordered cards under review.
	Deck []Flashcard

	// Cursor is the index of the card being shown.
	Cursor int

	// Revealed is true while the answer side is showing.
	Revealed bool
}

// NewReviewSession starts a session at the first card, question side up.
func NewReviewSession(deck []Flashcard) ReviewSession {
	return ReviewSession{Deck: deck}
}

// Len returns the deck size.
func (s ReviewSession) Len() int {
	return len(s.Deck)
}

// Card returns the card under the cursor.
func (s ReviewSession) Card() Flashcard {
	return s.Deck[s.Cursor]
}

// AtEnd reports whether the cursor is on the last card.
func (s ReviewSession) AtEnd() bool {
	return s.Cursor == len(s.Deck)-1
}

// Flipped toggles between the question and answer sides.
func (s ReviewSession) Flipped() ReviewSession {
	s.Revealed = !s.Revealed
	return s
}

// Next moves the cursor forward, clamped at the last card. Any cursor
// movement, including a clamped no-move, resets to the question side.
func (s ReviewSession) Next() ReviewSession {
	if s.Cursor < len(s.Deck)-1 {
		s.Cursor++
	}
	s.Revealed = false
	return s
}

// Prev moves the cursor backward, clamped at the first card, resetting to
// the question side.
func (s ReviewSession) Prev() ReviewSession {
	if s.Cursor > 0 {
		s.Cursor--
	}
	s.Revealed = false
	return s
}
