package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from transport errors, which the API adapter classifies.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotAuthenticated indicates no live credential is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrBusy indicates a mutating call is already outstanding for the engine.
	// Engines allow at most one outstanding mutating call per entity scope.
	ErrBusy = errors.New("operation already in progress")

	// ErrStaleResponse indicates a response arrived after the engine state it
	// was issued against was reset or replaced. The result was discarded.
	ErrStaleResponse = errors.New("stale response discarded")

	// ErrNoQuiz indicates no quiz is loaded into the engine.
	ErrNoQuiz = errors.New("no quiz loaded")

	// ErrNotFinished indicates the quiz attempt has not reached the results state.
	ErrNotFinished = errors.New("attempt not finished")

	// ErrNoDeck indicates no flashcard deck is loaded into the engine.
	ErrNoDeck = errors.New("no deck loaded")

	// ErrNotRevealed indicates a review was submitted while the card front
	// was showing. Reviews are only valid from the answer-shown state.
	ErrNotRevealed = errors.New("card not revealed")

	// ErrNoDocumentSelected indicates a chat question was asked without an
	// active document scope.
	ErrNoDocumentSelected = errors.New("no document selected")

	// ErrEmptyQuestion indicates a blank chat question was rejected locally.
	ErrEmptyQuestion = errors.New("question is empty")
)
