package tui

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("tui: session service is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("tui: document service is required")

// ErrMissingQuizEngine is returned when the quiz engine is not provided.
var ErrMissingQuizEngine = errors.New("tui: quiz engine is required")

// ErrMissingFlashcardEngine is returned when the flashcard engine is not provided.
var ErrMissingFlashcardEngine = errors.New("tui: flashcard engine is required")

// ErrMissingChatSession is returned when the chat session is not provided.
var ErrMissingChatSession = errors.New("tui: chat session is required")
