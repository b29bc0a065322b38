// Package domain defines the core business entities for the tutor client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - User / Credential: The authenticated identity and bearer token
//   - Document: A reference to an uploaded document
//   - Quiz / QuizAttempt: An immutable quiz and the client-owned attempt over it
//   - Flashcard / ReviewSession: A generated deck and the client-owned review progress
//   - Exchange: A question/answer pair in a chat transcript
//
// QuizAttempt and ReviewSession are values with pure transition functions:
// every transition returns a new value, so state-machine logic is testable
// without any rendering or transport in the loop.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
