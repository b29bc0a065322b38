package driving

import (
	"context"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// SessionState is the lifecycle state of the authenticated session.
type SessionState int

const (
	// SessionUnknown is the state before Restore has been called.
	SessionUnknown SessionState = iota
	// SessionLoading means a persisted token is being resolved to a user.
	// Protected flows must not be entered while loading.
	SessionLoading
	// SessionAuthenticated means a live credential is held.
	SessionAuthenticated
	// SessionAnonymous means no credential is held.
	SessionAnonymous
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case SessionUnknown:
		return "unknown"
	case SessionLoading:
		return "loading"
	case SessionAuthenticated:
		return "authenticated"
	case SessionAnonymous:
		return "anonymous"
	default:
		return "invalid"
	}
}

// RegisterInput carries the fields for the composed register-then-login
// operation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// SessionService owns the credential lifecycle:
// Unknown -> Loading -> {Authenticated, Anonymous}.
type SessionService interface {
	// State returns the current session state.
	State() SessionState

	// Credential returns the live credential, or nil when not authenticated.
	// A returned credential always carries both token and identity.
	Credential() *domain.Credential

	// Restore resolves a previously persisted token on process start.
	// A rejected token is cleared silently; the session ends Anonymous.
	Restore(ctx context.Context) error

	// Login exchanges credentials for a token and resolves the identity.
	// On any failure the session state is unchanged (still Anonymous) and
	// no partial credential is observable.
	Login(ctx context.Context, username, password string) error

	// Register creates an account then logs in with the same credentials.
	// It only reports success if the composed login also succeeds.
	Register(ctx context.Context, input RegisterInput) error

	// Logout clears the credential and its persisted copy unconditionally.
	// Calling it while logged out is a no-op.
	Logout()
}
