package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driven"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driving"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// Session owns the credential lifecycle. It is the only writer of the
// token store; the request gateway reads the store directly, so the
// token the gateway attaches always reflects this session's state.
type Session struct {
	mu     sync.RWMutex
	api    driven.AuthAPI
	tokens driven.TokenStore

	state driving.SessionState
	cred  *domain.Credential
}

// NewSession creates a session in the Unknown state.
func NewSession(api driven.AuthAPI, tokens driven.TokenStore) *Session {
	return &Session{
		api:    api,
		tokens: tokens,
		state:  driving.SessionUnknown,
	}
}

// State returns the current session state.
func (s *Session) State() driving.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Credential returns the live credential, or nil when not authenticated.
func (s *Session) Credential() *domain.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil {
		return nil
	}
	cred := *s.cred
	return &cred
}

// Restore resolves a previously persisted token to a user on process
// start. While resolving, the state is Loading; dependents must not enter
// protected flows until it settles. A rejected token is evicted and the
// session ends Anonymous without error.
func (s *Session) Restore(ctx context.Context) error {
	s.mu.Lock()
	s.state = driving.SessionLoading
	s.mu.Unlock()

	token := s.tokens.Token()
	if token == "" {
		s.setAnonymous()
		return nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		// Expired or revoked token: evict and continue logged out.
		logger.Debug("session restore rejected: %v", err)
		if clearErr := s.tokens.Clear(); clearErr != nil {
			logger.Warn("clearing persisted token: %v", clearErr)
		}
		s.setAnonymous()
		return nil
	}

	s.mu.Lock()
	s.cred = &domain.Credential{Token: token, User: *user}
	s.state = driving.SessionAuthenticated
	s.mu.Unlock()
	logger.Debug("session restored for %s", user.Username)
	return nil
}

// Login exchanges credentials for a token and resolves the identity.
// The token is persisted before identity resolution so the gateway
// attaches it to the /auth/me call; if resolution fails the token is
// evicted again and no partial credential is ever observable.
func (s *Session) Login(ctx context.Context, username, password string) error {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.tokens.SetToken(token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		// Identity resolution failure is treated as logout.
		if clearErr := s.tokens.Clear(); clearErr != nil {
			logger.Warn("clearing persisted token: %v", clearErr)
		}
		s.setAnonymous()
		return fmt.Errorf("resolving identity: %w", err)
	}

	s.mu.Lock()
	s.cred = &domain.Credential{Token: token, User: *user}
	s.state = driving.SessionAuthenticated
	s.mu.Unlock()
	return nil
}

// Register creates an account then logs in with the same credentials.
// Registration success does not imply session success: only a successful
// composed login reports success. Failures carry the gateway's real
// classification rather than a guessed cause.
func (s *Session) Register(ctx context.Context, input driving.RegisterInput) error {
	_, err := s.api.Register(ctx, driven.RegisterRequest{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return s.Login(ctx, input.Username, input.Password)
}

// Logout clears the credential and its persisted copy. Idempotent.
func (s *Session) Logout() {
	if err := s.tokens.Clear(); err != nil {
		logger.Warn("clearing persisted token: %v", err)
	}
	s.setAnonymous()
}

func (s *Session) setAnonymous() {
	s.mu.Lock()
	s.cred = nil
	s.state = driving.SessionAnonymous
	s.mu.Unlock()
}
