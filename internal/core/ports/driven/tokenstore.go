package driven

// TokenStore persists the bearer token across process restarts.
//
// The Session Store is the only writer; the request gateway reads the
// current token through this interface on every call, so a login or logout
// is visible to the gateway immediately with no stale-token window.
type TokenStore interface {
	// Token returns the current token, or the empty string when logged out.
	Token() string

	// SetToken stores and persists a token.
	SetToken(token string) error

	// Clear removes the token from memory and persistent storage.
	Clear() error
}
