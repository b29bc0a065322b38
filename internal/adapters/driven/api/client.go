package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/ports/driven"
	"github.com/mcpolo78/ai-knowledge-tutor/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout. Generation
	// endpoints run an LLM server-side and are slow.
	DefaultTimeout = 120 * time.Second

	// ProactiveRate is the proactive throttle rate in requests per second.
	ProactiveRate = 5

	// apiPrefix is the service's versioned path prefix.
	apiPrefix = "/api/v1"
)

// Ensure Client implements the remote service ports.
var (
	_ driven.AuthAPI     = (*Client)(nil)
	_ driven.DocumentAPI = (*Client)(nil)
	_ driven.LearningAPI = (*Client)(nil)
	_ driven.ChatAPI     = (*Client)(nil)
)

// Client is the single chokepoint for calls to the learning service.
type Client struct {
	baseURL string
	tokens  driven.TokenStore
	authed  *http.Client
	anon    *http.Client
	limiter *rate.Limiter
}

// storeTokenSource adapts the token store to oauth2.TokenSource so the
// oauth2 transport attaches the current token on every request. Reading
// the store per request means a login or logout is visible immediately.
type storeTokenSource struct {
	tokens driven.TokenStore
}

func (s storeTokenSource) Token() (*oauth2.Token, error) {
	token := s.tokens.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return &oauth2.Token{AccessToken: token}, nil
}

// NewClient creates a gateway for the service at baseURL. The token store
// is read-only from the gateway's perspective; the session service owns
// writes.
func NewClient(baseURL string, tokens driven.TokenStore) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	authed := &http.Client{
		Timeout: DefaultTimeout,
		Transport: &oauth2.Transport{
			Source: storeTokenSource{tokens: tokens},
		},
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		authed:  authed,
		anon:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), ProactiveRate),
	}
}

// request describes one call through the gateway.
type request struct {
	method string
	path   string
	query  url.Values
	body   any  // JSON-encoded when non-nil
	raw    io.Reader
	rawCT  string // content type for raw bodies
	anon   bool   // skip token attachment (register/login)
	out    any  // JSON-decoded response target, skipped when nil
}

// do performs one HTTP exchange and classifies any failure. It never
// retries; retry is a user decision everywhere in this client.
func (c *Client) do(ctx context.Context, req request) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}

	u := c.baseURL + apiPrefix + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.raw != nil:
		body = req.raw
		contentType = req.rawCT
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	client := c.authed
	if req.anon {
		client = c.anon
	}

	logger.Debug("api: %s %s", req.method, u)
	resp, err := client.Do(httpReq)
	if err != nil {
		// A missing token surfaces from the oauth2 transport before any
		// bytes hit the wire; classify it as the service would have.
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return &Error{Kind: KindUnauthorized, Err: err}
		}
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if req.out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(req.out); err != nil {
		return &Error{Kind: KindUnknown, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// errorDetail is the service's error envelope.
type errorDetail struct {
	Detail string `json:"detail"`
}

// errorFromResponse builds a classified error from a non-2xx response.
func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &Error{
		Kind:   classifyStatus(resp.StatusCode),
		Status: resp.StatusCode,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(raw) > 0 {
		var detail errorDetail
		if json.Unmarshal(raw, &detail) == nil && detail.Detail != "" {
			apiErr.Message = detail.Detail
		}
	}

	logger.Debug("api: %d %s: %s", resp.StatusCode, apiErr.Kind, apiErr.Message)
	return apiErr
}
