// Package client is the storefront-side core of StyleHub: a REST client for
// the catalog, the session-scoped cart store (remote and local flavors) and
// the degraded-mode catalog fallback.
package client

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

	"github.com/graniti123/stylehub/session"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response from the StyleHub API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stylehub: api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API. Not-found is a
// valid steady state for cart reads, never a user-facing error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Provider
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithSessionProvider lets the composition root own the session scope, e.g.
// to share one session across several clients.
func WithSessionProvider(p *session.Provider) Option {
	return func(c *Client) { c.sessions = p }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		sessions:   session.NewProvider(session.NewMemoryStore()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID returns the identifier scoping this client's cart, creating it
// on first use.
func (c *Client) SessionID() string {
	return c.sessions.GetOrCreate()
}

// envelope is the uniform response shape of the API. Detail carries error
// messages from frameworks that don't use the envelope.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Total   int             `json:"total"`
	Detail  string          `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("stylehub: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("stylehub: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stylehub: request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= http.StatusBadRequest {
		msg := env.Message
		if msg == "" {
			msg = env.Detail
		}
		if msg == "" {
			msg = resp.Status
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("stylehub: decode response: %w", decodeErr)
	}
	return &env, nil
}

// Ping checks that the API answers at all.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/", nil, nil)
	return err
}

// Health checks API and database health.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil, nil)
	return err
}
