package nebulo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nebulohub/mobile/core/logger"
)

// DefaultTimeout bounds every API call end to end.
const DefaultTimeout = 10 * time.Second

// DefaultPublicPaths lists the path substrings reachable without a bearer
// token. Wire these into the request gate.
func DefaultPublicPaths() []string {
	return []string{"/Auth/login", "/register"}
}

// Client is the NebuloHub REST API client. Resource services hang off it;
// authentication state lives elsewhere (the request gate installed as the
// HTTP transport decorates protected requests).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	Auth       *AuthService
	Users      *UsersService
	Startups   *StartupsService
	Skills     *SkillsService
	Ratings    *RatingsService
	SkillLinks *SkillLinksService
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTransport sets the transport of the client's http.Client. This is how
// the request gate is installed.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.httpClient.Transport = rt
		}
	}
}

// WithTimeout sets the per-request timeout. Default is DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a client rooted at baseURL (e.g.
// "http://localhost:5101/api/v2").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{client: c}
	c.Users = &UsersService{client: c}
	c.Startups = &StartupsService{client: c}
	c.Skills = &SkillsService{client: c}
	c.Ratings = &RatingsService{client: c}
	c.SkillLinks = &SkillLinksService{client: c}

	return c
}

// Page is the paginated list envelope the API wraps collections in.
type Page[T any] struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	Items      []T `json:"items"`
}

// do executes a JSON request against the API. A non-2xx response is returned
// as *Error carrying the server-supplied message when one exists.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			logger.Component("nebulo"),
			logger.Method(method),
			logger.Path(path),
			logger.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request completed",
		logger.Component("nebulo"),
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
