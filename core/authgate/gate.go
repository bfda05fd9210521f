package authgate

import (
	"net/http"
	"strings"
	"sync"
)

// Gate is an http.RoundTripper that attaches the current bearer token to
// outgoing requests unless the request targets a public endpoint.
//
// The gate holds no state beyond the current token. It performs no local
// authorization check: a protected request issued without a token proceeds
// unauthenticated and the server is expected to reject it. A 401 response is
// passed through untouched.
type Gate struct {
	mu          sync.RWMutex
	token       string
	base        http.RoundTripper
	headerName  string
	publicPaths []string
}

var _ http.RoundTripper = (*Gate)(nil)

// Option configures the gate.
type Option func(*Gate)

// WithBase sets the underlying transport used to execute requests.
// Default is http.DefaultTransport.
func WithBase(base http.RoundTripper) Option {
	return func(g *Gate) {
		if base != nil {
			g.base = base
		}
	}
}

// WithHeaderName sets a custom header name for the bearer credential.
// Default is "Authorization".
func WithHeaderName(name string) Option {
	return func(g *Gate) {
		if name != "" {
			g.headerName = name
		}
	}
}

// WithPublicPaths sets the public-endpoint allowlist. A request whose URL
// path contains any of the given substrings is sent without a credential.
func WithPublicPaths(paths ...string) Option {
	return func(g *Gate) {
		g.publicPaths = paths
	}
}

// New creates a request gate with no token set.
func New(opts ...Option) *Gate {
	g := &Gate{
		base:       http.DefaultTransport,
		headerName: "Authorization",
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SetToken replaces the token attached to future requests.
// An empty string clears the credential.
func (g *Gate) SetToken(token string) {
	g.mu.Lock()
	g.token = token
	g.mu.Unlock()
}

// Token returns the currently set token, or an empty string.
func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// RoundTrip implements http.RoundTripper. The request is cloned before any
// header mutation, per the RoundTripper contract.
func (g *Gate) RoundTrip(req *http.Request) (*http.Response, error) {
	if g.isPublic(req.URL.Path) {
		return g.base.RoundTrip(req)
	}

	g.mu.RLock()
	token := g.token
	g.mu.RUnlock()

	if token == "" {
		return g.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(g.headerName, "Bearer "+token)

	return g.base.RoundTrip(clone)
}

func (g *Gate) isPublic(path string) bool {
	for _, public := range g.publicPaths {
		if strings.Contains(path, public) {
			return true
		}
	}
	return false
}
