package session

import (
	"log/slog"
	"time"
)

// DefaultTTL is the fixed session duration. The backend does not supply an
// expiry with the login response, so the client computes one.
const DefaultTTL = 30 * time.Minute

// Keys names the credential store entries holding the persisted session.
type Keys struct {
	Token     string
	User      string
	ExpiresAt string
}

// DefaultKeys returns the storage key names used unless overridden.
func DefaultKeys() Keys {
	return Keys{
		Token:     "token",
		User:      "user",
		ExpiresAt: "expires_at",
	}
}

// Config provides environment-based configuration for the session manager.
type Config struct {
	// TTL is the fixed session duration applied at sign-in.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// StorePath is the credential database location. Empty means the
	// application chooses a per-user default.
	StorePath string `env:"SESSION_STORE_PATH" envDefault:""`
}

// Option is a functional option for configuring the session manager.
type Option func(*Manager)

// WithTTL sets the fixed session duration applied at sign-in.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock replaces the wall clock, letting tests drive expiry virtually.
func WithClock(clock Clock) Option {
	return func(m *Manager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithLogger sets the logger for best-effort failure reporting.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithStorageKeys overrides the credential store key names.
func WithStorageKeys(keys Keys) Option {
	return func(m *Manager) {
		if keys.Token != "" && keys.User != "" && keys.ExpiresAt != "" {
			m.keys = keys
		}
	}
}
