package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/nebulohub/mobile/core/credstore"
	"github.com/nebulohub/mobile/core/logger"
	"github.com/nebulohub/mobile/pkg/jwtclaims"
)

// Manager owns the session state machine. It is the only writer of session
// state; consumers read snapshots through Current.
//
// State transitions: Loading -> {Anonymous, Authenticated} during Restore,
// Anonymous -> Authenticated via SignIn, Authenticated -> Anonymous via
// SignOut or the expiry timer. At most one expiry timer is scheduled at any
// time.
type Manager struct {
	store credstore.Store
	auth  Authenticator
	reg   Registrar
	sink  TokenSink
	clock Clock
	ttl   time.Duration
	keys  Keys
	log   *slog.Logger

	mu        sync.Mutex
	status    Status
	token     string
	user      *User
	expiresAt time.Time
	timer     Timer
}

// NewManager creates a session manager in the Loading state. Call Restore
// once at startup to reach Anonymous or Authenticated. The store must not be
// nil; auth, reg and sink may be nil when the corresponding operation is
// never used.
func NewManager(store credstore.Store, auth Authenticator, reg Registrar, sink TokenSink, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		auth:   auth,
		reg:    reg,
		sink:   sink,
		clock:  realClock{},
		ttl:    DefaultTTL,
		keys:   DefaultKeys(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		status: StatusLoading,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Restore reconstructs session state from the credential store. It is meant
// to run once at process start and is silent: a missing, partial, malformed
// or expired record forces Anonymous without surfacing an error, since no UI
// exists yet to display one. A valid unexpired record loads the token and
// profile, pushes the token into the sink and schedules the expiry timer.
// Calling Restore again after restoration completes is a no-op.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusLoading {
		return
	}

	token, errToken := m.store.Get(ctx, m.keys.Token)
	userJSON, errUser := m.store.Get(ctx, m.keys.User)
	expiryRaw, errExpiry := m.store.Get(ctx, m.keys.ExpiresAt)

	// All three keys must be present: a crash mid-write can leave a
	// partial record, which is discarded rather than trusted.
	if errToken != nil || errUser != nil || errExpiry != nil {
		m.discardLocked(ctx, "incomplete credential record")
		return
	}

	expiryMS, err := strconv.ParseInt(expiryRaw, 10, 64)
	if err != nil {
		m.discardLocked(ctx, "unparseable expiry")
		return
	}
	expiresAt := time.UnixMilli(expiryMS)

	// An already-expired record takes the sign-out path immediately
	// instead of scheduling a zero-delay timer.
	if !expiresAt.After(m.clock.Now()) {
		m.discardLocked(ctx, "expired session")
		return
	}

	var user User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		m.discardLocked(ctx, "unparseable profile")
		return
	}

	m.token = token
	m.user = &user
	m.expiresAt = expiresAt
	m.status = StatusAuthenticated
	if m.sink != nil {
		m.sink.SetToken(token)
	}
	m.scheduleLocked(expiresAt.Sub(m.clock.Now()))

	m.log.Info("session restored",
		logger.Component("session"),
		logger.ExpiresAt(expiresAt),
	)
}

// SignIn authenticates against the remote collaborator and, on success,
// persists the session, updates the token sink, schedules the expiry timer
// and transitions to Authenticated. On failure the error is returned with
// its normalized message and state is left unchanged.
func (m *Manager) SignIn(ctx context.Context, creds Credentials) error {
	if m.auth == nil {
		return ErrNoAuthenticator
	}

	result, err := m.auth.Authenticate(ctx, creds)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	user := result.User

	// The login profile payload omits the platform identifier; recover it
	// from the token claims. A decode failure is not fatal: the session
	// proceeds without the identifier.
	claims, err := jwtclaims.Decode(result.Token)
	if err != nil {
		m.log.Warn("failed to decode token claims",
			logger.Component("session"),
			logger.Error(err),
		)
	} else if claims.Identifier != "" {
		user.ExternalID = claims.Identifier
	}

	expiresAt := m.clock.Now().Add(m.ttl)
	m.persist(ctx, result.Token, &user, expiresAt)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelTimerLocked()
	m.token = result.Token
	m.user = &user
	m.expiresAt = expiresAt
	m.status = StatusAuthenticated
	if m.sink != nil {
		m.sink.SetToken(result.Token)
	}
	m.scheduleLocked(m.ttl)

	m.log.Info("signed in",
		logger.Component("session"),
		logger.ExpiresAt(expiresAt),
	)
	return nil
}

// SignOut cancels any pending expiry timer, clears the in-memory session and
// the token sink, removes the persisted record and transitions to Anonymous.
// It is idempotent: signing out while already Anonymous is a no-op beyond
// redundant clears.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	m.cancelTimerLocked()
	m.token = ""
	m.user = nil
	m.expiresAt = time.Time{}
	m.status = StatusAnonymous
	if m.sink != nil {
		m.sink.SetToken("")
	}
	m.mu.Unlock()

	if err := m.store.RemoveAll(ctx, m.keys.Token, m.keys.User, m.keys.ExpiresAt); err != nil {
		m.log.Warn("failed to clear credential store",
			logger.Component("session"),
			logger.Error(err),
		)
	}

	m.log.Info("signed out", logger.Component("session"))
	return nil
}

// SignUp delegates to the registration collaborator. It never mutates
// session state: the user still signs in afterward.
func (m *Manager) SignUp(ctx context.Context, reg Registration) error {
	if m.reg == nil {
		return ErrNoRegistrar
	}

	if err := m.reg.Register(ctx, reg); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	return nil
}

// Current returns a snapshot of the session. The user profile is copied so
// consumers cannot mutate manager-owned state.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := Session{
		Token:     m.token,
		ExpiresAt: m.expiresAt,
		Status:    m.status,
	}
	if m.user != nil {
		user := *m.user
		snapshot.User = &user
	}
	return snapshot
}

// Status returns the current state machine state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// IsAuthenticated reports whether a user is currently signed in.
func (m *Manager) IsAuthenticated() bool {
	return m.Status() == StatusAuthenticated
}

// persist writes the three credential keys sequentially. Each write is
// best-effort: a failure leaves the in-memory session authoritative for the
// current process lifetime and is only logged.
func (m *Manager) persist(ctx context.Context, token string, user *User, expiresAt time.Time) {
	if err := m.store.Set(ctx, m.keys.Token, token); err != nil {
		m.log.Warn("failed to persist token",
			logger.Component("session"),
			logger.Error(err),
		)
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		m.log.Warn("failed to encode user profile",
			logger.Component("session"),
			logger.Error(err),
		)
	} else if err := m.store.Set(ctx, m.keys.User, string(userJSON)); err != nil {
		m.log.Warn("failed to persist user profile",
			logger.Component("session"),
			logger.Error(err),
		)
	}

	if err := m.store.Set(ctx, m.keys.ExpiresAt, strconv.FormatInt(expiresAt.UnixMilli(), 10)); err != nil {
		m.log.Warn("failed to persist expiry",
			logger.Component("session"),
			logger.Error(err),
		)
	}
}

// discardLocked drops an unusable credential record and forces Anonymous.
// Callers must hold m.mu.
func (m *Manager) discardLocked(ctx context.Context, reason string) {
	if err := m.store.RemoveAll(ctx, m.keys.Token, m.keys.User, m.keys.ExpiresAt); err != nil {
		m.log.Warn("failed to clear credential store",
			logger.Component("session"),
			logger.Error(err),
		)
	}

	m.token = ""
	m.user = nil
	m.expiresAt = time.Time{}
	m.status = StatusAnonymous
	if m.sink != nil {
		m.sink.SetToken("")
	}

	m.log.Info("no session restored",
		logger.Component("session"),
		logger.Key("reason", reason),
	)
}

// scheduleLocked arms the expiry timer. Callers must hold m.mu and must have
// cancelled any prior timer first.
func (m *Manager) scheduleLocked(d time.Duration) {
	m.timer = m.clock.AfterFunc(d, m.expire)
}

// cancelTimerLocked stops any pending expiry timer. Callers must hold m.mu.
func (m *Manager) cancelTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// expire runs when the session validity window elapses.
func (m *Manager) expire() {
	m.log.Info("session expired", logger.Component("session"))
	_ = m.SignOut(context.Background())
}
