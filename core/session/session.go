package session

import "time"

// Status is the session state machine state.
type Status int

const (
	// StatusLoading is the transient state during startup restoration.
	// No transition leads back to Loading once restoration completes.
	StatusLoading Status = iota
	// StatusAnonymous means no valid session exists.
	StatusAnonymous
	// StatusAuthenticated means a token and user profile are loaded.
	StatusAuthenticated
)

// String returns the lowercase state name.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// User is the profile snapshot captured at sign-in time.
// It is not re-fetched automatically.
type User struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`

	// ExternalID is the platform identifier (CPF). The login response omits
	// it from the profile payload, so it is recovered from the token claims.
	ExternalID string `json:"cpf,omitempty"`
}

// Session is a read-only snapshot of the current authentication context.
// Only the Manager mutates the underlying state; consumers receive copies.
type Session struct {
	Token     string
	User      *User
	ExpiresAt time.Time
	Status    Status
}

// IsAuthenticated reports whether the snapshot represents a signed-in user.
func (s Session) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.Token != ""
}

// Credentials are submitted to the remote authentication endpoint.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the profile payload submitted at sign-up.
// Registering does not establish a session; the user signs in afterward.
type Registration struct {
	Identifier string
	Name       string
	Email      string
	Password   string
	Role       string
	Phone      string
}

// AuthResult is what the remote authentication collaborator returns on success.
type AuthResult struct {
	Token string
	User  User
}
