package session

import "context"

// Authenticator is the remote authentication collaborator.
// integration/nebulo provides the HTTP implementation.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (AuthResult, error)
}

// Registrar is the remote registration collaborator.
type Registrar interface {
	Register(ctx context.Context, reg Registration) error
}

// TokenSink receives the current bearer token on every authentication
// transition. core/authgate implements it.
type TokenSink interface {
	SetToken(token string)
}
