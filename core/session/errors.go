package session

import "errors"

var (
	// ErrNoAuthenticator is returned by SignIn when no authentication
	// collaborator was configured.
	ErrNoAuthenticator = errors.New("no authenticator configured")
	// ErrNoRegistrar is returned by SignUp when no registration
	// collaborator was configured.
	ErrNoRegistrar = errors.New("no registrar configured")
)
