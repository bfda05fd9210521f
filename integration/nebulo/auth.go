package nebulo

import (
	"context"
	"net/http"

	"github.com/nebulohub/mobile/core/session"
)

// AuthService talks to the public authentication endpoints. It implements
// session.Authenticator and session.Registrar so the session manager can be
// wired directly to it.
type AuthService struct {
	client *Client
}

var (
	_ session.Authenticator = (*AuthService)(nil)
	_ session.Registrar     = (*AuthService)(nil)
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type loginUser struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"usuario"`
}

type registerRequest struct {
	CPF      string `json:"cpf"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"role"`
	Phone    string `json:"telefone,omitempty"`
}

// Authenticate submits credentials to POST /Auth/login and returns the token
// and profile snapshot. The profile omits the user identifier; the session
// manager recovers it from the token claims.
func (s *AuthService) Authenticate(ctx context.Context, creds session.Credentials) (session.AuthResult, error) {
	var resp loginResponse
	err := s.client.do(ctx, http.MethodPost, "/Auth/login", loginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	}, &resp)
	if err != nil {
		return session.AuthResult{}, err
	}

	return session.AuthResult{
		Token: resp.Token,
		User: session.User{
			Name:  resp.User.Name,
			Email: resp.User.Email,
			Role:  resp.User.Role,
		},
	}, nil
}

// Register submits a new profile to POST /Usuario/register. Registration
// does not establish a session.
func (s *AuthService) Register(ctx context.Context, reg session.Registration) error {
	return s.client.do(ctx, http.MethodPost, "/Usuario/register", registerRequest{
		CPF:      reg.Identifier,
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		Role:     reg.Role,
		Phone:    reg.Phone,
	}, nil)
}
