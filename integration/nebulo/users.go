package nebulo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// UsersService covers the protected user-profile endpoints.
type UsersService struct {
	client *Client
}

// User is a platform user profile.
type User struct {
	CPF   string `json:"cpf"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"telefone,omitempty"`
}

// List returns all users.
func (s *UsersService) List(ctx context.Context) ([]User, error) {
	var page Page[User]
	if err := s.client.do(ctx, http.MethodGet, "/Usuario", nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Get returns the user identified by cpf.
func (s *UsersService) Get(ctx context.Context, cpf string) (User, error) {
	var user User
	err := s.client.do(ctx, http.MethodGet, "/Usuario/"+url.PathEscape(cpf), nil, &user)
	return user, err
}

// Delete removes the user identified by cpf.
func (s *UsersService) Delete(ctx context.Context, cpf string) error {
	return s.client.do(ctx, http.MethodDelete, "/Usuario/"+url.PathEscape(cpf), nil, nil)
}

// Update replaces the profile of the user identified by cpf.
func (s *UsersService) Update(ctx context.Context, cpf string, user User) (User, error) {
	var updated User
	err := s.client.do(ctx, http.MethodPut, "/Usuario/"+url.PathEscape(cpf), user, &updated)
	if err != nil {
		return User{}, fmt.Errorf("updating user: %w", err)
	}
	return updated, nil
}
