package nebulo

import (
	"context"
	"fmt"
	"net/http"
)

// RatingsService covers the startup rating endpoints.
type RatingsService struct {
	client *Client
}

// Rating is a user's score for a startup.
type Rating struct {
	ID          int    `json:"idAvaliacao"`
	Score       int    `json:"nota"`
	Comment     string `json:"comentario,omitempty"`
	UserCPF     string `json:"usuarioCPF,omitempty"`
	StartupCNPJ string `json:"startupCNPJ,omitempty"`
}

// NewRating is the creation payload.
type NewRating struct {
	Score       int    `json:"nota"`
	Comment     string `json:"comentario,omitempty"`
	UserCPF     string `json:"usuarioCPF"`
	StartupCNPJ string `json:"startupCNPJ"`
}

// Get returns the rating identified by id.
func (s *RatingsService) Get(ctx context.Context, id int) (Rating, error) {
	var rating Rating
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/Avaliacao/%d", id), nil, &rating)
	return rating, err
}

// Create submits a new rating for a startup.
func (s *RatingsService) Create(ctx context.Context, rating NewRating) (Rating, error) {
	var created Rating
	err := s.client.do(ctx, http.MethodPost, "/Avaliacao", rating, &created)
	return created, err
}
