package nebulo

import (
	"context"
	"net/http"
	"net/url"
)

// StartupsService covers the startup catalog endpoints.
type StartupsService struct {
	client *Client
}

// StartupSummary is the list-view projection of a startup.
type StartupSummary struct {
	CNPJ  string `json:"cnpj"`
	Name  string `json:"nomeStartup"`
	Email string `json:"emailStartup"`
	Video string `json:"video,omitempty"`
}

// Startup is the full detail record, including its skills and ratings.
type Startup struct {
	CNPJ        string   `json:"cnpj"`
	Name        string   `json:"nomeStartup"`
	Site        string   `json:"site"`
	Video       string   `json:"video,omitempty"`
	Description string   `json:"descricao"`
	OwnerName   string   `json:"nomeResponsavel"`
	Email       string   `json:"emailStartup"`
	OwnerCPF    string   `json:"usuarioCPF"`
	Skills      []Skill  `json:"habilidades"`
	Ratings     []Rating `json:"avaliacoes"`
}

// NewStartup is the creation payload.
type NewStartup struct {
	CNPJ        string `json:"cnpj"`
	Name        string `json:"nomeStartup"`
	Site        string `json:"site,omitempty"`
	Video       string `json:"video,omitempty"`
	Description string `json:"descricao,omitempty"`
	Email       string `json:"emailStartup"`
	OwnerCPF    string `json:"usuarioCPF"`
}

// List returns all startups in their list-view form.
func (s *StartupsService) List(ctx context.Context) ([]StartupSummary, error) {
	var page Page[StartupSummary]
	if err := s.client.do(ctx, http.MethodGet, "/Startup", nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Get returns the startup identified by cnpj.
func (s *StartupsService) Get(ctx context.Context, cnpj string) (Startup, error) {
	var startup Startup
	err := s.client.do(ctx, http.MethodGet, "/Startup/"+url.PathEscape(cnpj), nil, &startup)
	return startup, err
}

// Create registers a new startup.
func (s *StartupsService) Create(ctx context.Context, startup NewStartup) (Startup, error) {
	var created Startup
	err := s.client.do(ctx, http.MethodPost, "/Startup", startup, &created)
	return created, err
}
