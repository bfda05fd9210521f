package nebulo

import (
	"context"
	"fmt"
	"net/http"
)

// SkillsService covers the skill catalog endpoints.
type SkillsService struct {
	client *Client
}

// Skill is a capability startups can be tagged with.
type Skill struct {
	ID   int    `json:"idHabilidade"`
	Name string `json:"nomeHabilidade"`
	Type string `json:"tipoHabilidade"`
}

// NewSkill is the creation payload.
type NewSkill struct {
	Name string `json:"nomeHabilidade"`
	Type string `json:"tipoHabilidade"`
}

// List returns one page of skills. The API caps pageSize server-side.
func (s *SkillsService) List(ctx context.Context, page, pageSize int) (Page[Skill], error) {
	var result Page[Skill]
	path := fmt.Sprintf("/Habilidade?page=%d&pageSize=%d", page, pageSize)
	err := s.client.do(ctx, http.MethodGet, path, nil, &result)
	return result, err
}

// Get returns the skill identified by id.
func (s *SkillsService) Get(ctx context.Context, id int) (Skill, error) {
	var skill Skill
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/Habilidade/%d", id), nil, &skill)
	return skill, err
}

// Create adds a skill to the catalog.
func (s *SkillsService) Create(ctx context.Context, skill NewSkill) (Skill, error) {
	var created Skill
	err := s.client.do(ctx, http.MethodPost, "/Habilidade", skill, &created)
	return created, err
}
