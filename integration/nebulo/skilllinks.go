package nebulo

import (
	"context"
	"fmt"
	"net/http"
)

// SkillLinksService covers the records associating skills with startups.
type SkillLinksService struct {
	client *Client
}

// SkillLink associates one skill with one startup.
type SkillLink struct {
	ID      int     `json:"idPossui"`
	Startup Startup `json:"startup"`
	Skill   Skill   `json:"habilidade"`
}

type skillLinkRef struct {
	ID int `json:"idPossui"`
}

type newSkillLink struct {
	StartupCNPJ string `json:"startupCNPJ"`
	SkillID     int    `json:"idHabilidade"`
}

// Get returns the association identified by id.
func (s *SkillLinksService) Get(ctx context.Context, id int) (SkillLink, error) {
	var link SkillLink
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/Possui/%d", id), nil, &link)
	return link, err
}

// ListByStartup returns the associations belonging to the startup identified
// by cnpj. The API only lists association IDs, so each record is fetched
// individually and filtered client-side.
func (s *SkillLinksService) ListByStartup(ctx context.Context, cnpj string) ([]SkillLink, error) {
	var page Page[skillLinkRef]
	if err := s.client.do(ctx, http.MethodGet, "/Possui", nil, &page); err != nil {
		return nil, err
	}

	links := make([]SkillLink, 0, len(page.Items))
	for _, ref := range page.Items {
		link, err := s.Get(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("fetching association %d: %w", ref.ID, err)
		}
		if link.Startup.CNPJ == cnpj {
			links = append(links, link)
		}
	}
	return links, nil
}

// Create associates a skill with a startup.
func (s *SkillLinksService) Create(ctx context.Context, startupCNPJ string, skillID int) error {
	return s.client.do(ctx, http.MethodPost, "/Possui", newSkillLink{
		StartupCNPJ: startupCNPJ,
		SkillID:     skillID,
	}, nil)
}

// Delete removes the association identified by id.
func (s *SkillLinksService) Delete(ctx context.Context, id int) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/Possui/%d", id), nil, nil)
}
