package portfolio

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/mutation"
)

// SkillInput é o payload de criação/atualização de skill.
type SkillInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
}

// technologyIDs valida o formato de cada referência antes de tocar o banco,
// como o caminho de skills sempre fez.
func (in SkillInput) technologyIDs() (*[]uuid.UUID, error) {
	if in.Technologies == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(*in.Technologies))
	for _, raw := range *in.Technologies {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apierror.New(fmt.Sprintf("Invalid technology id: %s", raw), http.StatusBadRequest)
		}
		ids = append(ids, id)
	}
	return &ids, nil
}

func (s *Service) CreateSkill(ctx context.Context, in SkillInput) (Skill, error) {
	var created Skill

	err := s.orch.Run(ctx, mutation.Request{
		Validate: func(ctx context.Context) error {
			if _, err := requireString(in.Title, "Title is required"); err != nil {
				return err
			}
			_, err := in.technologyIDs()
			return err
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			ids, err := in.technologyIDs()
			if err != nil {
				return err
			}
			sk, err := s.repo.CreateSkill(ctx, SkillPatch{
				Title:        trimOptional(in.Title),
				Description:  trimOptional(in.Description),
				Technologies: ids,
			})
			if err != nil {
				return err
			}
			created = sk
			return nil
		},
	})
	if err != nil {
		return Skill{}, err
	}

	s.invalidate(ctx, cacheKeySkills)
	return created, nil
}

func (s *Service) UpdateSkill(ctx context.Context, id string, in SkillInput) (Skill, error) {
	skillID, err := parseID(id, "skill")
	if err != nil {
		return Skill{}, err
	}

	if in.Title != nil {
		if _, err := requireString(in.Title, "Title cannot be empty"); err != nil {
			return Skill{}, err
		}
	}
	ids, err := in.technologyIDs()
	if err != nil {
		return Skill{}, err
	}

	sk, err := s.repo.UpdateSkill(ctx, skillID, SkillPatch{
		Title:        trimOptional(in.Title),
		Description:  trimOptional(in.Description),
		Technologies: ids,
	})
	if err == errNotFound {
		return Skill{}, notFoundError("Skill", id)
	}
	if err != nil {
		return Skill{}, err
	}

	s.invalidate(ctx, cacheKeySkills)
	return sk, nil
}

func (s *Service) DeleteSkill(ctx context.Context, id string) (Skill, error) {
	skillID, err := parseID(id, "skill")
	if err != nil {
		return Skill{}, err
	}

	sk, err := s.repo.DeleteSkill(ctx, skillID)
	if err == errNotFound {
		return Skill{}, notFoundError("Skill", id)
	}
	if err != nil {
		return Skill{}, err
	}

	s.invalidate(ctx, cacheKeySkills)
	return sk, nil
}

func (s *Service) GetSkill(ctx context.Context, id string) (Skill, error) {
	skillID, err := parseID(id, "skill")
	if err != nil {
		return Skill{}, err
	}

	sk, err := s.repo.GetSkill(ctx, skillID)
	if err == errNotFound {
		return Skill{}, notFoundError("Skill", id)
	}
	if err != nil {
		return Skill{}, err
	}
	return sk, nil
}

func (s *Service) ListSkills(ctx context.Context) ([]Skill, error) {
	var cached []Skill
	if s.listFromCache(ctx, cacheKeySkills, &cached) {
		return cached, nil
	}

	skills, err := s.repo.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	s.storeInCache(ctx, cacheKeySkills, skills)
	return skills, nil
}
