package portfolio

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/mutation"
)

// TechnologyInput é o payload de criação/atualização de tecnologia.
// O logo é uma URL simples, sem upload de binário.
type TechnologyInput struct {
	Name       *string `json:"name"`
	Logo       *string `json:"logo"`
	Level      *string `json:"level"`
	Experience *string `json:"experience"`
	Category   *string `json:"category"`
}

func (in TechnologyInput) patch() TechnologyPatch {
	return TechnologyPatch{
		Name:       trimOptional(in.Name),
		Logo:       trimOptional(in.Logo),
		Level:      trimOptional(in.Level),
		Experience: trimOptional(in.Experience),
		Category:   trimOptional(in.Category),
	}
}

func (s *Service) CreateTechnology(ctx context.Context, in TechnologyInput) (Technology, error) {
	var created Technology

	err := s.orch.Run(ctx, mutation.Request{
		Validate: func(ctx context.Context) error {
			name, err := requireString(in.Name, "Name is required")
			if err != nil {
				return err
			}
			if _, err := requireString(in.Level, "Level is required"); err != nil {
				return err
			}
			if _, err := requireString(in.Category, "Category is required"); err != nil {
				return err
			}

			existing, err := s.repo.FindTechnologyByName(ctx, *name)
			if err != nil {
				return err
			}
			if existing != nil {
				return apierror.New(fmt.Sprintf("Technology with name %q already exists", *name), http.StatusConflict)
			}
			return nil
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			t, err := s.repo.CreateTechnology(ctx, in.patch())
			if err != nil {
				return err
			}
			created = t
			return nil
		},
	})
	if err != nil {
		return Technology{}, err
	}

	s.invalidate(ctx, cacheKeyTechnologies)
	return created, nil
}

func (s *Service) UpdateTechnology(ctx context.Context, id string, in TechnologyInput) (Technology, error) {
	technologyID, err := parseID(id, "technology")
	if err != nil {
		return Technology{}, err
	}

	if in.Name != nil {
		if _, err := requireString(in.Name, "Name cannot be empty"); err != nil {
			return Technology{}, err
		}
	}

	t, err := s.repo.UpdateTechnology(ctx, technologyID, in.patch())
	if err == errNotFound {
		return Technology{}, notFoundError("Technology", id)
	}
	if err != nil {
		return Technology{}, err
	}

	s.invalidate(ctx, cacheKeyTechnologies, cacheKeyProjects, cacheKeySkills)
	return t, nil
}

func (s *Service) DeleteTechnology(ctx context.Context, id string) (Technology, error) {
	technologyID, err := parseID(id, "technology")
	if err != nil {
		return Technology{}, err
	}

	t, err := s.repo.DeleteTechnology(ctx, technologyID)
	if err == errNotFound {
		return Technology{}, notFoundError("Technology", id)
	}
	if err != nil {
		return Technology{}, err
	}

	s.invalidate(ctx, cacheKeyTechnologies, cacheKeyProjects, cacheKeySkills)
	return t, nil
}

func (s *Service) GetTechnology(ctx context.Context, id string) (Technology, error) {
	technologyID, err := parseID(id, "technology")
	if err != nil {
		return Technology{}, err
	}

	t, err := s.repo.GetTechnology(ctx, technologyID)
	if err == errNotFound {
		return Technology{}, notFoundError("Technology", id)
	}
	if err != nil {
		return Technology{}, err
	}
	return t, nil
}

func (s *Service) ListTechnologies(ctx context.Context) ([]Technology, error) {
	var cached []Technology
	if s.listFromCache(ctx, cacheKeyTechnologies, &cached) {
		return cached, nil
	}

	technologies, err := s.repo.ListTechnologies(ctx)
	if err != nil {
		return nil, err
	}

	s.storeInCache(ctx, cacheKeyTechnologies, technologies)
	return technologies, nil
}
