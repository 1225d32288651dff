package portfolio

import (
	"context"
	"net/http"
	"time"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/attachment"
	"github.com/urbanbyte/portfolio-api/internal/mutation"
	"github.com/urbanbyte/portfolio-api/internal/storage"
)

// ExperienceInput é o payload de criação/atualização de experiência.
// Datas chegam como strings ISO e são validadas antes de qualquer store.
type ExperienceInput struct {
	Company      *string   `json:"company"`
	Position     *string   `json:"position"`
	Location     *string   `json:"location"`
	From         *string   `json:"from"`
	To           *string   `json:"to"`
	Achievements *[]string `json:"achievements"`

	CompanyLogo *attachment.Input `json:"-"`
}

func (in ExperienceInput) dates() (from, to *time.Time, err error) {
	if in.From != nil {
		parsed, ok := parseDate(*in.From)
		if !ok {
			return nil, nil, apierror.New(`Valid "from" date is required (ISO string)`, http.StatusBadRequest)
		}
		from = &parsed
	}
	if in.To != nil && *in.To != "" {
		parsed, ok := parseDate(*in.To)
		if !ok {
			return nil, nil, apierror.New(`If provided, "to" must be a valid date (ISO string)`, http.StatusBadRequest)
		}
		to = &parsed
	}
	return from, to, nil
}

func (s *Service) CreateExperience(ctx context.Context, in ExperienceInput) (Experience, error) {
	var created Experience

	err := s.orch.Run(ctx, mutation.Request{
		Folder:          storage.FolderCompanyLogo,
		AttachmentField: "companyLogo",
		Attachment:      in.CompanyLogo,
		Validate: func(ctx context.Context) error {
			if _, err := requireString(in.Company, "Company is required"); err != nil {
				return err
			}
			if _, err := requireString(in.Position, "Position is required"); err != nil {
				return err
			}
			if in.From == nil {
				return apierror.New(`Valid "from" date is required (ISO string)`, http.StatusBadRequest)
			}
			_, _, err := in.dates()
			return err
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			from, to, err := in.dates()
			if err != nil {
				return err
			}
			e, err := s.repo.CreateExperience(ctx, ExperiencePatch{
				Company:      trimOptional(in.Company),
				Position:     trimOptional(in.Position),
				Location:     trimOptional(in.Location),
				From:         from,
				To:           to,
				Achievements: in.Achievements,
			}, attachmentURL)
			if err != nil {
				return err
			}
			created = e
			return nil
		},
	})
	if err != nil {
		return Experience{}, err
	}

	s.invalidate(ctx, cacheKeyExperiences)
	return created, nil
}

func (s *Service) UpdateExperience(ctx context.Context, id string, in ExperienceInput) (Experience, error) {
	experienceID, err := parseID(id, "experience")
	if err != nil {
		return Experience{}, err
	}

	var updated Experience
	err = s.orch.Run(ctx, mutation.Request{
		Folder:          storage.FolderCompanyLogo,
		AttachmentField: "companyLogo",
		Attachment:      in.CompanyLogo,
		Validate: func(ctx context.Context) error {
			if in.Company != nil {
				if _, err := requireString(in.Company, "Company cannot be empty"); err != nil {
					return err
				}
			}
			if in.Position != nil {
				if _, err := requireString(in.Position, "Position cannot be empty"); err != nil {
					return err
				}
			}
			_, _, err := in.dates()
			return err
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			from, to, err := in.dates()
			if err != nil {
				return err
			}
			e, err := s.repo.UpdateExperience(ctx, experienceID, ExperiencePatch{
				Company:      trimOptional(in.Company),
				Position:     trimOptional(in.Position),
				Location:     trimOptional(in.Location),
				From:         from,
				To:           to,
				Achievements: in.Achievements,
			}, attachmentURL)
			if err == errNotFound {
				return notFoundError("Experience", id)
			}
			if err != nil {
				return err
			}
			updated = e
			return nil
		},
	})
	if err != nil {
		return Experience{}, err
	}

	s.invalidate(ctx, cacheKeyExperiences)
	return updated, nil
}

func (s *Service) DeleteExperience(ctx context.Context, id string) (Experience, error) {
	experienceID, err := parseID(id, "experience")
	if err != nil {
		return Experience{}, err
	}

	var deleted Experience
	err = s.orch.RunDelete(ctx, storage.FolderCompanyLogo, func(ctx context.Context) (string, error) {
		e, err := s.repo.DeleteExperience(ctx, experienceID)
		if err == errNotFound {
			return "", notFoundError("Experience", id)
		}
		if err != nil {
			return "", err
		}
		deleted = e
		if e.CompanyLogo != nil {
			return *e.CompanyLogo, nil
		}
		return "", nil
	})
	if err != nil {
		return Experience{}, err
	}

	s.invalidate(ctx, cacheKeyExperiences)
	return deleted, nil
}

func (s *Service) GetExperience(ctx context.Context, id string) (Experience, error) {
	experienceID, err := parseID(id, "experience")
	if err != nil {
		return Experience{}, err
	}

	e, err := s.repo.GetExperience(ctx, experienceID)
	if err == errNotFound {
		return Experience{}, notFoundError("Experience", id)
	}
	if err != nil {
		return Experience{}, err
	}
	return e, nil
}

func (s *Service) ListExperiences(ctx context.Context) ([]Experience, error) {
	var cached []Experience
	if s.listFromCache(ctx, cacheKeyExperiences, &cached) {
		return cached, nil
	}

	experiences, err := s.repo.ListExperiences(ctx)
	if err != nil {
		return nil, err
	}

	s.storeInCache(ctx, cacheKeyExperiences, experiences)
	return experiences, nil
}
