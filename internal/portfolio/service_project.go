package portfolio

import (
	"context"
	"net/http"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/attachment"
	"github.com/urbanbyte/portfolio-api/internal/mutation"
	"github.com/urbanbyte/portfolio-api/internal/storage"
)

// ProjectInput é o payload de criação/atualização de projeto. Em update,
// campos nil não são alterados.
type ProjectInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Status       *string   `json:"status"`
	Role         *string   `json:"role"`
	Livelink     *string   `json:"livelink"`
	Githublink   *string   `json:"githublink"`
	Technologies *[]string `json:"technologies"`

	Thumbnail *attachment.Input `json:"-"`
}

func (in ProjectInput) patch() ProjectPatch {
	return ProjectPatch{
		Title:        trimOptional(in.Title),
		Description:  trimOptional(in.Description),
		Status:       trimOptional(in.Status),
		Role:         trimOptional(in.Role),
		Livelink:     trimOptional(in.Livelink),
		Githublink:   trimOptional(in.Githublink),
		Technologies: in.Technologies,
	}
}

func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (Project, error) {
	var created Project

	err := s.orch.Run(ctx, mutation.Request{
		Folder:          storage.FolderThumbnails,
		AttachmentField: "Thumbnail",
		Attachment:      in.Thumbnail,
		Validate: func(ctx context.Context) error {
			if _, err := requireString(in.Title, "Title is required"); err != nil {
				return err
			}
			if _, err := requireString(in.Status, "Status is required"); err != nil {
				return err
			}
			if in.Thumbnail == nil {
				return apierror.New("Thumbnail is required", http.StatusBadRequest)
			}
			return nil
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			p, err := s.repo.CreateProject(ctx, in.patch(), attachmentURL)
			if err != nil {
				return err
			}
			created = p
			return nil
		},
	})
	if err != nil {
		return Project{}, err
	}

	s.invalidate(ctx, cacheKeyProjects)
	return created, nil
}

func (s *Service) UpdateProject(ctx context.Context, id string, in ProjectInput) (Project, error) {
	projectID, err := parseID(id, "project")
	if err != nil {
		return Project{}, err
	}

	var updated Project
	err = s.orch.Run(ctx, mutation.Request{
		Folder:          storage.FolderThumbnails,
		AttachmentField: "Thumbnail",
		Attachment:      in.Thumbnail,
		Validate: func(ctx context.Context) error {
			if in.Title != nil {
				if _, err := requireString(in.Title, "Title cannot be empty"); err != nil {
					return err
				}
			}
			if in.Status != nil {
				if _, err := requireString(in.Status, "Status cannot be empty"); err != nil {
					return err
				}
			}
			return nil
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			p, err := s.repo.UpdateProject(ctx, projectID, in.patch(), attachmentURL)
			if err == errNotFound {
				return notFoundError("Project", id)
			}
			if err != nil {
				return err
			}
			updated = p
			return nil
		},
	})
	if err != nil {
		return Project{}, err
	}

	s.invalidate(ctx, cacheKeyProjects)
	return updated, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string) (Project, error) {
	projectID, err := parseID(id, "project")
	if err != nil {
		return Project{}, err
	}

	var deleted Project
	err = s.orch.RunDelete(ctx, storage.FolderThumbnails, func(ctx context.Context) (string, error) {
		p, err := s.repo.DeleteProject(ctx, projectID)
		if err == errNotFound {
			return "", notFoundError("Project", id)
		}
		if err != nil {
			return "", err
		}
		deleted = p
		if p.Thumbnail != nil {
			return *p.Thumbnail, nil
		}
		return "", nil
	})
	if err != nil {
		return Project{}, err
	}

	s.invalidate(ctx, cacheKeyProjects)
	return deleted, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (Project, error) {
	projectID, err := parseID(id, "project")
	if err != nil {
		return Project{}, err
	}

	p, err := s.repo.GetProject(ctx, projectID)
	if err == errNotFound {
		return Project{}, notFoundError("Project", id)
	}
	if err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	var cached []Project
	if s.listFromCache(ctx, cacheKeyProjects, &cached) {
		return cached, nil
	}

	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	s.storeInCache(ctx, cacheKeyProjects, projects)
	return projects, nil
}
