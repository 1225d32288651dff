package portfolio

import (
	"context"
	"net/http"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/attachment"
	"github.com/urbanbyte/portfolio-api/internal/mutation"
	"github.com/urbanbyte/portfolio-api/internal/storage"
)

// CertificateInput é o payload de criação/atualização de certificado.
type CertificateInput struct {
	Title        *string   `json:"title"`
	Issuer       *string   `json:"issuer"`
	Category     *string   `json:"category"`
	Type         *string   `json:"type"`
	Priority     *string   `json:"priority"`
	IssuedDate   *string   `json:"issuedDate"`
	ValidUntil   *string   `json:"validUntil"`
	CredentialID *string   `json:"credentialId"`
	Description  *string   `json:"description"`
	Skills       *[]string `json:"skills"`
	Status       *string   `json:"status"`

	Logo *attachment.Input `json:"-"`
}

func (in CertificateInput) patch() (CertificatePatch, error) {
	patch := CertificatePatch{
		Title:        trimOptional(in.Title),
		Issuer:       trimOptional(in.Issuer),
		Category:     in.Category,
		Type:         in.Type,
		CredentialID: trimOptional(in.CredentialID),
		Description:  trimOptional(in.Description),
		Skills:       in.Skills,
		Status:       in.Status,
	}

	if in.Priority != nil {
		priority, ok := ParsePriority(*in.Priority)
		if !ok {
			return CertificatePatch{}, apierror.New("Invalid priority", http.StatusBadRequest)
		}
		patch.Priority = &priority
	}

	if in.IssuedDate != nil {
		issued, ok := parseDate(*in.IssuedDate)
		if !ok {
			return CertificatePatch{}, apierror.New("issuedDate must be a valid date (ISO string)", http.StatusBadRequest)
		}
		patch.IssuedDate = &issued
	}

	if in.ValidUntil != nil && *in.ValidUntil != "" {
		until, ok := parseDate(*in.ValidUntil)
		if !ok {
			return CertificatePatch{}, apierror.New("If provided, validUntil must be a valid date (ISO string)", http.StatusBadRequest)
		}
		patch.ValidUntil = &until
	}

	return patch, nil
}

func (in CertificateInput) validateCreate() error {
	if _, err := requireString(in.Title, "Title is required"); err != nil {
		return err
	}
	if _, err := requireString(in.Issuer, "Issuer is required"); err != nil {
		return err
	}
	if in.Category == nil {
		return apierror.New("Category is required", http.StatusBadRequest)
	}
	if !validCertificateCategory(*in.Category) {
		return apierror.New("Invalid category", http.StatusBadRequest)
	}
	if in.Priority == nil {
		return apierror.New("Priority is required", http.StatusBadRequest)
	}
	if _, ok := ParsePriority(*in.Priority); !ok {
		return apierror.New("Invalid priority", http.StatusBadRequest)
	}
	if in.IssuedDate == nil {
		return apierror.New("Valid issuedDate is required (ISO string)", http.StatusBadRequest)
	}
	if _, ok := parseDate(*in.IssuedDate); !ok {
		return apierror.New("Valid issuedDate is required (ISO string)", http.StatusBadRequest)
	}
	if in.ValidUntil != nil && *in.ValidUntil != "" {
		if _, ok := parseDate(*in.ValidUntil); !ok {
			return apierror.New("If provided, validUntil must be a valid date (ISO string)", http.StatusBadRequest)
		}
	}
	return nil
}

func (in CertificateInput) validateUpdate() error {
	if in.Title != nil {
		if _, err := requireString(in.Title, "Title cannot be empty"); err != nil {
			return err
		}
	}
	if in.Issuer != nil {
		if _, err := requireString(in.Issuer, "Issuer cannot be empty"); err != nil {
			return err
		}
	}
	if in.Category != nil && !validCertificateCategory(*in.Category) {
		return apierror.New("Invalid category", http.StatusBadRequest)
	}
	_, err := in.patch()
	return err
}

func (s *Service) CreateCertificate(ctx context.Context, in CertificateInput) (Certificate, error) {
	var created Certificate

	err := s.orch.Run(ctx, mutation.Request{
		Folder:          storage.FolderCertificateLogo,
		AttachmentField: "Logo",
		Attachment:      in.Logo,
		Validate: func(ctx context.Context) error {
			return in.validateCreate()
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			patch, err := in.patch()
			if err != nil {
				return err
			}
			if patch.Priority == nil {
				low := PriorityLow
				patch.Priority = &low
			}
			c, err := s.repo.CreateCertificate(ctx, patch, attachmentURL)
			if err != nil {
				return err
			}
			created = c
			return nil
		},
	})
	if err != nil {
		return Certificate{}, err
	}

	s.invalidate(ctx, cacheKeyCertificates)
	return created, nil
}

func (s *Service) UpdateCertificate(ctx context.Context, id string, in CertificateInput) (Certificate, error) {
	certificateID, err := parseID(id, "certificate")
	if err != nil {
		return Certificate{}, err
	}

	var updated Certificate
	err = s.orch.Run(ctx, mutation.Request{
		Folder:          storage.FolderCertificateLogo,
		AttachmentField: "Logo",
		Attachment:      in.Logo,
		Validate: func(ctx context.Context) error {
			return in.validateUpdate()
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			patch, err := in.patch()
			if err != nil {
				return err
			}
			c, err := s.repo.UpdateCertificate(ctx, certificateID, patch, attachmentURL)
			if err == errNotFound {
				return notFoundError("Certificate", id)
			}
			if err != nil {
				return err
			}
			updated = c
			return nil
		},
	})
	if err != nil {
		return Certificate{}, err
	}

	s.invalidate(ctx, cacheKeyCertificates)
	return updated, nil
}

func (s *Service) DeleteCertificate(ctx context.Context, id string) (Certificate, error) {
	certificateID, err := parseID(id, "certificate")
	if err != nil {
		return Certificate{}, err
	}

	var deleted Certificate
	err = s.orch.RunDelete(ctx, storage.FolderCertificateLogo, func(ctx context.Context) (string, error) {
		c, err := s.repo.DeleteCertificate(ctx, certificateID)
		if err == errNotFound {
			return "", notFoundError("Certificate", id)
		}
		if err != nil {
			return "", err
		}
		deleted = c
		if c.Logo != nil {
			return *c.Logo, nil
		}
		return "", nil
	})
	if err != nil {
		return Certificate{}, err
	}

	s.invalidate(ctx, cacheKeyCertificates)
	return deleted, nil
}

func (s *Service) GetCertificate(ctx context.Context, id string) (Certificate, error) {
	certificateID, err := parseID(id, "certificate")
	if err != nil {
		return Certificate{}, err
	}

	c, err := s.repo.GetCertificate(ctx, certificateID)
	if err == errNotFound {
		return Certificate{}, notFoundError("Certificate", id)
	}
	if err != nil {
		return Certificate{}, err
	}
	return c, nil
}

func (s *Service) ListCertificates(ctx context.Context) ([]Certificate, error) {
	var cached []Certificate
	if s.listFromCache(ctx, cacheKeyCertificates, &cached) {
		return cached, nil
	}

	certificates, err := s.repo.ListCertificates(ctx)
	if err != nil {
		return nil, err
	}

	s.storeInCache(ctx, cacheKeyCertificates, certificates)
	return certificates, nil
}
