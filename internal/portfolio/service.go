package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/mutation"
)

// Store é o contrato de persistência consumido pelo serviço.
type Store interface {
	CreateTechnology(context.Context, TechnologyPatch) (Technology, error)
	FindTechnologyByName(context.Context, string) (*Technology, error)
	GetTechnology(context.Context, uuid.UUID) (Technology, error)
	ListTechnologies(context.Context) ([]Technology, error)
	UpdateTechnology(context.Context, uuid.UUID, TechnologyPatch) (Technology, error)
	DeleteTechnology(context.Context, uuid.UUID) (Technology, error)

	CreateProject(context.Context, ProjectPatch, string) (Project, error)
	UpdateProject(context.Context, uuid.UUID, ProjectPatch, string) (Project, error)
	DeleteProject(context.Context, uuid.UUID) (Project, error)
	GetProject(context.Context, uuid.UUID) (Project, error)
	ListProjects(context.Context) ([]Project, error)

	CreateSkill(context.Context, SkillPatch) (Skill, error)
	UpdateSkill(context.Context, uuid.UUID, SkillPatch) (Skill, error)
	DeleteSkill(context.Context, uuid.UUID) (Skill, error)
	GetSkill(context.Context, uuid.UUID) (Skill, error)
	ListSkills(context.Context) ([]Skill, error)

	CreateExperience(context.Context, ExperiencePatch, string) (Experience, error)
	UpdateExperience(context.Context, uuid.UUID, ExperiencePatch, string) (Experience, error)
	DeleteExperience(context.Context, uuid.UUID) (Experience, error)
	GetExperience(context.Context, uuid.UUID) (Experience, error)
	ListExperiences(context.Context) ([]Experience, error)

	CreateCertificate(context.Context, CertificatePatch, string) (Certificate, error)
	UpdateCertificate(context.Context, uuid.UUID, CertificatePatch, string) (Certificate, error)
	DeleteCertificate(context.Context, uuid.UUID) (Certificate, error)
	GetCertificate(context.Context, uuid.UUID) (Certificate, error)
	ListCertificates(context.Context) ([]Certificate, error)
}

// Service contém as regras do portfólio: toda mutação passa pelo
// orquestrador, mesmo as sem anexo.
type Service struct {
	repo  Store
	orch  *mutation.Orchestrator
	cache *redis.Client
}

func NewService(repo Store, orch *mutation.Orchestrator, cache *redis.Client) *Service {
	return &Service{repo: repo, orch: orch, cache: cache}
}

const cacheTTL = 60 * time.Second

// Chaves de cache por listagem.
const (
	cacheKeyTechnologies = "portfolio:technologies"
	cacheKeyProjects     = "portfolio:projects"
	cacheKeySkills       = "portfolio:skills"
	cacheKeyExperiences  = "portfolio:experiences"
	cacheKeyCertificates = "portfolio:certificates"
)

func (s *Service) listFromCache(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *Service) storeInCache(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if payload, err := json.Marshal(v); err == nil {
		_ = s.cache.Set(ctx, key, payload, cacheTTL).Err()
	}
}

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, keys...).Err()
}

// parseID valida o formato do identificador antes de qualquer acesso a
// banco ou object store.
func parseID(id, entity string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apierror.New(fmt.Sprintf("Invalid %s id provided", entity), http.StatusBadRequest)
	}
	return parsed, nil
}

func notFoundError(entity, id string) *apierror.Error {
	return apierror.New(fmt.Sprintf("%s with id %q not found", entity, id), http.StatusNotFound)
}

func requireString(value *string, message string) (*string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, apierror.New(message, http.StatusBadRequest)
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

// parseDate aceita RFC3339 ou a forma curta "2006-01-02".
func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
