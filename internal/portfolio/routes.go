package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta as rotas do portfólio. Leituras são públicas;
// mutações passam pelo middleware de autenticação informado.
func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	type resource struct {
		path   string
		list   http.HandlerFunc
		get    http.HandlerFunc
		create http.HandlerFunc
		update http.HandlerFunc
		remove http.HandlerFunc
	}

	resources := []resource{
		{"/technologies", h.handleListTechnologies, h.handleGetTechnology, h.handleCreateTechnology, h.handleUpdateTechnology, h.handleDeleteTechnology},
		{"/projects", h.handleListProjects, h.handleGetProject, h.handleCreateProject, h.handleUpdateProject, h.handleDeleteProject},
		{"/skills", h.handleListSkills, h.handleGetSkill, h.handleCreateSkill, h.handleUpdateSkill, h.handleDeleteSkill},
		{"/experiences", h.handleListExperiences, h.handleGetExperience, h.handleCreateExperience, h.handleUpdateExperience, h.handleDeleteExperience},
		{"/certificates", h.handleListCertificates, h.handleGetCertificate, h.handleCreateCertificate, h.handleUpdateCertificate, h.handleDeleteCertificate},
	}

	for _, res := range resources {
		res := res
		r.Route(res.path, func(r chi.Router) {
			r.Get("/", res.list)
			r.Get("/{id}", res.get)

			r.Group(func(r chi.Router) {
				if requireAuth != nil {
					r.Use(requireAuth)
				}
				r.Post("/", res.create)
				r.Put("/{id}", res.update)
				r.Delete("/{id}", res.remove)
			})
		})
	}
}
