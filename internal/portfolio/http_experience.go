package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListExperiences(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetExperience(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var in ExperienceInput
	att, err := decodeInput(r, "companyLogo", &in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer closeAttachment(att)
	in.CompanyLogo = att

	item, err := h.service.CreateExperience(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var in ExperienceInput
	att, err := decodeInput(r, "companyLogo", &in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer closeAttachment(att)
	in.CompanyLogo = att

	item, err := h.service.UpdateExperience(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.DeleteExperience(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
