package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleListSkills(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListSkills(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetSkill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var in SkillInput
	if _, err := decodeInput(r, "icon", &in); err != nil {
		writeServiceError(w, err)
		return
	}

	item, err := h.service.CreateSkill(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var in SkillInput
	if _, err := decodeInput(r, "icon", &in); err != nil {
		writeServiceError(w, err)
		return
	}

	item, err := h.service.UpdateSkill(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.DeleteSkill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
