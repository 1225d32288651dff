package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleListTechnologies(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListTechnologies(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetTechnology(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetTechnology(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreateTechnology(w http.ResponseWriter, r *http.Request) {
	var in TechnologyInput
	if _, err := decodeInput(r, "logo", &in); err != nil {
		writeServiceError(w, err)
		return
	}

	item, err := h.service.CreateTechnology(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleUpdateTechnology(w http.ResponseWriter, r *http.Request) {
	var in TechnologyInput
	if _, err := decodeInput(r, "logo", &in); err != nil {
		writeServiceError(w, err)
		return
	}

	item, err := h.service.UpdateTechnology(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleDeleteTechnology(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.DeleteTechnology(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
