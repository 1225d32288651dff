package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListProjects(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in ProjectInput
	att, err := decodeInput(r, "thumbnail", &in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer closeAttachment(att)
	in.Thumbnail = att

	item, err := h.service.CreateProject(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var in ProjectInput
	att, err := decodeInput(r, "thumbnail", &in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer closeAttachment(att)
	in.Thumbnail = att

	item, err := h.service.UpdateProject(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.DeleteProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
