package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleListCertificates(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCertificates(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetCertificate(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetCertificate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreateCertificate(w http.ResponseWriter, r *http.Request) {
	var in CertificateInput
	att, err := decodeInput(r, "logo", &in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer closeAttachment(att)
	in.Logo = att

	item, err := h.service.CreateCertificate(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleUpdateCertificate(w http.ResponseWriter, r *http.Request) {
	var in CertificateInput
	att, err := decodeInput(r, "logo", &in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer closeAttachment(att)
	in.Logo = att

	item, err := h.service.UpdateCertificate(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleDeleteCertificate(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.DeleteCertificate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
