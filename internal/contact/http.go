package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

type envelope struct {
	Data  any        `json:"data"`
	Error *errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeResponse(w, http.StatusBadRequest, nil, &errorBody{Code: "VALIDATION", Message: "Invalid request body"})
		return
	}

	if err := h.service.Submit(r.Context(), msg); err != nil {
		message, status := apierror.Classify(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("contact handler error")
		}
		writeResponse(w, status, nil, &errorBody{Code: apierror.CodeForStatus(status), Message: message})
		return
	}

	writeResponse(w, http.StatusOK, map[string]string{"message": "Message sent successfully"}, nil)
}

func writeResponse(w http.ResponseWriter, status int, data any, errBody *errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Data: data, Error: errBody})
}
