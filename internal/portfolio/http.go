package portfolio

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/attachment"
)

// Handler orquestra as rotas do portfólio.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Limite por upload; arquivos acima disso transbordam para disco temporário.
const maxUploadMemory = 10 << 20

type successEnvelope struct {
	Data  any `json:"data"`
	Error any `json:"error"`
}

type errorEnvelope struct {
	Data  any        `json:"data"`
	Error *errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(successEnvelope{Data: payload, Error: nil})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Data:  nil,
		Error: &errorBody{Code: code, Message: message},
	})
}

// writeServiceError classifica a falha uma única vez na borda HTTP.
func writeServiceError(w http.ResponseWriter, err error) {
	message, status := apierror.Classify(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("portfolio handler error")
	}
	writeError(w, status, apierror.CodeForStatus(status), message)
}

// decodeInput lê o payload da mutação. Em multipart/form-data o JSON vem no
// campo "data" e o binário no campo indicado; em application/json não há
// anexo. O stream devolvido deve ser fechado pelo chamador.
func decodeInput(r *http.Request, fileField string, dst any) (*attachment.Input, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil, apierror.New("Invalid multipart payload", http.StatusBadRequest)
		}

		if data := r.FormValue("data"); data != "" {
			if err := json.Unmarshal([]byte(data), dst); err != nil {
				return nil, apierror.New("Invalid request body", http.StatusBadRequest)
			}
		}

		file, header, err := r.FormFile(fileField)
		if err == http.ErrMissingFile {
			return nil, nil
		}
		if err != nil {
			return nil, apierror.New("Invalid file upload for "+fileField, http.StatusBadRequest)
		}

		return &attachment.Input{
			Stream:   file,
			Filename: header.Filename,
			MimeType: header.Header.Get("Content-Type"),
		}, nil
	}

	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return nil, apierror.New("Invalid request body", http.StatusBadRequest)
		}
	}
	return nil, nil
}

func closeAttachment(att *attachment.Input) {
	if att == nil {
		return
	}
	if closer, ok := att.Stream.(io.Closer); ok {
		_ = closer.Close()
	}
}
