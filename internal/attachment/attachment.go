package attachment

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
)

// Input descreve um anexo declarado pelo cliente: stream consumível uma
// única vez mais o nome e o media type informados no upload.
type Input struct {
	Stream   io.Reader
	Filename string
	MimeType string
}

var acceptedMimeTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/jpg":     {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
	"image/bmp":     {},
}

var acceptedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".bmp"}

// AcceptedFormats lista os formatos aceitos para mensagens de erro.
func AcceptedFormats() string {
	parts := make([]string, len(acceptedExtensions))
	for i, ext := range acceptedExtensions {
		parts[i] = strings.ToUpper(strings.TrimPrefix(ext, "."))
	}
	return strings.Join(parts, ", ")
}

// Validate aplica a política de formatos de imagem: aceita se o media type
// declarado OU a extensão do arquivo estiver na lista. Os dois ausentes ou
// inválidos rejeitam. Não faz I/O.
func (in *Input) Validate(field string) error {
	if in == nil || in.Stream == nil {
		return apierror.New(fmt.Sprintf("Invalid file upload for %s", field), http.StatusBadRequest)
	}

	if _, ok := acceptedMimeTypes[strings.ToLower(in.MimeType)]; ok {
		return nil
	}

	lower := strings.ToLower(in.Filename)
	for _, ext := range acceptedExtensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}

	mimeType := in.MimeType
	if mimeType == "" {
		mimeType = "unknown mimetype"
	}
	filename := in.Filename
	if filename == "" {
		filename = "unknown filename"
	}

	return apierror.New(
		fmt.Sprintf("%s must be an image file. Accepted formats: %s. Received: %s, file: %s",
			field, AcceptedFormats(), mimeType, filename),
		http.StatusBadRequest,
	)
}
