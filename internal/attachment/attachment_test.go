package attachment

import (
	"errors"
	"strings"
	"testing"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
)

func TestValidateAceitaPorMimeType(t *testing.T) {
	in := &Input{Stream: strings.NewReader("x"), Filename: "blob", MimeType: "image/png"}
	if err := in.Validate("Thumbnail"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
}

func TestValidateAceitaPorExtensao(t *testing.T) {
	// Mime type genérico, mas a extensão basta (política OU).
	in := &Input{Stream: strings.NewReader("x"), Filename: "foto.JPEG", MimeType: "application/octet-stream"}
	if err := in.Validate("Thumbnail"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
}

func TestValidateRejeitaQuandoAmbosFalham(t *testing.T) {
	in := &Input{Stream: strings.NewReader("x"), Filename: "doc.pdf", MimeType: "application/pdf"}

	err := in.Validate("Logo")
	if err == nil {
		t.Fatal("esperava rejeição")
	}

	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Fatalf("esperava erro 400, veio %v", err)
	}
	msg := apiErr.Message
	for _, want := range []string{"Logo must be an image file", "application/pdf", "doc.pdf"} {
		if !strings.Contains(msg, want) {
			t.Errorf("mensagem %q não contém %q", msg, want)
		}
	}
}

func TestValidateRejeitaSemMetadados(t *testing.T) {
	in := &Input{Stream: strings.NewReader("x")}

	err := in.Validate("Logo")
	if err == nil {
		t.Fatal("esperava rejeição")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown mimetype") || !strings.Contains(msg, "unknown filename") {
		t.Errorf("mensagem sem placeholders: %q", msg)
	}
}

func TestValidateInputNulo(t *testing.T) {
	var in *Input
	err := in.Validate("Thumbnail")
	if err == nil || !strings.Contains(err.Error(), "Invalid file upload for Thumbnail") {
		t.Fatalf("erro errado: %v", err)
	}
}
