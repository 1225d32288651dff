package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*S3Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewS3Client(S3Config{
		Endpoint:   srv.URL,
		Region:     "auto",
		Bucket:     "assets",
		AccessKey:  "key",
		SecretKey:  "secret",
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewS3Client: %v", err)
	}
	return client, srv
}

func TestUploadDevolveURLDerivavel(t *testing.T) {
	var gotPath, gotAuth, gotSHA string
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotSHA = r.Header.Get("x-amz-content-sha256")
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	})

	url, err := client.Upload(context.Background(), FolderThumbnails, strings.NewReader("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !strings.HasPrefix(url, srv.URL+"/assets/portfolio/thumbnails/") {
		t.Fatalf("URL fora do padrão: %q", url)
	}
	// A chave não tem extensão: derivar o public ID e remontar a chave
	// precisa apontar para o mesmo objeto.
	publicID := PublicIDFromURL(url)
	if !strings.HasSuffix(gotPath, "/portfolio/thumbnails/"+publicID) {
		t.Fatalf("public id %q não corresponde à chave %q", publicID, gotPath)
	}
	if !strings.HasPrefix(gotAuth, "AWS4-HMAC-SHA256 Credential=key/") {
		t.Fatalf("authorization inesperado: %q", gotAuth)
	}
	if gotSHA != "UNSIGNED-PAYLOAD" {
		t.Fatalf("payload hash inesperado: %q", gotSHA)
	}
}

func TestUploadUsaDominioPublico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewS3Client(S3Config{
		Endpoint:     srv.URL,
		Region:       "auto",
		Bucket:       "assets",
		AccessKey:    "key",
		SecretKey:    "secret",
		PublicDomain: "https://cdn.example.com",
		HTTPClient:   srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewS3Client: %v", err)
	}

	url, err := client.Upload(context.Background(), FolderCompanyLogo, strings.NewReader("x"), "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(url, "https://cdn.example.com/portfolio/company_logos/") {
		t.Fatalf("URL pública fora do padrão: %q", url)
	}
}

func TestUploadRejeicao400ViraFormatoNaoSuportado(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := client.Upload(context.Background(), FolderThumbnails, strings.NewReader("x"), "image/png")

	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest || apiErr.Message != "File format not supported" {
		t.Fatalf("erro errado: %v", err)
	}
}

func TestUploadIndisponibilidadeViraRetryHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // derruba antes do upload para forçar connection refused

	client, err := NewS3Client(S3Config{
		Endpoint:  srv.URL,
		Region:    "auto",
		Bucket:    "assets",
		AccessKey: "key",
		SecretKey: "secret",
	})
	if err != nil {
		t.Fatalf("NewS3Client: %v", err)
	}

	_, err = client.Upload(context.Background(), FolderThumbnails, strings.NewReader("x"), "image/png")

	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("erro errado: %v", err)
	}
	if apiErr.Message != "Please check your internet connection and try again." {
		t.Fatalf("mensagem errada: %q", apiErr.Message)
	}
}

type failingReader struct{ err error }

func (f *failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestUploadErroDoStreamPrevalece(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	})

	streamErr := errors.New("disco removido")
	_, err := client.Upload(context.Background(), FolderThumbnails, &failingReader{err: streamErr}, "image/png")
	if err == nil || !strings.Contains(err.Error(), "stream error") {
		t.Fatalf("esperava stream error, veio %v", err)
	}
}

func TestDeleteObjetoAusenteEhSucesso(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if err := client.Delete(context.Background(), "abc123", FolderThumbnails); err != nil {
		t.Fatalf("404 deveria contar como sucesso: %v", err)
	}
}

func TestDeleteMontaChavePeloPublicID(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Delete(context.Background(), "abc123", FolderCertificateLogo); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("método %q", gotMethod)
	}
	if gotPath != "/assets/portfolio/certificate_logos/abc123" {
		t.Fatalf("chave errada: %q", gotPath)
	}
}
