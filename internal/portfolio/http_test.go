package portfolio

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(repo *stubStore, objects *stubObjectStore) *chi.Mux {
	handler := NewHandler(newTestService(repo, objects))
	r := chi.NewRouter()
	handler.RegisterRoutes(r, nil)
	return r
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) (json.RawMessage, map[string]any) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error map[string]any  `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("resposta não é JSON: %v", err)
	}
	return envelope.Data, envelope.Error
}

func multipartBody(t *testing.T, data string, fileField, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if data != "" {
		if err := writer.WriteField("data", data); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("png-bytes")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestHandleCreateProjectMultipart(t *testing.T) {
	url := "https://cdn.example.com/portfolio/thumbnails/novo123"
	repo := &stubStore{project: Project{Title: "Meu projeto", Status: "active", Thumbnail: &url}}
	objects := &stubObjectStore{uploadURL: url}
	router := newTestRouter(repo, objects)

	body, contentType := multipartBody(t, `{"title":"Meu projeto","status":"active"}`, "thumbnail", "capa.png")
	req := httptest.NewRequest(http.MethodPost, "/projects", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	data, errBody := decodeEnvelope(t, rec.Body)
	if errBody != nil {
		t.Fatalf("erro inesperado no envelope: %v", errBody)
	}
	var got Project
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("data inválido: %v", err)
	}
	if got.Thumbnail == nil || *got.Thumbnail != url {
		t.Fatalf("thumbnail errada: %+v", got)
	}
	if objects.uploads != 1 {
		t.Fatalf("uploads = %d", objects.uploads)
	}
}

func TestHandleCreateProjectSemTituloDevolve400(t *testing.T) {
	router := newTestRouter(&stubStore{}, &stubObjectStore{})

	body, contentType := multipartBody(t, `{"status":"active"}`, "thumbnail", "capa.png")
	req := httptest.NewRequest(http.MethodPost, "/projects", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	_, errBody := decodeEnvelope(t, rec.Body)
	if errBody == nil || errBody["code"] != "VALIDATION" || errBody["message"] != "Title is required" {
		t.Fatalf("envelope de erro errado: %v", errBody)
	}
}

func TestHandleUpdateCertificateIDInvalido(t *testing.T) {
	objects := &stubObjectStore{}
	router := newTestRouter(&stubStore{}, objects)

	req := httptest.NewRequest(http.MethodPut, "/certificates/not-a-uuid", strings.NewReader(`{"title":"Novo"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	_, errBody := decodeEnvelope(t, rec.Body)
	if errBody["message"] != "Invalid certificate id provided" {
		t.Fatalf("mensagem errada: %v", errBody)
	}
	if objects.uploads != 0 {
		t.Fatalf("object store tocado: %d", objects.uploads)
	}
}

func TestHandleListTechnologies(t *testing.T) {
	repo := &stubStore{technologies: []Technology{{Name: "Go"}, {Name: "Postgres"}}}
	router := newTestRouter(repo, &stubObjectStore{})

	req := httptest.NewRequest(http.MethodGet, "/technologies", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	data, _ := decodeEnvelope(t, rec.Body)
	var got []Technology
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("data inválido: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Go" {
		t.Fatalf("lista errada: %+v", got)
	}
}

func TestHandleCreateExperienceJSONSemAnexo(t *testing.T) {
	repo := &stubStore{experience: Experience{Company: "ACME", Position: "Dev"}}
	objects := &stubObjectStore{}
	router := newTestRouter(repo, objects)

	payload := `{"company":"ACME","position":"Dev","from":"2022-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if objects.uploads != 0 {
		t.Fatalf("upload sem anexo: %d", objects.uploads)
	}
}
