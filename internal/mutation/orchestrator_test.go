package mutation

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/urbanbyte/portfolio-api/internal/attachment"
	"github.com/urbanbyte/portfolio-api/internal/storage"
)

type recordingStore struct {
	uploadURL  string
	uploadErr  error
	deleteErr  error
	uploads    int
	deletes    int
	lastFolder string
	lastID     string
}

var _ storage.ObjectStore = (*recordingStore)(nil)

func (s *recordingStore) Upload(ctx context.Context, folder string, stream io.Reader, contentType string) (string, error) {
	s.uploads++
	s.lastFolder = folder
	return s.uploadURL, s.uploadErr
}

func (s *recordingStore) Delete(ctx context.Context, publicID, folder string) error {
	s.deletes++
	s.lastID = publicID
	s.lastFolder = folder
	return s.deleteErr
}

func imageInput() *attachment.Input {
	return &attachment.Input{
		Stream:   strings.NewReader("fake-bytes"),
		Filename: "thumb.png",
		MimeType: "image/png",
	}
}

func TestRunSemAnexoNaoTocaStore(t *testing.T) {
	store := &recordingStore{}
	orch := NewOrchestrator(store)

	persisted := false
	err := orch.Run(context.Background(), Request{
		Folder: "thumbnails",
		Persist: func(ctx context.Context, attachmentURL string) error {
			persisted = true
			if attachmentURL != "" {
				t.Fatalf("esperava URL vazia, veio %q", attachmentURL)
			}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !persisted {
		t.Fatal("persist não foi chamado")
	}
	if store.uploads != 0 || store.deletes != 0 {
		t.Fatalf("store tocado sem anexo: uploads=%d deletes=%d", store.uploads, store.deletes)
	}
}

func TestRunValidacaoFalhaNaoTocaStore(t *testing.T) {
	store := &recordingStore{uploadURL: "https://cdn.example.com/portfolio/thumbnails/abc"}
	orch := NewOrchestrator(store)

	wantErr := errors.New("Title is required")
	err := orch.Run(context.Background(), Request{
		Folder:          "thumbnails",
		AttachmentField: "Thumbnail",
		Attachment:      imageInput(),
		Validate: func(ctx context.Context) error {
			return wantErr
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			t.Fatal("persist não deveria rodar")
			return nil
		},
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("erro errado: %v", err)
	}
	if store.uploads != 0 || store.deletes != 0 {
		t.Fatalf("store tocado após validação falhar: uploads=%d deletes=%d", store.uploads, store.deletes)
	}
}

func TestRunAnexoInvalidoNaoTocaStore(t *testing.T) {
	store := &recordingStore{}
	orch := NewOrchestrator(store)

	err := orch.Run(context.Background(), Request{
		Folder:          "thumbnails",
		AttachmentField: "Thumbnail",
		Attachment: &attachment.Input{
			Stream:   strings.NewReader("not an image"),
			Filename: "virus.exe",
			MimeType: "application/octet-stream",
		},
		Persist: func(ctx context.Context, attachmentURL string) error {
			t.Fatal("persist não deveria rodar")
			return nil
		},
	})
	if err == nil {
		t.Fatal("esperava erro de formato")
	}
	if store.uploads != 0 {
		t.Fatalf("upload ocorreu para anexo inválido: %d", store.uploads)
	}
}

func TestRunPersistFalhaCompensaBlob(t *testing.T) {
	url := "https://cdn.example.com/portfolio/thumbnails/abc123"
	store := &recordingStore{uploadURL: url}
	orch := NewOrchestrator(store)

	primary := errors.New("db down")
	err := orch.Run(context.Background(), Request{
		Folder:          "thumbnails",
		AttachmentField: "Thumbnail",
		Attachment:      imageInput(),
		Persist: func(ctx context.Context, attachmentURL string) error {
			if attachmentURL != url {
				t.Fatalf("persist recebeu URL %q", attachmentURL)
			}
			return primary
		},
	})
	if !errors.Is(err, primary) {
		t.Fatalf("falha primária deveria propagar inalterada, veio %v", err)
	}
	if store.deletes != 1 {
		t.Fatalf("esperava exatamente 1 delete compensatório, houve %d", store.deletes)
	}
	if store.lastID != storage.PublicIDFromURL(url) {
		t.Fatalf("delete usou public id %q", store.lastID)
	}
	if store.lastFolder != "thumbnails" {
		t.Fatalf("delete usou folder %q", store.lastFolder)
	}
}

func TestRunCompensacaoFalhaNaoMascaraErroPrimario(t *testing.T) {
	store := &recordingStore{
		uploadURL: "https://cdn.example.com/portfolio/thumbnails/abc123",
		deleteErr: errors.New("store offline"),
	}
	orch := NewOrchestrator(store)

	primary := errors.New("db down")
	err := orch.Run(context.Background(), Request{
		Folder:          "thumbnails",
		AttachmentField: "Thumbnail",
		Attachment:      imageInput(),
		Persist: func(ctx context.Context, attachmentURL string) error {
			return primary
		},
	})
	if !errors.Is(err, primary) {
		t.Fatalf("falha da compensação vazou: %v", err)
	}
}

func TestRunUploadFalhaNaoPersisteNemCompensa(t *testing.T) {
	store := &recordingStore{uploadErr: errors.New("timeout")}
	orch := NewOrchestrator(store)

	err := orch.Run(context.Background(), Request{
		Folder:          "thumbnails",
		AttachmentField: "Thumbnail",
		Attachment:      imageInput(),
		Persist: func(ctx context.Context, attachmentURL string) error {
			t.Fatal("persist não deveria rodar após upload falhar")
			return nil
		},
	})
	if err == nil {
		t.Fatal("esperava erro do upload")
	}
	if store.deletes != 0 {
		t.Fatalf("compensação indevida: %d", store.deletes)
	}
}

func TestRunDeleteRemoveDocumentoEDepoisBlob(t *testing.T) {
	url := "https://cdn.example.com/portfolio/company_logos/logo42"
	store := &recordingStore{}
	orch := NewOrchestrator(store)

	removed := false
	err := orch.RunDelete(context.Background(), "company_logos", func(ctx context.Context) (string, error) {
		removed = true
		return url, nil
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !removed {
		t.Fatal("documento não foi removido")
	}
	if store.deletes != 1 || store.lastID != "logo42" || store.lastFolder != "company_logos" {
		t.Fatalf("delete do blob incorreto: n=%d id=%q folder=%q", store.deletes, store.lastID, store.lastFolder)
	}
}

func TestRunDeleteDocumentoFalhaNaoTocaBlob(t *testing.T) {
	store := &recordingStore{}
	orch := NewOrchestrator(store)

	wantErr := errors.New("not found")
	err := orch.RunDelete(context.Background(), "company_logos", func(ctx context.Context) (string, error) {
		return "", wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("erro errado: %v", err)
	}
	if store.deletes != 0 {
		t.Fatalf("blob tocado apesar da falha no documento: %d", store.deletes)
	}
}

func TestRunDeleteBlobFalhaNaoFalhaOperacao(t *testing.T) {
	store := &recordingStore{deleteErr: errors.New("store offline")}
	orch := NewOrchestrator(store)

	err := orch.RunDelete(context.Background(), "thumbnails", func(ctx context.Context) (string, error) {
		return "https://cdn.example.com/portfolio/thumbnails/abc", nil
	})
	if err != nil {
		t.Fatalf("falha do blob não deveria propagar: %v", err)
	}
}
