package storage

import (
	"context"
	"io"
)

// Pastas usadas pelos módulos do portfólio dentro do bucket.
const (
	FolderThumbnails      = "thumbnails"
	FolderCertificateLogo = "certificate_logos"
	FolderCompanyLogo     = "company_logos"
)

// ObjectStore define o contrato com o armazenamento externo de binários.
// Upload consome o stream e devolve a URL pública durável; Delete remove
// um objeto pelo public ID derivado da URL e trata objeto ausente como
// sucesso (idempotente).
type ObjectStore interface {
	Upload(ctx context.Context, folder string, stream io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, publicID, folder string) error
}
