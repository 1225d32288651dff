package mutation

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/urbanbyte/portfolio-api/internal/attachment"
	"github.com/urbanbyte/portfolio-api/internal/storage"
)

// Request parametriza uma mutação por entidade: validação de campos,
// anexo opcional e gravação no banco. As closures são fornecidas pelos
// serviços de cada entidade.
type Request struct {
	// Folder é a pasta do object store usada para o anexo da entidade.
	Folder string
	// AttachmentField nomeia o campo do anexo nas mensagens de validação.
	AttachmentField string
	// Attachment é o anexo declarado; nil quando a mutação não envia binário.
	Attachment *attachment.Input
	// Validate roda a validação de campos da entidade. Nenhum store é
	// tocado antes dela passar.
	Validate func(ctx context.Context) error
	// Persist grava o documento. attachmentURL é vazio quando não houve
	// upload nesta requisição.
	Persist func(ctx context.Context, attachmentURL string) error
}

// Orchestrator sequencia validação → upload opcional → gravação, com
// delete compensatório do blob quando a gravação falha depois de um
// upload bem-sucedido. A falha primária propaga inalterada; falha na
// compensação é apenas logada.
type Orchestrator struct {
	store storage.ObjectStore
}

func NewOrchestrator(store storage.ObjectStore) *Orchestrator {
	return &Orchestrator{store: store}
}

// Run executa a mutação. Ao final vale exatamente um dos casos: nenhum
// upload ocorreu; a URL enviada foi gravada no documento; ou um delete
// compensatório foi tentado para o blob órfão.
func (o *Orchestrator) Run(ctx context.Context, req Request) error {
	if req.Validate != nil {
		if err := req.Validate(ctx); err != nil {
			return err
		}
	}

	var uploadedURL string
	if req.Attachment != nil {
		if err := req.Attachment.Validate(req.AttachmentField); err != nil {
			return err
		}

		url, err := o.store.Upload(ctx, req.Folder, req.Attachment.Stream, req.Attachment.MimeType)
		if err != nil {
			return err
		}
		uploadedURL = url
	}

	if err := req.Persist(ctx, uploadedURL); err != nil {
		if uploadedURL != "" {
			o.compensate(ctx, uploadedURL, req.Folder)
		}
		return err
	}

	return nil
}

// RunDelete remove o documento primeiro e depois tenta, em melhor esforço,
// remover o blob que ele referenciava. Falha na remoção do blob não
// desfaz nem falha a remoção do documento.
func (o *Orchestrator) RunDelete(ctx context.Context, folder string, remove func(ctx context.Context) (attachmentURL string, err error)) error {
	attachmentURL, err := remove(ctx)
	if err != nil {
		return err
	}

	if attachmentURL != "" {
		o.compensate(ctx, attachmentURL, folder)
	}

	return nil
}

func (o *Orchestrator) compensate(ctx context.Context, url, folder string) {
	publicID := storage.PublicIDFromURL(url)
	if err := o.store.Delete(ctx, publicID, folder); err != nil {
		log.Error().Err(err).
			Str("public_id", publicID).
			Str("folder", folder).
			Msg("falha ao remover blob no object store")
	}
}
