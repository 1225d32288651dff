package storage

import (
	"context"
	"errors"
	"io"
)

// NoopStore devolve erro indicando que não há backend configurado.
// Delete é silencioso para não poluir compensações em ambiente local.
type NoopStore struct{}

func (NoopStore) Upload(ctx context.Context, folder string, stream io.Reader, contentType string) (string, error) {
	return "", errors.New("storage: object store não configurado")
}

func (NoopStore) Delete(ctx context.Context, publicID, folder string) error {
	return nil
}
