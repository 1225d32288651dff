package storage

import "strings"

// PublicIDFromURL deriva o public ID de um objeto a partir da URL devolvida
// pelo upload: último segmento do caminho, sem a extensão final. É o inverso
// exato da nomeação usada pelo cliente S3 (as chaves não carregam extensão),
// de modo que Delete(PublicIDFromURL(url), folder) atinge o objeto enviado.
func PublicIDFromURL(url string) string {
	segments := strings.Split(url, "/")
	filename := segments[len(segments)-1]

	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return filename[:idx]
	}
	return filename
}
