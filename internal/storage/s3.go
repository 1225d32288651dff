package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
)

// S3Config descreve parâmetros necessários para assinar requisições compatíveis com S3.
type S3Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	PublicDomain string
	Root         string
	HTTPClient   *http.Client
}

// S3Client implementa ObjectStore usando assinatura SigV4.
// Os uploads são enviados em streaming (UNSIGNED-PAYLOAD), sem carregar o
// corpo inteiro em memória.
type S3Client struct {
	cfg    S3Config
	client *http.Client
}

const (
	unsignedPayload  = "UNSIGNED-PAYLOAD"
	emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

// NewS3Client cria um cliente pronto para enviar e remover objetos em um endpoint S3/R2.
func NewS3Client(cfg S3Config) (*S3Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Root) == "" {
		cfg.Root = "portfolio"
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	return &S3Client{cfg: cfg, client: client}, nil
}

// Upload envia o stream para <root>/<folder>/<uuid> e devolve a URL pública.
// A chave do objeto não carrega extensão para que o public ID seja derivável
// da URL (ver PublicIDFromURL). Falhas de transporte são classificadas em
// indisponibilidade (com dica de retry), formato não suportado ou falha
// genérica de upload; erro de leitura do stream é reportado separadamente.
func (c *S3Client) Upload(ctx context.Context, folder string, stream io.Reader, contentType string) (string, error) {
	if stream == nil {
		return "", errors.New("storage: stream vazio")
	}

	key := c.objectKey(folder, uuid.NewString())
	targetURL := c.objectURL(key)

	body := &trackingReader{r: stream}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, targetURL, body)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(contentType) == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-amz-content-sha256", unsignedPayload)

	if err := signS3Request(req, c.cfg, unsignedPayload, time.Now().UTC()); err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if body.err != nil {
			return "", fmt.Errorf("stream error: %w", body.err)
		}
		if isTransient(err) {
			return "", apierror.New("Please check your internet connection and try again.", http.StatusServiceUnavailable)
		}
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusBadRequest {
			return "", apierror.New("File format not supported", http.StatusBadRequest)
		}
		return "", fmt.Errorf("upload failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return c.publicURL(key), nil
}

// Delete remove o objeto identificado pelo public ID dentro da pasta.
// Objeto inexistente conta como sucesso; qualquer outra falha é devolvida
// ao chamador (que, em compensação, deve apenas logar).
func (c *S3Client) Delete(ctx context.Context, publicID, folder string) error {
	if strings.TrimSpace(publicID) == "" {
		return errors.New("storage: public id obrigatório")
	}

	key := c.objectKey(folder, publicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(key), nil)
	if err != nil {
		return err
	}

	req.Header.Set("x-amz-content-sha256", emptyPayloadHash)
	if err := signS3Request(req, c.cfg, emptyPayloadHash, time.Now().UTC()); err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("delete failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return nil
}

func (c *S3Client) objectKey(folder, name string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return c.cfg.Root + "/" + name
	}
	return c.cfg.Root + "/" + folder + "/" + name
}

func (c *S3Client) objectURL(key string) string {
	endpoint := strings.TrimRight(c.cfg.Endpoint, "/")
	escapedKey := (&url.URL{Path: key}).EscapedPath()
	return fmt.Sprintf("%s/%s/%s", endpoint, c.cfg.Bucket, escapedKey)
}

func (c *S3Client) publicURL(key string) string {
	if strings.TrimSpace(c.cfg.PublicDomain) != "" {
		escapedKey := (&url.URL{Path: key}).EscapedPath()
		return fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.PublicDomain, "/"), escapedKey)
	}
	return c.objectURL(key)
}

// trackingReader registra o primeiro erro de leitura do stream de origem,
// para distinguir falha do cliente de falha de transporte.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host")
}

func (cfg S3Config) validate() error {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return errors.New("storage: endpoint do S3 ausente")
	}
	if strings.TrimSpace(cfg.Region) == "" {
		return errors.New("storage: região do S3 ausente")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return errors.New("storage: bucket do S3 ausente")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" {
		return errors.New("storage: access key ausente")
	}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return errors.New("storage: secret key ausente")
	}
	if !strings.HasPrefix(cfg.Endpoint, "http://") && !strings.HasPrefix(cfg.Endpoint, "https://") {
		return errors.New("storage: endpoint deve incluir protocolo http/https")
	}
	return nil
}

func signS3Request(req *http.Request, cfg S3Config, payloadHash string, now time.Time) error {
	amzDate := now.UTC().Format("20060102T150405Z")
	dateStamp := now.UTC().Format("20060102")

	req.Header.Set("x-amz-date", amzDate)
	req.Header.Set("Host", req.URL.Host)

	canonicalURI := canonicalURI(req.URL.Path)
	canonicalQuery := canonicalQueryString(req.URL.Query())

	headers, signedHeaders := canonicalHeaders(req.Header)
	canonicalRequest := strings.Join([]string{
		req.Method,
		canonicalURI,
		canonicalQuery,
		headers,
		signedHeaders,
		payloadHash,
	}, "\n")

	hashedCanonical := sha256.Sum256([]byte(canonicalRequest))
	hexCanonical := hex.EncodeToString(hashedCanonical[:])

	credentialScope := fmt.Sprintf("%s/%s/s3/aws4_request", dateStamp, cfg.Region)
	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256",
		amzDate,
		credentialScope,
		hexCanonical,
	}, "\n")

	signingKey := deriveSigningKey(cfg.SecretKey, dateStamp, cfg.Region, "s3")
	signature := hmacSHA256(signingKey, []byte(stringToSign))
	signatureHex := hex.EncodeToString(signature)

	authorization := fmt.Sprintf(
		"AWS4-HMAC-SHA256 Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		cfg.AccessKey,
		credentialScope,
		signedHeaders,
		signatureHex,
	)

	req.Header.Set("Authorization", authorization)
	return nil
}

func canonicalURI(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return uriEncode(path, false)
}

func canonicalQueryString(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var parts []string
	for _, key := range keys {
		vals := values[key]
		sort.Strings(vals)
		for _, v := range vals {
			parts = append(parts, fmt.Sprintf("%s=%s", uriEncode(key, true), uriEncode(v, true)))
		}
	}
	return strings.Join(parts, "&")
}

func canonicalHeaders(h http.Header) (string, string) {
	type header struct {
		key   string
		value string
	}

	merged := make(map[string][]string)
	for k, vals := range h {
		lower := strings.ToLower(k)
		if lower == "authorization" {
			continue
		}
		merged[lower] = append(merged[lower], vals...)
	}

	if _, ok := merged["host"]; !ok {
		merged["host"] = []string{h.Get("Host")}
	}
	if _, ok := merged["x-amz-content-sha256"]; !ok {
		merged["x-amz-content-sha256"] = []string{h.Get("x-amz-content-sha256")}
	}
	if _, ok := merged["x-amz-date"]; !ok {
		merged["x-amz-date"] = []string{h.Get("x-amz-date")}
	}

	list := make([]header, 0, len(merged))
	for k, vals := range merged {
		sanitized := make([]string, 0, len(vals))
		for _, v := range vals {
			sanitized = append(sanitized, strings.TrimSpace(v))
		}
		list = append(list, header{key: k, value: strings.Join(sanitized, ",")})
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].key < list[j].key
	})

	headerLines := make([]string, len(list))
	signedHeaders := make([]string, len(list))
	for i, item := range list {
		headerLines[i] = fmt.Sprintf("%s:%s", item.key, item.value)
		signedHeaders[i] = item.key
	}

	return strings.Join(headerLines, "\n") + "\n", strings.Join(signedHeaders, ";")
}

func uriEncode(input string, encodeSlash bool) string {
	var builder strings.Builder
	for i := 0; i < len(input); i++ {
		c := input[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == '.' || c == '~' {
			builder.WriteByte(c)
			continue
		}
		if c == '/' && !encodeSlash {
			builder.WriteByte(c)
			continue
		}
		builder.WriteString(fmt.Sprintf("%%%02X", c))
	}
	return builder.String()
}

func deriveSigningKey(secret, dateStamp, region, service string) []byte {
	kDate := hmacSHA256([]byte("AWS4"+secret), []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(region))
	kService := hmacSHA256(kRegion, []byte(service))
	return hmacSHA256(kService, []byte("aws4_request"))
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
