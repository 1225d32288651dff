package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	Port            int
	DBDSN           string
	RedisURL        string
	JWTAccessTTL    time.Duration
	JWTSecret       string
	AllowOrigins    []string
	RateLimitPublic RateLimitConfig
	RateLimitAuth   RateLimitConfig
	Storage         StorageConfig
	Mail            MailConfig
	Admin           AdminConfig
}

// RateLimitConfig representa limites simples para throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// StorageConfig descreve o object store usado pelos anexos.
// Provider vazio ou "none" desativa upload (útil em dev).
type StorageConfig struct {
	Provider    string
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
	Root        string
}

// MailConfig configura o envio SMTP do formulário de contato.
type MailConfig struct {
	Host string
	Port string
	User string
	Pass string
}

// AdminConfig guarda as credenciais do único usuário administrativo.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	cfg.DBDSN = getEnv("DB_DSN", "")
	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN obrigatório")
	}

	cfg.RedisURL = getEnv("REDIS_URL", "")

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if len(cfg.JWTSecret) < 32 {
		return nil, errors.New("JWT_SECRET deve ter pelo menos 32 caracteres")
	}

	accessTTL, err := parseDurationEnv("JWT_ACCESS_TTL", 12*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL = accessTTL

	allowOrigins := strings.Split(getEnv("ALLOW_ORIGINS", ""), ",")
	cfg.AllowOrigins = nil
	for _, origin := range allowOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	cfg.RateLimitPublic = RateLimitConfig{RequestsPerSecond: 10, Burst: 20}
	cfg.RateLimitAuth = RateLimitConfig{RequestsPerSecond: 10, Burst: 40}

	cfg.Storage = StorageConfig{
		Provider:    strings.ToLower(getEnv("STORAGE_PROVIDER", "none")),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),
		Root:        getEnv("STORAGE_ROOT", "portfolio"),
	}
	if cfg.Storage.Provider == "s3" {
		if cfg.Storage.S3Endpoint == "" || cfg.Storage.S3Bucket == "" {
			return nil, errors.New("S3_ENDPOINT e S3_BUCKET obrigatórios para STORAGE_PROVIDER=s3")
		}
		if cfg.Storage.S3AccessKey == "" || cfg.Storage.S3SecretKey == "" {
			return nil, errors.New("S3_ACCESS_KEY e S3_SECRET_KEY obrigatórios para STORAGE_PROVIDER=s3")
		}
	}

	cfg.Mail = MailConfig{
		Host: getEnv("MAIL_HOST", ""),
		Port: getEnv("MAIL_PORT", "587"),
		User: getEnv("MAIL_USER", ""),
		Pass: getEnv("MAIL_PASS", ""),
	}

	cfg.Admin = AdminConfig{
		Email:        strings.TrimSpace(getEnv("ADMIN_EMAIL", "")),
		PasswordHash: strings.TrimSpace(getEnv("ADMIN_PASSWORD_HASH", "")),
	}
	if cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" {
		return nil, errors.New("ADMIN_EMAIL e ADMIN_PASSWORD_HASH obrigatórios")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}
