package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/urbanbyte/portfolio-api/internal/auth"
	"github.com/urbanbyte/portfolio-api/internal/config"
	"github.com/urbanbyte/portfolio-api/internal/contact"
	httpmiddleware "github.com/urbanbyte/portfolio-api/internal/http/middleware"
	"github.com/urbanbyte/portfolio-api/internal/mutation"
	"github.com/urbanbyte/portfolio-api/internal/portfolio"
	"github.com/urbanbyte/portfolio-api/internal/storage"
)

type Handler struct {
	cfg           *config.Config
	pool          *pgxpool.Pool
	redis         *redis.Client
	admin         *auth.Admin
	publicLimiter *httpmiddleware.RateLimiter
	authLimiter   *httpmiddleware.RateLimiter
}

// NewRouter devolve roteador configurado.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) (http.Handler, error) {
	var store storage.ObjectStore = storage.NoopStore{}
	switch cfg.Storage.Provider {
	case "", "none", "noop":
		// mantém store padrão
	case "s3", "r2", "cloudflare-r2":
		s3Cfg := storage.S3Config{
			Endpoint:     cfg.Storage.S3Endpoint,
			Region:       cfg.Storage.S3Region,
			Bucket:       cfg.Storage.S3Bucket,
			AccessKey:    cfg.Storage.S3AccessKey,
			SecretKey:    cfg.Storage.S3SecretKey,
			PublicDomain: cfg.Storage.S3PublicURL,
			Root:         cfg.Storage.Root,
		}
		client, err := storage.NewS3Client(s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		store = client
	default:
		return nil, fmt.Errorf("storage: provedor %s não suportado", cfg.Storage.Provider)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTTL)
	admin := auth.NewAdmin(cfg.Admin.Email, cfg.Admin.PasswordHash, jwtManager)

	portfolioRepo := portfolio.NewRepository(pool)
	orchestrator := mutation.NewOrchestrator(store)
	portfolioService := portfolio.NewService(portfolioRepo, orchestrator, redisClient)
	portfolioHandler := portfolio.NewHandler(portfolioService)

	var mailer contact.Mailer
	if cfg.Mail.Host != "" {
		mailer = &contact.SMTPMailer{
			Host: cfg.Mail.Host,
			Port: cfg.Mail.Port,
			User: cfg.Mail.User,
			Pass: cfg.Mail.Pass,
			From: cfg.Admin.Email,
		}
	} else {
		mailer = contact.DiscardMailer{}
	}
	contactService := contact.NewService(mailer, cfg.Admin.Email)
	contactHandler := contact.NewHandler(contactService)

	h := &Handler{
		cfg:           cfg,
		pool:          pool,
		redis:         redisClient,
		admin:         admin,
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
		authLimiter:   httpmiddleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst),
	}

	requireAuth := httpmiddleware.Auth(jwtManager)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))
	r.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/auth", func(authRouter chi.Router) {
		authRouter.Use(httpmiddleware.IPRateLimit(h.authLimiter))
		authRouter.Post("/login", h.Login)
	})

	portfolioHandler.RegisterRoutes(r, requireAuth)
	contactHandler.RegisterRoutes(r)

	return r, nil
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida conexões com Postgres e Redis.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbErr := h.pool.Ping(ctx)
	var redisErr error
	if h.redis != nil {
		redisErr = h.redis.Ping(ctx).Err()
	}

	if dbErr != nil || redisErr != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "dependências indisponíveis", map[string]any{
			"db":    errorString(dbErr),
			"redis": errorString(redisErr),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Login autentica o administrador e devolve o token de acesso.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "Invalid request body", nil)
		return
	}

	if strings.TrimSpace(payload.Email) == "" || strings.TrimSpace(payload.Password) == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "Email and password are required", nil)
		return
	}

	token, err := h.admin.Login(payload.Email, payload.Password)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "AUTH", "Invalid credentials", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"access_token": token})
}
