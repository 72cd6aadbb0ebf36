// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, request validation, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Credentialed CORS posture: the SPA client carries session cookies
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/dkarlsen/go-gift-backend/internal/config"
	"github.com/dkarlsen/go-gift-backend/internal/domain"
	"github.com/dkarlsen/go-gift-backend/internal/http/handlers"
	"github.com/dkarlsen/go-gift-backend/internal/http/middleware"
	"github.com/dkarlsen/go-gift-backend/internal/repo"
	"github.com/dkarlsen/go-gift-backend/internal/services"
)

// listRepoShim adapts the repository free functions to the services.ListRepo
// interface expected by the ListService. This keeps services decoupled from
// the concrete repo package while reusing existing functions.
type listRepoShim struct{}

// CreateList proxies repo.CreateList.
func (listRepoShim) CreateList(ctx context.Context, db *gorm.DB, id, title, codeHash, token string) (*domain.List, error) {
	return repo.CreateList(ctx, db, id, title, codeHash, token)
}

// TitleExists proxies repo.TitleExists.
func (listRepoShim) TitleExists(ctx context.Context, db *gorm.DB, title string) (bool, error) {
	return repo.TitleExists(ctx, db, title)
}

// GetListByTitle proxies repo.GetListByTitle.
func (listRepoShim) GetListByTitle(ctx context.Context, db *gorm.DB, title string) (*domain.List, error) {
	return repo.GetListByTitle(ctx, db, title)
}

// GetListByToken proxies repo.GetListByToken.
func (listRepoShim) GetListByToken(ctx context.Context, db *gorm.DB, id, token string) (*domain.List, error) {
	return repo.GetListByToken(ctx, db, id, token)
}

// GetListByTitleAndToken proxies repo.GetListByTitleAndToken.
func (listRepoShim) GetListByTitleAndToken(ctx context.Context, db *gorm.DB, title, token string) (*domain.List, error) {
	return repo.GetListByTitleAndToken(ctx, db, title, token)
}

// RotateListToken proxies repo.RotateListToken.
func (listRepoShim) RotateListToken(ctx context.Context, db *gorm.DB, id, token string) error {
	return repo.RotateListToken(ctx, db, id, token)
}

// ListParticipants proxies repo.ListParticipants.
func (listRepoShim) ListParticipants(ctx context.Context, db *gorm.DB, listID string) ([]domain.Participant, error) {
	return repo.ListParticipants(ctx, db, listID)
}

// DeleteParticipants proxies repo.DeleteParticipants.
func (listRepoShim) DeleteParticipants(ctx context.Context, db *gorm.DB, listID string) error {
	return repo.DeleteParticipants(ctx, db, listID)
}

// InsertParticipant proxies repo.InsertParticipant.
func (listRepoShim) InsertParticipant(ctx context.Context, db *gorm.DB, id, listID, name string) error {
	return repo.InsertParticipant(ctx, db, id, listID, name)
}

// UpdateRecipients proxies repo.UpdateRecipients.
func (listRepoShim) UpdateRecipients(ctx context.Context, db *gorm.DB, listID, name, recipients string) error {
	return repo.UpdateRecipients(ctx, db, listID, name, recipients)
}

// participantRepoShim adapts the repository free functions to the
// services.ParticipantRepo interface expected by the ParticipantService.
type participantRepoShim struct{}

// GetParticipantByName proxies repo.GetParticipantByName.
func (participantRepoShim) GetParticipantByName(ctx context.Context, db *gorm.DB, listID, name string) (*domain.Participant, error) {
	return repo.GetParticipantByName(ctx, db, listID, name)
}

// GetParticipantByToken proxies repo.GetParticipantByToken.
func (participantRepoShim) GetParticipantByToken(ctx context.Context, db *gorm.DB, listID, token string) (*domain.Participant, error) {
	return repo.GetParticipantByToken(ctx, db, listID, token)
}

// FindParticipantByToken proxies repo.FindParticipantByToken.
func (participantRepoShim) FindParticipantByToken(ctx context.Context, db *gorm.DB, token string) (*domain.Participant, error) {
	return repo.FindParticipantByToken(ctx, db, token)
}

// SetParticipantCode proxies repo.SetParticipantCode.
func (participantRepoShim) SetParticipantCode(ctx context.Context, db *gorm.DB, listID, name, codeHash, token string) error {
	return repo.SetParticipantCode(ctx, db, listID, name, codeHash, token)
}

// RotateParticipantToken proxies repo.RotateParticipantToken.
func (participantRepoShim) RotateParticipantToken(ctx context.Context, db *gorm.DB, listID, name, token string) error {
	return repo.RotateParticipantToken(ctx, db, listID, name, token)
}

// ListGifts proxies repo.ListGifts.
func (participantRepoShim) ListGifts(ctx context.Context, db *gorm.DB, participantID string) ([]domain.Gift, error) {
	return repo.ListGifts(ctx, db, participantID)
}

// ListNotes proxies repo.ListNotes.
func (participantRepoShim) ListNotes(ctx context.Context, db *gorm.DB, participantID string) ([]domain.Note, error) {
	return repo.ListNotes(ctx, db, participantID)
}

// giftRepoShim adapts the repository free functions to the services.GiftRepo
// interface expected by the GiftService.
type giftRepoShim struct{}

// GetParticipantByToken proxies repo.GetParticipantByToken.
func (giftRepoShim) GetParticipantByToken(ctx context.Context, db *gorm.DB, listID, token string) (*domain.Participant, error) {
	return repo.GetParticipantByToken(ctx, db, listID, token)
}

// CreateGift proxies repo.CreateGift.
func (giftRepoShim) CreateGift(ctx context.Context, db *gorm.DB, id, participantID, description, link string) (*domain.Gift, error) {
	return repo.CreateGift(ctx, db, id, participantID, description, link)
}

// UpdateGift proxies repo.UpdateGift.
func (giftRepoShim) UpdateGift(ctx context.Context, db *gorm.DB, id, participantID, description, link string) (int64, error) {
	return repo.UpdateGift(ctx, db, id, participantID, description, link)
}

// DeleteGift proxies repo.DeleteGift.
func (giftRepoShim) DeleteGift(ctx context.Context, db *gorm.DB, id, participantID string) (int64, error) {
	return repo.DeleteGift(ctx, db, id, participantID)
}

// MarkGiftBought proxies repo.MarkGiftBought.
func (giftRepoShim) MarkGiftBought(ctx context.Context, db *gorm.DB, id string, bought bool, buyerName string) (int64, error) {
	return repo.MarkGiftBought(ctx, db, id, bought, buyerName)
}

// noteRepoShim adapts the repository free functions to the services.NoteRepo
// interface expected by the NoteService.
type noteRepoShim struct{}

// GetParticipantByName proxies repo.GetParticipantByName.
func (noteRepoShim) GetParticipantByName(ctx context.Context, db *gorm.DB, listID, name string) (*domain.Participant, error) {
	return repo.GetParticipantByName(ctx, db, listID, name)
}

// GetParticipantByToken proxies repo.GetParticipantByToken.
func (noteRepoShim) GetParticipantByToken(ctx context.Context, db *gorm.DB, listID, token string) (*domain.Participant, error) {
	return repo.GetParticipantByToken(ctx, db, listID, token)
}

// CreateNote proxies repo.CreateNote.
func (noteRepoShim) CreateNote(ctx context.Context, db *gorm.DB, id, participantID, description, writtenBy string) (*domain.Note, error) {
	return repo.CreateNote(ctx, db, id, participantID, description, writtenBy)
}

// DeleteNote proxies repo.DeleteNote.
func (noteRepoShim) DeleteNote(ctx context.Context, db *gorm.DB, id, writtenBy, participantID string) (int64, error) {
	return repo.DeleteNote(ctx, db, id, writtenBy, participantID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health/metrics/docs endpoints, and then mounts
// the public API.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with credential scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per session/IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction (session tokens ride in cookies)
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses for clients that accept it
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per member session/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeySessionOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture. Credentialed requests (cookies) forbid wildcard
	// origins, so the allowlist is always explicit.
	allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
	for _, o := range cfg.CORS.AllowedOrigins {
		allowed[o] = struct{}{}
	}
	r.Use(func(c *gin.Context) {
		// Echo ACAO with the request Origin when it is in the allowlist (in
		// addition to gin-contrib/cors) so caches vary correctly.
		if origin := c.GetHeader("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				h := c.Writer.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
		}
		c.Next()
	})
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      true,
		EnablePolicy: true,
	}))

	// Liveness/health and connection check
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Gift list API is running") })

	// Swagger UI (optional)
	if cfg.SwaggerEnabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	listSvc := services.NewListService(db, listRepoShim{})
	memberSvc := services.NewParticipantService(db, participantRepoShim{})
	giftSvc := services.NewGiftService(db, giftRepoShim{})
	noteSvc := services.NewNoteService(db, noteRepoShim{})

	h := handlers.New(listSvc, memberSvc, giftSvc, noteSvc, handlers.CookieOptions{
		Secure: cfg.Cookie.Secure,
		MaxAge: cfg.Cookie.MaxAge,
	})

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Lists
		api.POST("/home/new", middleware.ValidateBody(middleware.GroupSchema()), h.CreateList)
		api.POST("/home/open", middleware.ValidateBody(middleware.GroupSchema()), h.OpenList)
		api.POST("/list/find", h.FindList)
		api.POST("/list/create", h.ReplaceRoster)
		api.POST("/list/recipients", h.SetRecipients)

		// Members
		api.POST("/user/create", middleware.ValidateBody(middleware.MemberCredentialSchema()), h.CreateCode)
		api.POST("/user/access", middleware.ValidateBody(middleware.MemberCredentialSchema()), h.AccessMember)
		api.POST("/user/find", h.Whoami)
		api.POST("/user/data", h.MemberPage)
		api.POST("/logout", h.Logout)

		// Gifts
		api.POST("/user/gift/new", h.NewGift)
		api.POST("/user/gift/edit", h.EditGift)
		api.POST("/user/gift/delete", h.DeleteGift)
		api.POST("/user/gift/buy", h.BuyGift)

		// Notes
		api.POST("/user/note/create", h.CreateNote)
		api.POST("/user/note/delete", h.DeleteNote)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
