package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/diagnostics"
	"resume-builder/internal/exports"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/suggestions"
)

const rateLimitGroupExport = "EXPORT"

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config             config.Config
	Health             *health.Service
	ExportHandler      *exports.Handler
	SuggestionHandler  *suggestions.Handler
	DiagnosticsHandler *diagnostics.Handler
	RateLimiter        *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(exportRateLimit(deps)),
	)
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "Not Found")
	})

	if deps.Health != nil {
		deps.Health.RegisterRoutes(r)
	}
	if deps.SuggestionHandler != nil {
		deps.SuggestionHandler.RegisterRoutes(r)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(r)
	}
	if deps.DiagnosticsHandler != nil {
		deps.DiagnosticsHandler.RegisterRoutes(r)
	}
	r.GET("/metrics", metrics.Handler())

	return r
}

func exportRateLimit(deps RouterDeps) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if deps.Config.RateLimitExportRPS > 0 {
		rules[rateLimitGroupExport] = middleware.RateLimitRule{
			Rate:  deps.Config.RateLimitExportRPS,
			Burst: deps.Config.RateLimitExportBurst,
		}
	}
	return middleware.RateLimitConfig{
		Rules:   rules,
		Limiter: deps.RateLimiter,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/export/:format" {
				return rateLimitGroupExport
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
