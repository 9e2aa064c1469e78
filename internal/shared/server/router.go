package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"edubot-backend/internal/documents"
	"edubot-backend/internal/generations"
	"edubot-backend/internal/quota"
	"edubot-backend/internal/shared/config"
	"edubot-backend/internal/shared/metrics"
	"edubot-backend/internal/shared/server/middleware"
	"edubot-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up. Construction happens
// in bootstrap so tests can inject their own services.
type RouterDeps struct {
	Config             config.Config
	DocumentsHandler   *documents.Handler
	GenerationsHandler *generations.Handler
	QuotaHandler       *quota.Handler
}

const rateLimitGroupGenerate = "GENERATE"

// NewRouter constructs the Gin engine with middleware and routes registered.
// Health and metrics stay outside the auth chain.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/")
	api.Use(
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":              {Rate: 10, Burst: 20},
				rateLimitGroupGenerate: {Rate: 1, Burst: 5},
			},
			DefaultGroup: "DEFAULT",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasPrefix(c.FullPath(), "/generate") {
					return rateLimitGroupGenerate
				}
				return ""
			},
		}),
	)

	deps.DocumentsHandler.RegisterRoutes(api)
	deps.GenerationsHandler.RegisterRoutes(api)
	deps.QuotaHandler.RegisterRoutes(api)

	if cfg.Env == "dev" || cfg.Env == "local" {
		dev := api.Group("/dev")
		deps.QuotaHandler.RegisterDevRoutes(dev)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
