package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/auth"
	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/oauth"
	"github.com/blog-platform-api/internal/service"
)

// RouterDeps bundles everything the router wires into handlers
type RouterDeps struct {
	Services *service.Services
	Tokens   *auth.TokenManager
	OAuth    *oauth.Client
	DBPing   func(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(deps RouterDeps, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(secureHeadersMiddleware())
	router.Use(bodyLimitMiddleware(cfg.Server.MaxBodyBytes))
	router.Use(corsMiddleware(cfg.Server.CORSOrigins))
	router.Use(rateLimitMiddleware(&cfg.Server))

	// Handlers
	authHandler := NewAuthHandler(deps.Services, log)
	articleHandler := NewArticleHandler(deps.Services, log)
	oauthHandler := NewOAuthHandler(deps.Services, deps.OAuth, log)

	// Health check
	router.GET("/health", healthCheck(deps.DBPing))

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)

		authGroup.GET("/google", oauthHandler.Redirect(oauth.ProviderGoogle))
		authGroup.GET("/google/callback", oauthHandler.Callback(oauth.ProviderGoogle))
		authGroup.GET("/github", oauthHandler.Redirect(oauth.ProviderGitHub))
		authGroup.GET("/github/callback", oauthHandler.Callback(oauth.ProviderGitHub))
	}

	// Article endpoints; reads are public, mutations require an access token
	articles := router.Group("/articles")
	{
		articles.GET("", articleHandler.List)
		articles.GET("/:id", articleHandler.GetByID)

		protected := articles.Group("", requireAuth(deps.Tokens))
		{
			protected.POST("", articleHandler.Create)
			protected.PUT("/:id", articleHandler.Update)
			protected.DELETE("/:id", articleHandler.Delete)
		}
	}

	// JSON 404 instead of gin's default empty body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Response{Success: false, Message: "route not found"})
	})

	return router
}

// healthCheck pings the database and reports service health
func healthCheck(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"success":   false,
					"message":   "database connection failed",
					"timestamp": time.Now().Format(time.RFC3339),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "server is healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
