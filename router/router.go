package router

import (
	"newsbridge-api/config"
	"newsbridge-api/handlers"
	"newsbridge-api/middleware"
	"newsbridge-api/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Article    *handlers.ArticleHandler
	Category   *handlers.CategoryHandler
	Preference *handlers.PreferenceHandler
}

// Setup binds every named procedure to its handler. Procedures live under
// /api/rpc/<name>; input is validated before the handler's service runs.
func Setup(h Handlers, jwtCfg config.JWTConfig, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", h.Health.Check)

	// Auth routes (public)
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}
	r.GET("/api/v1/profile", middleware.AuthMiddleware(jwtCfg), h.Auth.GetProfile)

	// Named procedures
	rpc := r.Group("/api/rpc")
	{
		rpc.POST("/healthCheck", h.Health.Check)
		rpc.POST("/getHomePageData", h.Article.GetHomePageData)
		rpc.POST("/getArticles", h.Article.GetArticles)
		rpc.POST("/getFeaturedArticles", h.Article.GetFeaturedArticles)
		rpc.POST("/searchArticles", h.Article.SearchArticles)
		rpc.POST("/getCategories", h.Category.GetCategories)
		rpc.POST("/getUserPreferences", h.Preference.GetUserPreferences)
		rpc.POST("/updateUserPreferences", h.Preference.UpdateUserPreferences)

		// Mutations require an authenticated editor; categories are admin-only
		protected := rpc.Group("", middleware.AuthMiddleware(jwtCfg))
		{
			protected.POST("/createArticle", h.Article.CreateArticle)
			protected.POST("/updateArticle", h.Article.UpdateArticle)
			protected.POST("/createCategory", middleware.RequireRole(string(models.RoleAdmin)), h.Category.CreateCategory)
		}
	}

	return r
}
