package main

import (
	"net/http"

	"newsbridge-api/config"
	"newsbridge-api/handlers"
	"newsbridge-api/helper"
	"newsbridge-api/repositories"
	"newsbridge-api/router"
	"newsbridge-api/services"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()
	log := config.NewLogger(cfg.Log)

	// Initialize database
	db := config.InitDB(cfg, log)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	preferenceRepo := repositories.NewPreferenceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWT)
	articleService := services.NewArticleService(articleRepo, categoryRepo, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	preferenceService := services.NewPreferenceService(preferenceRepo, log)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	h := router.Handlers{
		Health:     handlers.NewHealthHandler(httpHelper),
		Auth:       handlers.NewAuthHandler(authService, httpHelper),
		Article:    handlers.NewArticleHandler(articleService, httpHelper),
		Category:   handlers.NewCategoryHandler(categoryService, httpHelper),
		Preference: handlers.NewPreferenceHandler(preferenceService, httpHelper),
	}

	r := router.Setup(h, cfg.JWT, log)

	log.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
