package main

import (
	"context"
	"os"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog/log"

	"github.com/fadhlanhapp/ricemill-backend/config"
	"github.com/fadhlanhapp/ricemill-backend/handlers"
	"github.com/fadhlanhapp/ricemill-backend/logging"
	"github.com/fadhlanhapp/ricemill-backend/repository"
	"github.com/fadhlanhapp/ricemill-backend/routes"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.NewLogger(os.Stdout, cfg.Log.Format, cfg.Log.Level)
	logging.Setup(logger)

	// Initialize New Relic
	var app *newrelic.Application
	if cfg.NewRelic.License != "" {
		var err error
		app, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelic.License),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize New Relic")
		}
	}

	// Initialize database
	if err := repository.InitDB(cfg.Database.DSN()); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer repository.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.EnsureSchema(ctx, repository.GetDB()); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to prepare database schema")
	}
	cancel()

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	// Set up Gin router
	gin.SetMode(cfg.App.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), logging.RequestLogger(logger))

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", utils.MillHeader, "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: !slices.Contains(cfg.CORS.AllowedOrigins, "*"),
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, handlers.NewDatabaseServices(repository.GetDB()))

	// Start server
	log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("server starting")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

