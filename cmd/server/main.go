package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/klarsen/folio/config"
	"github.com/klarsen/folio/internal/api/handlers"
	"github.com/klarsen/folio/internal/api/middleware"
	"github.com/klarsen/folio/internal/api/routes"
	"github.com/klarsen/folio/internal/cache"
	"github.com/klarsen/folio/internal/logger"
	"github.com/klarsen/folio/internal/metrics"
	"github.com/klarsen/folio/internal/repositories"
	"github.com/klarsen/folio/internal/seed"
	"github.com/klarsen/folio/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	db, err := config.Connect()
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("database migration error: %v", err)
	}
	log.Info("database connected")

	metrics.Register()

	portfolioRepo := repositories.NewPortfolioRepo(db)
	messageRepo := repositories.NewMessageRepo(db)

	contentCache := cache.NewMemoryCache(5 * time.Minute)
	portfolioSvc := services.NewPortfolioService(portfolioRepo, contentCache)
	contactSvc := services.NewContactService(messageRepo)

	// Seed before the listener comes up so readers never observe a
	// half-populated store.
	if err := seed.New(portfolioRepo, log).Run(context.Background()); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	if os.Getenv("APP_ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Portfolio: handlers.NewPortfolioHandler(portfolioSvc),
		Contact:   handlers.NewContactHandler(contactSvc),
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server listening")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000", "http://localhost:5173"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
