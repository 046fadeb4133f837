package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"contractchecker/docs"
	"contractchecker/internal/analysis"
	"contractchecker/internal/config"
	"contractchecker/internal/database"
	"contractchecker/internal/database/migration"
	handlers "contractchecker/internal/http/handler"
	"contractchecker/internal/http/middleware"
	"contractchecker/internal/otel"
	"contractchecker/internal/pdf"
	"contractchecker/internal/repository/postgres"
	"contractchecker/internal/service"
	"contractchecker/internal/storage"
)

// @title Contract Checker API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.Local)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.Local, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Toxicity classification goes through a remote model endpoint; the
	// handle is created lazily on first use and shared afterwards.
	classifier := analysis.NewLazyClassifier(func() (analysis.Classifier, error) {
		return analysis.NewHTTPClassifier(cfg.Toxicity)
	})

	registry := analysis.NewRegistry(
		analysis.NewToxicityAnalyzer(classifier),
		analysis.NewHeuristicAnalyzer(),
		analysis.NewRuleBasedAnalyzer(analysis.DefaultRules()),
	)
	runner := analysis.NewRunner(registry)

	// Initialize repositories and services
	contractRepo := postgres.NewContractPostgres(db)
	contractSvc := service.NewContractService(objStore, contractRepo, pdf.NewExtractor(), runner)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, contractSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
