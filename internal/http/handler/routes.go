package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"contractchecker/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay free of business logic; the service owns the use cases.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.ContractService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	contracts := app.Group("/contracts")
	contracts.Post("/upload-contract", UploadContract(svc))
	contracts.Post("/analyze-contract", AnalyzeContract(svc))
	contracts.Get("/all-contracts", ListContracts(svc))
	contracts.Get("/get-contract/:id", GetContract(svc))
	contracts.Delete("/delete-contract/:id", DeleteContract(svc))
}
