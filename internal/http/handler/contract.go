package handler

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contractchecker/internal/analysis"
	"contractchecker/internal/service"
)

// uploadedContract is the upload response DTO. It intentionally exposes
// only metadata, never the extracted text.
type uploadedContract struct {
	ContractID string `json:"contractId"`
	Title      string `json:"title"`
	PagesNum   int    `json:"pagesNum"`
	Author     string `json:"author"`
}

// analysisEntry is one element of the analyze response. Result carries the
// per-type verdict (bool, findings, or the "Not implemented" sentinel for
// unknown types); Error is set instead when that single analysis failed.
type analysisEntry struct {
	Type   string `json:"type"`
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

type analyzeRequest struct {
	ContractID    string   `json:"contractId"`
	AnalysisTypes []string `json:"analysisTypes"`
}

// UploadContract handles POST /contracts/upload-contract.
//
// @Summary Upload a contract PDF
// @Tags contracts
// @Accept multipart/form-data
// @Param file formData file true "contract PDF"
// @Success 201 {object} map[string]any
// @Router /contracts/upload-contract [post]
func UploadContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		stored, err := svc.Upload(c.UserContext(), f, fh.Filename, fh.Size)
		if err != nil {
			// Extraction and store failures both surface as request-level
			// errors; no partial record exists at this point.
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Contract uploaded successfully",
			"contract": uploadedContract{
				ContractID: stored.ID,
				Title:      stored.Title,
				PagesNum:   stored.PagesNum,
				Author:     stored.Author,
			},
		})
	}
}

// AnalyzeContract handles POST /contracts/analyze-contract.
//
// As long as the contract exists the response is 200 with a per-type
// breakdown, even if every individual analysis failed.
//
// @Summary Analyze a stored contract
// @Tags contracts
// @Accept json
// @Param request body analyzeRequest true "analysis request"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Router /contracts/analyze-contract [post]
func AnalyzeContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req analyzeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		outcomes, err := svc.Analyze(c.UserContext(), req.ContractID, req.AnalysisTypes)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "Contract not found")
			case errors.Is(err, service.ErrIDRequired):
				return writeError(c, fiber.StatusBadRequest, "contractId is required")
			default:
				return writeError(c, fiber.StatusInternalServerError, "Internal server error")
			}
		}

		return c.JSON(fiber.Map{
			"message": "Analysis complete",
			"result":  toAnalysisEntries(outcomes),
		})
	}
}

// ListContracts handles GET /contracts/all-contracts.
//
// @Summary List all contracts
// @Tags contracts
// @Success 200 {object} service.ContractListResult
// @Router /contracts/all-contracts [get]
func ListContracts(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ListAll(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(res)
	}
}

// GetContract handles GET /contracts/get-contract/:id.
//
// @Summary Get a contract by ID
// @Tags contracts
// @Param id path string true "contract ID"
// @Success 200 {object} model.Contract
// @Failure 404 {object} errorPayload
// @Router /contracts/get-contract/{id} [get]
func GetContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		contract, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "Contract not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(contract)
	}
}

// DeleteContract handles DELETE /contracts/delete-contract/:id.
//
// @Summary Delete a contract by ID
// @Tags contracts
// @Param id path string true "contract ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /contracts/delete-contract/{id} [delete]
func DeleteContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "Contract not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(fiber.Map{"message": "Contract deleted successfully"})
	}
}

// HealthCheck handles GET /health; it checks DB connectivity only.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe handles GET /healthz, a plain liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

func toAnalysisEntries(outcomes []analysis.Outcome) []analysisEntry {
	entries := make([]analysisEntry, 0, len(outcomes))
	for _, o := range outcomes {
		e := analysisEntry{Type: o.Requested}
		switch {
		case o.Failed():
			e.Error = o.Err.Error()
		case o.Unsupported():
			e.Result = "Not implemented"
		case o.Toxic != nil:
			e.Result = *o.Toxic
		case o.Compliant != nil:
			e.Result = *o.Compliant
		case o.Findings != nil:
			e.Result = o.Findings
		}
		entries = append(entries, e)
	}
	return entries
}
