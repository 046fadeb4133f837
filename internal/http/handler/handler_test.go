package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"contractchecker/internal/analysis"
	"contractchecker/internal/model"
	"contractchecker/internal/service"
	serviceMocks "contractchecker/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func newUploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/contracts/upload-contract", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadContract(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Post("/contracts/upload-contract", UploadContract(mockSvc))

	t.Run("success response exposes metadata only", func(t *testing.T) {
		stored := &model.Contract{
			ID:          uuid.New().String(),
			Title:       "Sample Contract",
			Author:      "John Doe",
			PagesNum:    10,
			ContentText: "full extracted text that must not leak",
		}
		mockSvc.On("Upload", mock.Anything, mock.Anything, "contract.pdf", mock.Anything).
			Return(stored, nil).Once()

		resp, _ := app.Test(newUploadRequest(t, "contract.pdf", []byte("%PDF fake")))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var raw bytes.Buffer
		raw.ReadFrom(resp.Body)
		assert.NotContains(t, raw.String(), "full extracted text")

		var body struct {
			Message  string `json:"message"`
			Contract struct {
				ContractID string `json:"contractId"`
				Title      string `json:"title"`
				PagesNum   int    `json:"pagesNum"`
				Author     string `json:"author"`
			} `json:"contract"`
		}
		require.NoError(t, json.Unmarshal(raw.Bytes(), &body))
		assert.Equal(t, "Contract uploaded successfully", body.Message)
		assert.Equal(t, stored.ID, body.Contract.ContractID)
		assert.Equal(t, "Sample Contract", body.Contract.Title)
		assert.Equal(t, 10, body.Contract.PagesNum)
		assert.Equal(t, "John Doe", body.Contract.Author)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contracts/upload-contract", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.Anything, "bad.pdf", mock.Anything).
			Return(nil, errors.New("extract pdf: malformed document")).Once()

		resp, _ := app.Test(newUploadRequest(t, "bad.pdf", []byte("nope")))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Internal server error", body.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestAnalyzeContract(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Post("/contracts/analyze-contract", AnalyzeContract(mockSvc))

	postJSON := func(payload any) *http.Request {
		b, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/contracts/analyze-contract", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("per-type breakdown", func(t *testing.T) {
		id := uuid.New().String()
		types := []string{
			analysis.NameToxicity,
			analysis.NameHeuristicCompliance,
			"Sentiment Analysis",
			analysis.NameRuleBasedCompliance,
		}
		outcomes := []analysis.Outcome{
			{Requested: types[0], Type: analysis.TypeToxicity, Err: analysis.ErrClassifierUnavailable},
			{Requested: types[1], Type: analysis.TypeHeuristicCompliance, Compliant: boolPtr(true)},
			{Requested: types[2], Type: analysis.TypeUnknown},
			{Requested: types[3], Type: analysis.TypeRuleBasedCompliance, Findings: []model.ComplianceFinding{
				{Rule: "CONFIDENTIALITY", Compliant: true, Message: analysis.SatisfiedMessage},
				{Rule: "TERM AND TERMINATION", Compliant: false, Message: "Document must include a TERM AND TERMINATION terms."},
			}},
		}
		mockSvc.On("Analyze", mock.Anything, id, types).Return(outcomes, nil).Once()

		resp, _ := app.Test(postJSON(map[string]any{"contractId": id, "analysisTypes": types}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Message string `json:"message"`
			Result  []struct {
				Type   string          `json:"type"`
				Result json.RawMessage `json:"result"`
				Error  string          `json:"error"`
			} `json:"result"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Analysis complete", body.Message)
		require.Len(t, body.Result, 4)

		// Failed entry carries an error, not a result.
		assert.Equal(t, analysis.NameToxicity, body.Result[0].Type)
		assert.NotEmpty(t, body.Result[0].Error)

		assert.JSONEq(t, "true", string(body.Result[1].Result))
		assert.JSONEq(t, `"Not implemented"`, string(body.Result[2].Result))

		var findings []model.ComplianceFinding
		require.NoError(t, json.Unmarshal(body.Result[3].Result, &findings))
		require.Len(t, findings, 2)
		assert.Equal(t, "CONFIDENTIALITY", findings[0].Rule)

		mockSvc.AssertExpectations(t)
	})

	t.Run("contract not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Analyze", mock.Anything, id, mock.Anything).
			Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(postJSON(map[string]any{"contractId": id, "analysisTypes": []string{analysis.NameToxicity}}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Contract not found", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing contract id", func(t *testing.T) {
		mockSvc.On("Analyze", mock.Anything, "", mock.Anything).
			Return(nil, service.ErrIDRequired).Once()

		resp, _ := app.Test(postJSON(map[string]any{"analysisTypes": []string{analysis.NameToxicity}}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contracts/analyze-contract", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListContracts(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Get("/contracts/all-contracts", ListContracts(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.ContractListResult{
			Contracts: []model.Contract{{ID: uuid.New().String(), Title: "A"}},
			Count:     1,
		}
		mockSvc.On("ListAll", mock.Anything).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts/all-contracts", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ContractListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Contracts, 1)
		assert.Equal(t, 1, result.Count)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListAll", mock.Anything).Return(nil, errors.New("db fail")).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts/all-contracts", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetContract(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Get("/contracts/get-contract/:id", GetContract(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Contract{ID: id, Title: "T"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts/get-contract/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Contract
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts/get-contract/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Contract not found", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/contracts/get-contract/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteContract(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Delete("/contracts/delete-contract/:id", DeleteContract(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/contracts/delete-contract/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Contract deleted successfully", body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/contracts/delete-contract/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
