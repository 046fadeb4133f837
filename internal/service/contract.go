package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"contractchecker/internal/analysis"
	"contractchecker/internal/model"
	"contractchecker/internal/pdf"
	"contractchecker/internal/repository"
	"contractchecker/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("contract not found")
	ErrReaderNil  = errors.New("reader is nil")
)

// ContractListResult is the service-level DTO for the full contract list.
type ContractListResult struct {
	Contracts []model.Contract `json:"contracts"`
	Count     int              `json:"count"`
}

// ContractService defines the use cases for handling contracts.
type ContractService interface {
	// Upload parses the uploaded PDF, stores the original bytes in object
	// storage and the extracted text plus metadata in the database.
	// Unparsable input fails with pdf.ErrMalformedDocument and creates no
	// record. Storage is rolled back if the DB save fails.
	Upload(ctx context.Context, r io.Reader, originalFilename string, size int64) (*model.Contract, error)

	// Analyze runs the requested analysis types against a stored contract's
	// text and persists successful verdicts in a single write. The returned
	// outcomes preserve request order, one entry per requested type,
	// including unsupported and failed entries. ErrNotFound is the only
	// request-level failure for a missing contract; no write happens then.
	Analyze(ctx context.Context, contractID string, analysisTypes []string) ([]analysis.Outcome, error)

	// ListAll returns every stored contract and the total count.
	ListAll(ctx context.Context) (*ContractListResult, error)

	// Get returns a single contract by its ID.
	Get(ctx context.Context, id string) (*model.Contract, error)

	// Delete removes a contract by ID from both storage and repository.
	Delete(ctx context.Context, id string) error
}

// contractService is a concrete implementation of ContractService.
type contractService struct {
	store     storage.Storage
	repo      repository.ContractRepository
	extractor pdf.Extractor
	runner    *analysis.Runner
}

// NewContractService constructs a new ContractService.
func NewContractService(store storage.Storage, repo repository.ContractRepository, extractor pdf.Extractor, runner *analysis.Runner) ContractService {
	return &contractService{store: store, repo: repo, extractor: extractor, runner: runner}
}

func (s *contractService) Upload(ctx context.Context, r io.Reader, originalFilename string, size int64) (*model.Contract, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	info, err := s.extractor.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("extract pdf: %w", err)
	}

	id := uuid.New().String()
	key := "contracts/" + id + ".pdf"

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: "application/pdf",
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	c := &model.Contract{
		ID:          id,
		Title:       info.Title,
		Author:      info.Author,
		PagesNum:    info.Pages,
		ContentText: info.Text,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, c)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *contractService) Analyze(ctx context.Context, contractID string, analysisTypes []string) ([]analysis.Outcome, error) {
	if contractID == "" {
		return nil, ErrIDRequired
	}

	c, err := s.repo.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	outcomes := s.runner.Run(ctx, c.ContentText, analysisTypes)

	for _, o := range outcomes {
		analysis.Apply(c, o)
	}

	// One write per analyze request, covering every accumulated update.
	if err := s.repo.UpdateAnalysis(ctx, c); err != nil {
		return nil, fmt.Errorf("save analysis results: %w", err)
	}
	return outcomes, nil
}

// ListAll returns all contracts without exposing repository types.
func (s *contractService) ListAll(ctx context.Context) (*ContractListResult, error) {
	items, total, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ContractListResult{Contracts: items, Count: total}, nil
}

// Get returns a contract by ID.
func (s *contractService) Get(ctx context.Context, id string) (*model.Contract, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a contract from storage, then deletes its record.
func (s *contractService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep the DB row so the
	// stored object is not orphaned without a reference.
	if err := s.store.Delete(ctx, c.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
