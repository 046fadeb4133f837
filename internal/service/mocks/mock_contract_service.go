package mocks

import (
	"context"
	"io"

	"contractchecker/internal/analysis"
	"contractchecker/internal/model"
	"contractchecker/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Upload(ctx context.Context, r io.Reader, originalFilename string, size int64) (*model.Contract, error) {
	args := m.Called(ctx, r, originalFilename, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) Analyze(ctx context.Context, contractID string, analysisTypes []string) ([]analysis.Outcome, error) {
	args := m.Called(ctx, contractID, analysisTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analysis.Outcome), args.Error(1)
}

func (m *MockContractService) ListAll(ctx context.Context) (*service.ContractListResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContractListResult), args.Error(1)
}

func (m *MockContractService) Get(ctx context.Context, id string) (*model.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
