// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"contractchecker/internal/model"
)

// ContractRepository defines persistence for contract records using SQL
// queries only. No business logic here.
type ContractRepository interface {
	// Create inserts a new contract record and returns the stored row.
	// The caller provides ID and CreatedAt.
	Create(ctx context.Context, c *model.Contract) (*model.Contract, error)

	// FindByID returns a contract by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Contract, error)

	// ListAll returns every contract and the total row count.
	ListAll(ctx context.Context) ([]model.Contract, int, error)

	// UpdateAnalysis writes the three analysis fields (toxicity verdict,
	// compliance verdict, rule findings) of an existing row in a single
	// statement. Text and metadata columns are never touched.
	UpdateAnalysis(ctx context.Context, c *model.Contract) error

	// Delete removes a contract by ID. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
