package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"contractchecker/internal/model"
	"contractchecker/internal/repository"
)

// ContractPostgres is a PostgreSQL implementation of
// repository.ContractRepository. It uses database/sql with parameterized
// queries and contains no business logic.
type ContractPostgres struct {
	db *sql.DB
}

// NewContractPostgres creates a new ContractPostgres repository.
func NewContractPostgres(db *sql.DB) *ContractPostgres {
	return &ContractPostgres{db: db}
}

var _ repository.ContractRepository = (*ContractPostgres)(nil)

const contractColumns = `id, title, author, pages_num, content_text, storage_path, size, toxic, compliant, rule_findings, created_at`

// Create inserts a new contract row and returns the stored record.
func (r *ContractPostgres) Create(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	const q = `
		INSERT INTO contracts (id, title, author, pages_num, content_text, storage_path, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + contractColumns

	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Title,
		c.Author,
		c.PagesNum,
		c.ContentText,
		c.StoragePath,
		c.Size,
		c.CreatedAt,
	)
	return scanContract(row)
}

// FindByID fetches a single contract by its ID.
func (r *ContractPostgres) FindByID(ctx context.Context, id string) (*model.Contract, error) {
	const q = `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE id = $1
	`
	return scanContract(r.db.QueryRowContext(ctx, q, id))
}

// ListAll returns every contract ordered newest-first, plus the row count.
func (r *ContractPostgres) ListAll(ctx context.Context) ([]model.Contract, int, error) {
	const q = `
		SELECT ` + contractColumns + `
		FROM contracts
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.Contract, 0)
	for rows.Next() {
		c, err := scanContractRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, len(items), nil
}

// UpdateAnalysis writes the analysis columns of one row in one statement.
func (r *ContractPostgres) UpdateAnalysis(ctx context.Context, c *model.Contract) error {
	findings, err := marshalFindings(c.RuleFindings)
	if err != nil {
		return fmt.Errorf("encode rule findings: %w", err)
	}

	const q = `
		UPDATE contracts
		SET toxic = $2, compliant = $3, rule_findings = $4
		WHERE id = $1
	`
	_, err = r.db.ExecContext(ctx, q, c.ID, nullBool(c.Toxic), nullBool(c.Compliant), findings)
	return err
}

// Delete removes a contract by ID. It does not return an error if the row
// does not exist; the service layer checks existence first.
func (r *ContractPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM contracts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanContract(row *sql.Row) (*model.Contract, error) {
	return scanContractRow(row)
}

func scanContractRow(s scanner) (*model.Contract, error) {
	var (
		c        model.Contract
		toxic    sql.NullBool
		comp     sql.NullBool
		findings []byte
	)
	if err := s.Scan(
		&c.ID,
		&c.Title,
		&c.Author,
		&c.PagesNum,
		&c.ContentText,
		&c.StoragePath,
		&c.Size,
		&toxic,
		&comp,
		&findings,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}

	if toxic.Valid {
		c.Toxic = &toxic.Bool
	}
	if comp.Valid {
		c.Compliant = &comp.Bool
	}
	if len(findings) > 0 {
		if err := json.Unmarshal(findings, &c.RuleFindings); err != nil {
			return nil, fmt.Errorf("decode rule findings: %w", err)
		}
	}
	return &c, nil
}

func marshalFindings(findings []model.ComplianceFinding) (any, error) {
	if findings == nil {
		return nil, nil
	}
	b, err := json.Marshal(findings)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}
