// Package postgres stores documents as rows of a single table.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odyssey-erp/registrar/internal/storage"
)

const (
	createTable = `CREATE TABLE IF NOT EXISTS registrar_documents (
	name TEXT PRIMARY KEY,
	payload JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	selectDocument = `SELECT payload FROM registrar_documents WHERE name = $1`
	upsertDocument = `INSERT INTO registrar_documents (name, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

	undefinedTable = "42P01"
)

// Querier is the subset of a pgx pool the backend needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Backend reads and writes registrar_documents.
type Backend struct {
	db    Querier
	close func()
}

// New wraps pool and makes sure the table exists.
func New(ctx context.Context, pool *pgxpool.Pool) (*Backend, error) {
	b := &Backend{db: pool, close: pool.Close}
	if err := b.Migrate(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// NewWithQuerier builds a backend on any Querier without touching the schema.
func NewWithQuerier(q Querier) *Backend {
	return &Backend{db: q}
}

// Migrate creates the documents table when missing.
func (b *Backend) Migrate(ctx context.Context) error {
	if _, err := b.db.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("storage/postgres: migrate: %w", err)
	}
	return nil
}

// Read fetches the document payload. A missing row or table reads as absent.
func (b *Backend) Read(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := b.db.QueryRow(ctx, selectDocument, name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
		return nil, storage.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("storage/postgres: select %s: %w", name, err)
	}
	return payload, nil
}

// Write upserts the document.
func (b *Backend) Write(ctx context.Context, name string, payload []byte) error {
	if _, err := b.db.Exec(ctx, upsertDocument, name, payload); err != nil {
		return fmt.Errorf("storage/postgres: upsert %s: %w", name, err)
	}
	return nil
}

// Close closes the pool when the backend owns one.
func (b *Backend) Close() error {
	if b.close != nil {
		b.close()
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}
