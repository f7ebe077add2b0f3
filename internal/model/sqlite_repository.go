package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

var _ Repository = &SQLiteRepository{}

var ErrQueryFailed = errors.New("model repository: query failed")

// SQLiteRepository persists models to an embedded database file.
type SQLiteRepository struct {
	db *sql.DB
}

const QueryModelSchema = `
CREATE TABLE IF NOT EXISTS models (
	id TEXT PRIMARY KEY,
	name TEXT,
	version TEXT,
	data BLOB,
	create_time INTEGER
)
`

// Migrate creates the models table if it does not exist yet. Safe to run on
// every startup.
func (r *SQLiteRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, QueryModelSchema); err != nil {
		return fmt.Errorf("model repository: create schema: %w", err)
	}
	return nil
}

const QueryModelInsert = `
INSERT INTO models (id, name, version, data, create_time)
VALUES (?, ?, ?, ?, ?)
`

func (r *SQLiteRepository) Insert(ctx context.Context, m Model) error {
	if _, err := r.db.ExecContext(ctx, QueryModelInsert, m.ID, m.Name, m.Version, m.Data, m.CreateTime); err != nil {
		return fmt.Errorf("%w: insert model %s: %v", ErrQueryFailed, m.ID, err)
	}
	return nil
}

const QueryModelDelete = "DELETE FROM models WHERE id = ?"

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, QueryModelDelete, id)
	if err != nil {
		return fmt.Errorf("%w: delete model %s: %v", ErrQueryFailed, id, err)
	}

	// Zero rows affected means the id was absent, which is a silent no-op.
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for model %s: %v", ErrQueryFailed, id, err)
	}
	slog.Info("Models deleted.", "rows", rows)

	return nil
}

const QueryModelList = "SELECT id, name, version, data, create_time FROM models"

func (r *SQLiteRepository) List(ctx context.Context) ([]Model, error) {
	rows, err := r.db.QueryContext(ctx, QueryModelList)
	if err != nil {
		return nil, fmt.Errorf("%w: list models: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var models []Model
	for rows.Next() {
		var m Model
		if err := rows.Scan(&m.ID, &m.Name, &m.Version, &m.Data, &m.CreateTime); err != nil {
			return nil, fmt.Errorf("model repository: scan row: %w", err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("model repository: iterate over model rows: %w", err)
	}

	return models, nil
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db}
}
