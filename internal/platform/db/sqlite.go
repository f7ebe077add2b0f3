package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ferdiebergado/modelstore/internal/config"
	_ "modernc.org/sqlite"
)

// NewSQLiteDB opens the database file, creating it if absent, and validates the connection.
func NewSQLiteDB(signalCtx context.Context, cfg *config.Store) (*sql.DB, error) {
	slog.Info("Opening the database...")

	dbPath := filepath.Clean(cfg.Path)
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbPath, err)
	}

	// A single connection serializes statements; SQLite allows only one writer.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(signalCtx, cfg.PingTimeout.Duration)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("connect to database %s: %w", dbPath, err)
	}

	slog.Info("Database opened.", "path", dbPath)

	return conn, nil
}
