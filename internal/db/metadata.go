//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxshowarth/retailgen/internal/logging"
	"github.com/maxshowarth/retailgen/pkg/version"
)

const metadataTable = "retailgen_metadata"

const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS retailgen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// RunMetadata describes one generation run, recorded alongside the data
// so that a loaded database carries its own provenance.
type RunMetadata struct {
	Seed        int64
	Scale       string
	WindowStart string
	WindowEnd   string
}

// SaveRunMetadata writes run metadata to the database.
func SaveRunMetadata(ctx context.Context, pool *pgxpool.Pool, run RunMetadata) error {
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"seed":         fmt.Sprintf("%d", run.Seed),
		"scale":        run.Scale,
		"window_start": run.WindowStart,
		"window_end":   run.WindowEnd,
		"version":      version.Short(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO retailgen_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Int64("seed", run.Seed).
		Str("scale", run.Scale).
		Msg("Saved run metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM retailgen_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}

// MetadataExists checks if the metadata table exists.
func MetadataExists(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_name = $1
        )
    `, metadataTable).Scan(&exists)
	return exists, err
}
