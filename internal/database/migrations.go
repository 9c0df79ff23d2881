package database

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// migrationsSQL contains all database migrations, applied in order by
// version number. Each migration must be idempotent.
var migrationsSQL = map[int]string{
	1: migrationV1YearTables,
}

// migrationV1YearTables creates the year-table schema.
//
// Design:
//
//  1. PACKED RECORDS
//     - lunisolar_years stores one row per (variant, gregorian_year)
//     - info holds the packed month-length/leap-month word, the same
//     format the engine embeds; the database adds nothing on top
//
//  2. EPOCH PER VARIANT
//     - every New Year's Day is derivable from the first one by
//     summing year lengths, so only the anchor date is stored
//     - variant_epochs keys the anchor: first covered year and the
//     civil date of its New Year's Day
const migrationV1YearTables = `
CREATE TABLE IF NOT EXISTS lunisolar_years (
    variant        TEXT    NOT NULL,
    gregorian_year INTEGER NOT NULL,
    info           INTEGER NOT NULL,
    PRIMARY KEY (variant, gregorian_year)
);

CREATE TABLE IF NOT EXISTS variant_epochs (
    variant    TEXT PRIMARY KEY,
    first_year INTEGER NOT NULL,
    new_year   TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// Migrate applies all pending migrations and returns the number applied.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	// The migrations table must exist before we can read versions.
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
		    version    INTEGER PRIMARY KEY,
		    applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`); err != nil {
		return 0, fmt.Errorf("create migrations table: %w", err)
	}

	applied := map[int]bool{}
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return 0, fmt.Errorf("read applied migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return 0, fmt.Errorf("scan migration version: %w", err)
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate migration versions: %w", err)
	}

	versions := make([]int, 0, len(migrationsSQL))
	for v := range migrationsSQL {
		versions = append(versions, v)
	}
	sort.Ints(versions)

	count := 0
	for _, v := range versions {
		if applied[v] {
			continue
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return count, fmt.Errorf("begin migration %d: %w", v, err)
		}
		if _, err := tx.ExecContext(ctx, migrationsSQL[v]); err != nil {
			tx.Rollback()
			return count, fmt.Errorf("apply migration %d: %w", v, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version) VALUES (?)`, v); err != nil {
			tx.Rollback()
			return count, fmt.Errorf("record migration %d: %w", v, err)
		}
		if err := tx.Commit(); err != nil {
			return count, fmt.Errorf("commit migration %d: %w", v, err)
		}
		db.logger.Info("applied migration", slog.Int("version", v))
		count++
	}
	return count, nil
}
