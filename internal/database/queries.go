package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested record doesn't exist.
var ErrNotFound = errors.New("not found")

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// dateFormat is the civil date layout stored in variant_epochs.new_year.
const dateFormat = "2006-01-02"

// YearTable is a variant's complete table as stored: the first covered
// year, the civil date of its New Year's Day, and one packed word per
// consecutive year.
type YearTable struct {
	Variant   string
	FirstYear int
	NewYear   time.Time
	Info      []uint32
}

// GetYearTable loads a variant's table. Returns ErrNotFound when the
// variant has never been seeded.
func (db *DB) GetYearTable(ctx context.Context, variant string) (*YearTable, error) {
	t := &YearTable{Variant: variant}

	var newYear string
	err := db.QueryRowContext(ctx,
		`SELECT first_year, new_year FROM variant_epochs WHERE variant = ?`,
		variant).Scan(&t.FirstYear, &newYear)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("epoch for variant %q: %w", variant, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get epoch: %w", err)
	}
	t.NewYear, err = time.Parse(dateFormat, newYear)
	if err != nil {
		return nil, fmt.Errorf("parse epoch date %q: %w", newYear, err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT gregorian_year, info FROM lunisolar_years
		 WHERE variant = ? ORDER BY gregorian_year`, variant)
	if err != nil {
		return nil, fmt.Errorf("list year records: %w", err)
	}
	defer rows.Close()

	next := t.FirstYear
	for rows.Next() {
		var year int
		var info int64
		if err := rows.Scan(&year, &info); err != nil {
			return nil, fmt.Errorf("scan year record: %w", err)
		}
		if year != next {
			return nil, fmt.Errorf("year table for %q not contiguous: expected %d, got %d",
				variant, next, year)
		}
		t.Info = append(t.Info, uint32(info))
		next++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate year records: %w", err)
	}
	if len(t.Info) == 0 {
		return nil, fmt.Errorf("year records for variant %q: %w", variant, ErrNotFound)
	}
	return t, nil
}

// CountYears returns the number of seeded year records for a variant.
func (db *DB) CountYears(ctx context.Context, variant string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM lunisolar_years WHERE variant = ?`, variant).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count year records: %w", err)
	}
	return n, nil
}

// SeedYearTable replaces a variant's stored table in one transaction.
func (db *DB) SeedYearTable(ctx context.Context, t *YearTable) error {
	if len(t.Info) == 0 {
		return errors.New("seed: empty year table")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM lunisolar_years WHERE variant = ?`, t.Variant); err != nil {
		return fmt.Errorf("clear year records: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO variant_epochs (variant, first_year, new_year)
		 VALUES (?, ?, ?)`,
		t.Variant, t.FirstYear, t.NewYear.Format(dateFormat)); err != nil {
		return fmt.Errorf("store epoch: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lunisolar_years (variant, gregorian_year, info) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, info := range t.Info {
		if _, err := stmt.ExecContext(ctx, t.Variant, t.FirstYear+i, int64(info)); err != nil {
			return fmt.Errorf("insert year %d: %w", t.FirstYear+i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
