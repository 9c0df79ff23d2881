package database

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := Open(DefaultConfig(":memory:"), log)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func testTable(variant string) *YearTable {
	return &YearTable{
		Variant:   variant,
		FirstYear: 1984,
		NewYear:   time.Date(1984, time.February, 2, 0, 0, 0, 0, time.UTC),
		Info:      []uint32{0x1aaa6, 0x0a4b0, 0x0a574},
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	// A second run must find nothing to apply.
	applied, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if applied != 0 {
		t.Errorf("second migrate applied %d migrations, want 0", applied)
	}
}

func TestSeedYearTable_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	want := testTable("chinese")
	if err := db.SeedYearTable(ctx, want); err != nil {
		t.Fatalf("SeedYearTable: %v", err)
	}

	got, err := db.GetYearTable(ctx, "chinese")
	if err != nil {
		t.Fatalf("GetYearTable: %v", err)
	}
	if got.FirstYear != want.FirstYear {
		t.Errorf("FirstYear = %d, want %d", got.FirstYear, want.FirstYear)
	}
	if !got.NewYear.Equal(want.NewYear) {
		t.Errorf("NewYear = %v, want %v", got.NewYear, want.NewYear)
	}
	if len(got.Info) != len(want.Info) {
		t.Fatalf("len(Info) = %d, want %d", len(got.Info), len(want.Info))
	}
	for i := range want.Info {
		if got.Info[i] != want.Info[i] {
			t.Errorf("Info[%d] = %#x, want %#x", i, got.Info[i], want.Info[i])
		}
	}

	n, err := db.CountYears(ctx, "chinese")
	if err != nil {
		t.Fatalf("CountYears: %v", err)
	}
	if n != len(want.Info) {
		t.Errorf("CountYears = %d, want %d", n, len(want.Info))
	}
}

func TestGetYearTable_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetYearTable(context.Background(), "dangi")
	if !IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestSeedYearTable_Replaces(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SeedYearTable(ctx, testTable("vietnamese")); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	// Reseeding with a shorter divergent table must fully replace the
	// previous rows, not append to them.
	replacement := &YearTable{
		Variant:   "vietnamese",
		FirstYear: 1985,
		NewYear:   time.Date(1985, time.February, 20, 0, 0, 0, 0, time.UTC),
		Info:      []uint32{0x0a4b0},
	}
	if err := db.SeedYearTable(ctx, replacement); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	got, err := db.GetYearTable(ctx, "vietnamese")
	if err != nil {
		t.Fatalf("GetYearTable after reseed: %v", err)
	}
	if got.FirstYear != 1985 || len(got.Info) != 1 {
		t.Errorf("got first_year %d with %d years, want 1985 with 1", got.FirstYear, len(got.Info))
	}
}

func TestSeedYearTable_RejectsEmpty(t *testing.T) {
	db := setupTestDB(t)

	err := db.SeedYearTable(context.Background(), &YearTable{Variant: "chinese"})
	if err == nil {
		t.Error("empty table accepted")
	}
}

func TestSeedYearTable_VariantsAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SeedYearTable(ctx, testTable("chinese")); err != nil {
		t.Fatalf("seed chinese: %v", err)
	}
	if _, err := db.GetYearTable(ctx, "dangi"); !IsNotFound(err) {
		t.Errorf("dangi error = %v, want not-found", err)
	}
}

func TestHealth(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health: %v", err)
	}
}
