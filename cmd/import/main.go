// Command import seeds the SQLite database with the embedded reference
// year tables for every calendar variant.
//
// Usage:
//
//	go run ./cmd/import -db data/lunisolar.db
//
// The import replaces any previously stored tables. Divergent per-country
// tables can afterwards be loaded on top by external tooling writing the
// same schema.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hanuiso/lunisolar-api/internal/calendar"
	"github.com/hanuiso/lunisolar-api/internal/database"
)

func main() {
	dbPath := flag.String("db", "data/lunisolar.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	if err := run(*dbPath, log); err != nil {
		log.Error("import failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(dbPath string, log *slog.Logger) error {
	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	firstYear, newYear, info := calendar.ReferenceData()
	for _, variant := range calendar.Variants() {
		table := &database.YearTable{
			Variant:   string(variant),
			FirstYear: firstYear,
			NewYear:   newYear,
			Info:      info,
		}
		if err := db.SeedYearTable(ctx, table); err != nil {
			return fmt.Errorf("seed %s: %w", variant, err)
		}
		log.Info("seeded year table",
			slog.String("variant", string(variant)),
			slog.Int("first_year", firstYear),
			slog.Int("years", len(info)),
		)
	}
	return nil
}
