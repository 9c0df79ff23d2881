package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hanuiso/lunisolar-api/internal/calendar"
	"github.com/hanuiso/lunisolar-api/internal/config"
	"github.com/hanuiso/lunisolar-api/internal/database"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db      *database.DB
	cfg     *config.Config
	logger  *slog.Logger
	clock   calendar.Clock
	mergers map[calendar.Variant]*calendar.Merger
}

// NewHandlers creates a new Handlers instance over the given engines.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger, engines map[calendar.Variant]*calendar.Engine) *Handlers {
	mergers := make(map[calendar.Variant]*calendar.Merger, len(engines))
	for variant, engine := range engines {
		mergers[variant] = calendar.NewMerger(engine)
	}
	return &Handlers{
		db:      db,
		cfg:     cfg,
		logger:  logger,
		clock:   calendar.SystemClock{},
		mergers: mergers,
	}
}

// DateResponse is the JSON shape of a resolved lunisolar date.
type DateResponse struct {
	Variant              string `json:"variant"`
	Gregorian            string `json:"gregorian"`
	Cycle                int    `json:"cycle"`
	YearOfCycle          int    `json:"year_of_cycle"`
	CyclicName           string `json:"cyclic_name"`
	RelatedGregorianYear int    `json:"related_gregorian_year"`
	Month                int    `json:"month"`
	LeapMonth            bool   `json:"leap_month"`
	Day                  int    `json:"day"`
	MonthOrdinal         int    `json:"month_ordinal"`
	MonthLength          int    `json:"month_length"`
	MonthsInYear         int    `json:"months_in_year"`
	YearLength           int    `json:"year_length"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}
	WriteSuccess(w, map[string]string{"status": "healthy"})
}

// GetToday handles GET /api/v1/{variant}/today
//
// Query parameters: tz (IANA zone), leniency (strict|smart|lax),
// start_of_day (signed seconds relative to civil midnight).
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	merger, ok := h.variantMerger(w, r)
	if !ok {
		return
	}

	leniency, err := calendar.ParseLeniency(r.URL.Query().Get("leniency"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	attrs := calendar.Attributes{
		TimezoneID: r.URL.Query().Get("tz"),
		Leniency:   leniency,
	}
	if attrs.TimezoneID == "" {
		attrs.TimezoneID = h.cfg.DefaultTimezone
	}
	if shift := r.URL.Query().Get("start_of_day"); shift != "" {
		seconds, err := strconv.Atoi(shift)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid start_of_day offset: %q", shift))
			return
		}
		attrs.StartOfDay = calendar.ClockShift(seconds)
	}

	date, ok := merger.CreateFromClock(h.clock, attrs)
	if !ok {
		WriteBadRequest(w, "No timezone available: supply tz or use lax leniency")
		return
	}

	h.writeDate(w, merger, date)
}

// ConvertDate handles GET /api/v1/{variant}/date/{date}
func (h *Handlers) ConvertDate(w http.ResponseWriter, r *http.Request) {
	merger, ok := h.variantMerger(w, r)
	if !ok {
		return
	}

	dateStr := chi.URLParam(r, "date")
	civil, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	date, err := merger.Engine().FromGregorian(civil)
	if err != nil {
		WriteInvalidDate(w, err.Error())
		return
	}
	h.writeDate(w, merger, date)
}

// Lookup handles GET /api/v1/{variant}/lookup
//
// Query parameters: related_year, or cycle plus year; month (number)
// with optional leap=true, or ordinal; day; leniency.
func (h *Handlers) Lookup(w http.ResponseWriter, r *http.Request) {
	merger, ok := h.variantMerger(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	leniency, err := calendar.ParseLeniency(q.Get("leniency"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	entity := calendar.Entity{LeapMonth: q.Get("leap") == "true" || q.Get("leap") == "1"}
	fields := []struct {
		name string
		dst  **int
	}{
		{"cycle", &entity.Cycle},
		{"year", &entity.YearOfCycle},
		{"related_year", &entity.RelatedGregorianYear},
		{"month", &entity.MonthNumber},
		{"ordinal", &entity.MonthOrdinal},
		{"day", &entity.Day},
	}
	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q", f.name, raw))
			return
		}
		*f.dst = &v
	}

	date, err := merger.CreateFromEntity(entity, calendar.Attributes{Leniency: leniency})
	if err != nil {
		if calendar.IsInvalidDate(err) {
			WriteInvalidDate(w, err.Error())
			return
		}
		WriteBadRequest(w, err.Error())
		return
	}
	h.writeDate(w, merger, date)
}

// GetYearInfo handles GET /api/v1/{variant}/year/{cycle}/{year}
func (h *Handlers) GetYearInfo(w http.ResponseWriter, r *http.Request) {
	merger, ok := h.variantMerger(w, r)
	if !ok {
		return
	}
	cycle, err1 := strconv.Atoi(chi.URLParam(r, "cycle"))
	yearOfCycle, err2 := strconv.Atoi(chi.URLParam(r, "year"))
	if err1 != nil || err2 != nil {
		WriteBadRequest(w, "Cycle and year must be integers")
		return
	}

	engine := merger.Engine()
	era := calendar.Era(cycle)

	yearLength, err := engine.LengthOfYear(era, yearOfCycle)
	if err != nil {
		WriteNotFound(w, err.Error())
		return
	}
	monthCount, err := engine.MonthsInYear(era, yearOfCycle)
	if err != nil {
		WriteNotFound(w, err.Error())
		return
	}
	leapMonth, err := engine.LeapMonth(era, yearOfCycle)
	if err != nil {
		WriteNotFound(w, err.Error())
		return
	}

	type monthInfo struct {
		Ordinal int  `json:"ordinal"`
		Month   int  `json:"month"`
		Leap    bool `json:"leap"`
		Days    int  `json:"days"`
	}
	months := make([]monthInfo, 0, monthCount)
	for ordinal := 1; ordinal <= monthCount; ordinal++ {
		days, err := engine.LengthOfMonth(era, yearOfCycle, ordinal)
		if err != nil {
			h.logger.Error("month length for valid year", slog.Any("error", err))
			WriteInternalError(w, "Failed to compute month lengths")
			return
		}
		number, leap := ordinal, false
		if leapMonth != 0 {
			if ordinal == leapMonth+1 {
				number, leap = leapMonth, true
			} else if ordinal > leapMonth+1 {
				number = ordinal - 1
			}
		}
		months = append(months, monthInfo{Ordinal: ordinal, Month: number, Leap: leap, Days: days})
	}

	cyclicYear := calendar.ForCyclePosition(cycle, yearOfCycle)
	newYear, _ := engine.NewYear(cyclicYear.RelatedGregorianYear())

	WriteSuccess(w, map[string]interface{}{
		"variant":                engine.Variant(),
		"cycle":                  cycle,
		"year_of_cycle":          yearOfCycle,
		"cyclic_name":            cyclicYear.Name(),
		"related_gregorian_year": cyclicYear.RelatedGregorianYear(),
		"new_year":               newYear.Format("2006-01-02"),
		"year_length":            yearLength,
		"months_in_year":         monthCount,
		"leap_month":             leapMonth,
		"months":                 months,
	})
}

// Reimport handles POST /api/v1/admin/reimport: reseeds every variant's
// stored year table from the embedded reference data.
func (h *Handlers) Reimport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	firstYear, newYear, info := calendar.ReferenceData()

	seeded := map[string]int{}
	for _, variant := range calendar.Variants() {
		table := &database.YearTable{
			Variant:   string(variant),
			FirstYear: firstYear,
			NewYear:   newYear,
			Info:      info,
		}
		if err := h.db.SeedYearTable(ctx, table); err != nil {
			h.logger.Error("reseed failed",
				slog.String("variant", string(variant)),
				slog.Any("error", err))
			WriteInternalError(w, "Failed to reseed year tables")
			return
		}
		seeded[string(variant)] = len(info)
	}
	WriteSuccess(w, map[string]interface{}{"seeded_years": seeded})
}

// variantMerger resolves the {variant} URL segment. On failure it writes
// the error response and returns false.
func (h *Handlers) variantMerger(w http.ResponseWriter, r *http.Request) (*calendar.Merger, bool) {
	variant, err := calendar.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		WriteNotFound(w, err.Error())
		return nil, false
	}
	merger, ok := h.mergers[variant]
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Variant %q is not enabled", variant))
		return nil, false
	}
	return merger, true
}

// writeDate renders a Date with its derived lengths.
func (h *Handlers) writeDate(w http.ResponseWriter, merger *calendar.Merger, date *calendar.Date) {
	engine := merger.Engine()
	date = merger.Preformat(date)

	civil, err := engine.ToGregorian(*date)
	if err != nil {
		h.logger.Error("civil transform of produced date", slog.Any("error", err))
		WriteInternalError(w, "Failed to transform date")
		return
	}
	ordinal, err := engine.MonthOrdinal(*date)
	if err != nil {
		h.logger.Error("month ordinal of produced date", slog.Any("error", err))
		WriteInternalError(w, "Failed to describe date")
		return
	}
	monthLength, err := engine.LengthOfMonth(date.Era(), date.YearOfEra(), ordinal)
	if err != nil {
		h.logger.Error("month length of produced date", slog.Any("error", err))
		WriteInternalError(w, "Failed to describe date")
		return
	}
	yearLength, err := engine.LengthOfYear(date.Era(), date.YearOfEra())
	if err != nil {
		h.logger.Error("year length of produced date", slog.Any("error", err))
		WriteInternalError(w, "Failed to describe date")
		return
	}
	monthCount, err := engine.MonthsInYear(date.Era(), date.YearOfEra())
	if err != nil {
		h.logger.Error("month count of produced date", slog.Any("error", err))
		WriteInternalError(w, "Failed to describe date")
		return
	}

	WriteSuccess(w, DateResponse{
		Variant:              string(date.Variant),
		Gregorian:            civil.Format("2006-01-02"),
		Cycle:                date.Year.Cycle(),
		YearOfCycle:          date.Year.YearOfCycle(),
		CyclicName:           date.Year.Name(),
		RelatedGregorianYear: date.Year.RelatedGregorianYear(),
		Month:                date.Month.Number,
		LeapMonth:            date.Month.Leap,
		Day:                  date.Day,
		MonthOrdinal:         ordinal,
		MonthLength:          monthLength,
		MonthsInYear:         monthCount,
		YearLength:           yearLength,
	})
}
