package calendar

import (
	"fmt"
	"time"
)

// Engine couples a lunisolar month table with one calendar variant. It
// implements System and the civil-date transform in both directions.
// Engines are immutable after construction and safe for unsynchronized
// shared use.
type Engine struct {
	variant Variant
	table   *yearTable
}

// NewEngine returns an engine for the variant backed by the embedded
// reference table (1900-2100).
func NewEngine(variant Variant) *Engine {
	return &Engine{variant: variant, table: referenceTable}
}

// NewEngineWithTable returns an engine backed by a caller-supplied table
// of packed year records starting at firstYear, whose first New Year's
// Day is the given civil date. Records are checked for structural sanity.
func NewEngineWithTable(variant Variant, firstYear int, newYear time.Time, info []uint32) (*Engine, error) {
	packed := make([]yearInfo, len(info))
	for i, v := range info {
		packed[i] = yearInfo(v)
	}
	table := newYearTable(firstYear, newYear, packed)
	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("invalid year table: %w", err)
	}
	return &Engine{variant: variant, table: table}, nil
}

// Variant returns the calendar variant this engine produces.
func (e *Engine) Variant() Variant {
	return e.variant
}

// Bounds returns the first and last related Gregorian years covered.
func (e *Engine) Bounds() (first, last int) {
	return e.table.firstYear, e.table.lastYear()
}

// gregorianYear maps (era, yearOfEra) to the related Gregorian year.
// The era bound check comes first so the cycle arithmetic never runs on
// unbounded input.
func (e *Engine) gregorianYear(era Era, yearOfEra int) (int, bool) {
	if yearOfEra < 1 || yearOfEra > yearsPerCycle {
		return 0, false
	}
	minEra := ForGregorian(e.table.firstYear).Cycle()
	maxEra := ForGregorian(e.table.lastYear()).Cycle()
	if int(era) < minEra || int(era) > maxEra {
		return 0, false
	}
	g := ForCyclePosition(int(era), yearOfEra).RelatedGregorianYear()
	if !e.table.covers(g) {
		return 0, false
	}
	return g, true
}

// IsValid implements System. It is total: any integer input yields a
// plain true or false.
func (e *Engine) IsValid(era Era, yearOfEra, monthOrdinal, dayOfMonth int) bool {
	g, ok := e.gregorianYear(era, yearOfEra)
	if !ok {
		return false
	}
	yi := e.table.infoFor(g)
	if monthOrdinal < 1 || monthOrdinal > yi.monthCount() {
		return false
	}
	return dayOfMonth >= 1 && dayOfMonth <= yi.lengthOfMonth(monthOrdinal)
}

// LengthOfMonth implements System.
func (e *Engine) LengthOfMonth(era Era, yearOfEra, monthOrdinal int) (int, error) {
	g, ok := e.gregorianYear(era, yearOfEra)
	if !ok {
		return 0, &InvalidDateError{Era: era, Year: yearOfEra, Month: monthOrdinal}
	}
	yi := e.table.infoFor(g)
	if monthOrdinal < 1 || monthOrdinal > yi.monthCount() {
		return 0, &InvalidDateError{Era: era, Year: yearOfEra, Month: monthOrdinal}
	}
	return yi.lengthOfMonth(monthOrdinal), nil
}

// LengthOfYear implements System.
func (e *Engine) LengthOfYear(era Era, yearOfEra int) (int, error) {
	g, ok := e.gregorianYear(era, yearOfEra)
	if !ok {
		return 0, &InvalidDateError{Era: era, Year: yearOfEra}
	}
	return e.table.infoFor(g).lengthOfYear(), nil
}

// MonthsInYear returns the number of month ordinals (12 or 13) in the
// given year.
func (e *Engine) MonthsInYear(era Era, yearOfEra int) (int, error) {
	g, ok := e.gregorianYear(era, yearOfEra)
	if !ok {
		return 0, &InvalidDateError{Era: era, Year: yearOfEra}
	}
	return e.table.infoFor(g).monthCount(), nil
}

// LeapMonth returns the month number the intercalary month follows, or
// 0 when the year has none.
func (e *Engine) LeapMonth(era Era, yearOfEra int) (int, error) {
	g, ok := e.gregorianYear(era, yearOfEra)
	if !ok {
		return 0, &InvalidDateError{Era: era, Year: yearOfEra}
	}
	return e.table.infoFor(g).leapMonth(), nil
}

// MonthOrdinal returns the 1-based ordinal position of the date's month
// within its year.
func (e *Engine) MonthOrdinal(d Date) (int, error) {
	leapMonth, err := e.LeapMonth(d.Era(), d.YearOfEra())
	if err != nil {
		return 0, err
	}
	ordinal, ok := ordinalOf(leapMonth, d.Month.Number, d.Month.Leap)
	if !ok {
		return 0, &InvalidDateError{Era: d.Era(), Year: d.YearOfEra(), Month: d.Month.Number}
	}
	return ordinal, nil
}

// NewYear returns New Year's Day (as a civil UTC date) of the lunisolar
// year whose related Gregorian year is given.
func (e *Engine) NewYear(gregorianYear int) (time.Time, bool) {
	if !e.table.covers(gregorianYear) {
		return time.Time{}, false
	}
	return civilFromEpochDays(e.table.newYearDay(gregorianYear)), true
}

// FromGregorian transforms a civil date into the engine's calendar. Only
// the year, month and day of the argument are considered, interpreted in
// its own zone.
func (e *Engine) FromGregorian(civil time.Time) (*Date, error) {
	day := epochDays(civil)
	g, ok := e.table.yearForDay(day)
	if !ok {
		return nil, fmt.Errorf("civil date %s outside covered years %d-%d",
			civil.Format("2006-01-02"), e.table.firstYear, e.table.lastYear())
	}
	yi := e.table.infoFor(g)
	rel := day - e.table.newYearDay(g)
	ordinal := 1
	for rel >= int64(yi.lengthOfMonth(ordinal)) {
		rel -= int64(yi.lengthOfMonth(ordinal))
		ordinal++
	}
	number, leap := monthAt(yi.leapMonth(), ordinal)
	return &Date{
		Variant: e.variant,
		Year:    ForGregorian(g),
		Month:   Month{Number: number, Leap: leap},
		Day:     int(rel) + 1,
	}, nil
}

// ToGregorian transforms a lunisolar date back into a civil UTC date.
// Fails with *InvalidDateError when the date does not exist.
func (e *Engine) ToGregorian(d Date) (time.Time, error) {
	g := d.Year.RelatedGregorianYear()
	if !e.table.covers(g) {
		return time.Time{}, &InvalidDateError{Era: d.Era(), Year: d.YearOfEra()}
	}
	yi := e.table.infoFor(g)
	ordinal, ok := ordinalOf(yi.leapMonth(), d.Month.Number, d.Month.Leap)
	if !ok || d.Day < 1 || d.Day > yi.lengthOfMonth(ordinal) {
		return time.Time{}, &InvalidDateError{
			Era: d.Era(), Year: d.YearOfEra(), Month: ordinal, Day: d.Day,
		}
	}
	day := e.table.newYearDay(g)
	for i := 1; i < ordinal; i++ {
		day += int64(yi.lengthOfMonth(i))
	}
	return civilFromEpochDays(day + int64(d.Day-1)), nil
}
