package calendar

import (
	"errors"
	"fmt"
)

// Entity is a partially specified field set produced by a parser. Nil
// pointer fields are absent. The year can be pinned either by an
// absolute related Gregorian year, by a cycle plus year-of-cycle pair,
// or by a bare year-of-cycle disambiguated by the related year.
type Entity struct {
	Cycle                *int
	YearOfCycle          *int
	RelatedGregorianYear *int

	// MonthOrdinal indexes ordinary and intercalary months (1..13).
	// Alternatively MonthNumber plus LeapMonth names the month the way
	// it is written.
	MonthOrdinal *int
	MonthNumber  *int
	LeapMonth    bool

	Day *int
}

// ErrIncompleteEntity is returned when the supplied fields do not
// determine a year even after defaulting.
var ErrIncompleteEntity = errors.New("incomplete field entity")

// EntityResolver is the per-variant strategy turning an entity into a
// validated date. Implementations use System.IsValid for acceptance and
// may apply leniency-specific normalization before re-validating.
type EntityResolver interface {
	Resolve(engine *Engine, entity Entity, attrs Attributes) (*Date, error)
}

// EastAsianResolver is the standard resolution strategy shared by all
// variants in this family.
type EastAsianResolver struct{}

// Resolve implements EntityResolver.
//
// Strict mode rejects any tuple failing IsValid and any missing month or
// day. Smart mode defaults a missing month or day to 1 and then
// validates. Lax mode additionally redistributes overflowing month and
// day fields forward across real month boundaries before validating the
// result.
func (EastAsianResolver) Resolve(engine *Engine, entity Entity, attrs Attributes) (*Date, error) {
	year, err := resolveYear(entity, attrs.Leniency)
	if err != nil {
		return nil, err
	}
	era := Era(year.Cycle())
	yearOfEra := year.YearOfCycle()

	ordinal, err := resolveMonthOrdinal(engine, entity, attrs.Leniency, era, yearOfEra)
	if err != nil {
		return nil, err
	}

	day := 1
	if entity.Day != nil {
		day = *entity.Day
	} else if attrs.Leniency == Strict {
		return nil, fmt.Errorf("%w: day of month not specified", ErrIncompleteEntity)
	}

	if attrs.Leniency == Lax {
		return resolveLenient(engine, year, ordinal, day)
	}

	if !engine.IsValid(era, yearOfEra, ordinal, day) {
		return nil, &InvalidDateError{Era: era, Year: yearOfEra, Month: ordinal, Day: day}
	}
	leapMonth, err := engine.LeapMonth(era, yearOfEra)
	if err != nil {
		return nil, err
	}
	number, leap := monthAt(leapMonth, ordinal)
	return &Date{
		Variant: engine.Variant(),
		Year:    year,
		Month:   Month{Number: number, Leap: leap},
		Day:     day,
	}, nil
}

// resolveYear pins the cyclic year from the entity's year fields.
func resolveYear(entity Entity, leniency Leniency) (CyclicYear, error) {
	switch {
	case entity.RelatedGregorianYear != nil:
		year := ForGregorian(*entity.RelatedGregorianYear)
		// A cycle position given alongside the related year must agree
		// with it, unless lax mode lets the related year win.
		if entity.YearOfCycle != nil && leniency != Lax {
			if year.YearOfCycle() != *entity.YearOfCycle {
				return CyclicYear{}, fmt.Errorf(
					"cyclic year %d contradicts related gregorian year %d",
					*entity.YearOfCycle, *entity.RelatedGregorianYear)
			}
		}
		if entity.Cycle != nil && leniency != Lax {
			if year.Cycle() != *entity.Cycle {
				return CyclicYear{}, fmt.Errorf(
					"cycle %d contradicts related gregorian year %d",
					*entity.Cycle, *entity.RelatedGregorianYear)
			}
		}
		return year, nil
	case entity.Cycle != nil && entity.YearOfCycle != nil:
		return ForCyclePosition(*entity.Cycle, *entity.YearOfCycle), nil
	default:
		return CyclicYear{}, fmt.Errorf(
			"%w: need a related gregorian year or a cycle with year-of-cycle",
			ErrIncompleteEntity)
	}
}

// resolveMonthOrdinal determines the month ordinal from either notation.
func resolveMonthOrdinal(engine *Engine, entity Entity, leniency Leniency, era Era, yearOfEra int) (int, error) {
	if entity.MonthOrdinal != nil {
		return *entity.MonthOrdinal, nil
	}
	if entity.MonthNumber != nil {
		leapMonth, err := engine.LeapMonth(era, yearOfEra)
		if err != nil {
			return 0, err
		}
		ordinal, ok := ordinalOf(leapMonth, *entity.MonthNumber, entity.LeapMonth)
		if !ok {
			return 0, &InvalidDateError{Era: era, Year: yearOfEra, Month: *entity.MonthNumber}
		}
		return ordinal, nil
	}
	if leniency == Strict {
		return 0, fmt.Errorf("%w: month not specified", ErrIncompleteEntity)
	}
	return 1, nil
}

// resolveLenient redistributes overflowing month and day fields forward
// across real month boundaries, then re-validates by reconstructing the
// date from its day number.
func resolveLenient(engine *Engine, year CyclicYear, ordinal, day int) (*Date, error) {
	if ordinal < 1 || day < 1 {
		return nil, &InvalidDateError{
			Era: Era(year.Cycle()), Year: year.YearOfCycle(), Month: ordinal, Day: day,
		}
	}
	g := year.RelatedGregorianYear()
	table := engine.table
	if !table.covers(g) {
		return nil, &InvalidDateError{Era: Era(year.Cycle()), Year: year.YearOfCycle()}
	}
	epochDay := table.newYearDay(g)
	slot := 1
	for months := ordinal - 1; months > 0; months-- {
		yi := table.infoFor(g)
		epochDay += int64(yi.lengthOfMonth(slot))
		slot++
		if slot > yi.monthCount() {
			slot = 1
			g++
			if !table.covers(g) {
				return nil, &InvalidDateError{Era: Era(year.Cycle()), Year: year.YearOfCycle(), Month: ordinal}
			}
		}
	}
	return engine.FromGregorian(civilFromEpochDays(epochDay + int64(day-1)))
}
