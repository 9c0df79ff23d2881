package calendar

import (
	"errors"
	"fmt"
)

// Era identifies the numbering scheme a year-of-era is relative to. For
// the East-Asian calendars in this package an era is a sexagenary cycle
// number (era 78 covers Gregorian 1984-2043), so year-of-era is the
// 1-based position within that cycle. The engine treats the era as an
// opaque discriminator beyond validity checking.
type Era int

// System is the contract every lunisolar calendar variant satisfies.
//
// IsValid is the sole total entry point: it never fails, returning false
// for any out-of-range or structurally impossible tuple, and is the
// required pre-check before trusting the two length queries with
// untrusted input. The length queries re-derive validity themselves and
// fail with *InvalidDateError rather than silently clamping. The
// asymmetry is deliberate: parsing and formatting paths probe many
// candidate tuples cheaply with IsValid (for example to discover the
// maximum day of a month), while length queries assume an established
// context and keep a simple table lookup inside.
type System interface {
	// IsValid reports whether the tuple denotes an existing day.
	// monthOrdinal indexes ordinary and intercalary months: a year with
	// a leap month at position L has 13 ordinals and ordinal L+1 is the
	// leap month.
	IsValid(era Era, yearOfEra, monthOrdinal, dayOfMonth int) bool

	// LengthOfMonth returns the number of days (29 or 30) in the given
	// month. Fails with *InvalidDateError if the era/year/month triple
	// is not independently valid.
	LengthOfMonth(era Era, yearOfEra, monthOrdinal int) (int, error)

	// LengthOfYear returns the number of days in the given year, the
	// sum of LengthOfMonth over every month present in it (353..385).
	// Fails with *InvalidDateError if era/year is invalid.
	LengthOfYear(era Era, yearOfEra int) (int, error)
}

// InvalidDateError reports a length query on a tuple that does not
// denote an existing month or year.
type InvalidDateError struct {
	Era   Era
	Year  int
	Month int // month ordinal, 0 when the query was year-level
	Day   int // 0 when the query was month- or year-level
}

func (e *InvalidDateError) Error() string {
	switch {
	case e.Day != 0:
		return fmt.Sprintf("invalid lunisolar date: era %d, year %d, month %d, day %d",
			e.Era, e.Year, e.Month, e.Day)
	case e.Month != 0:
		return fmt.Sprintf("invalid lunisolar month: era %d, year %d, month %d",
			e.Era, e.Year, e.Month)
	default:
		return fmt.Sprintf("invalid lunisolar year: era %d, year %d", e.Era, e.Year)
	}
}

// IsInvalidDate checks if an error is an invalid-date error.
func IsInvalidDate(err error) bool {
	var ie *InvalidDateError
	return errors.As(err, &ie)
}
