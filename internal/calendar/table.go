package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// Packed year format
// =============================================================================

// Each year of a lunisolar table is packed into one uint32:
//
//	bits 0..3   leap month number (1..12), 0 if the year has none
//	bits 4..15  30-day flags for ordinary months 12 down to 1, so
//	            bit 15 is month 1 and bit 4 is month 12
//	bit  16     set if the leap month has 30 days
//
// Example: 0x04bd8 (Gregorian 1900) has a 29-day leap month after the
// 8th month and a year length of 384 days.
type yearInfo uint32

// leapMonth returns the month number the intercalary month follows,
// or 0 if the year has no leap month.
func (y yearInfo) leapMonth() int {
	return int(y & 0xf)
}

// monthCount returns the number of months in the year: 12, or 13 when
// a leap month is present.
func (y yearInfo) monthCount() int {
	if y.leapMonth() != 0 {
		return 13
	}
	return 12
}

// lengthOfMonth returns 29 or 30 for the month at the given 1-based
// ordinal position within the year.
func (y yearInfo) lengthOfMonth(ordinal int) int {
	m, leap := monthAt(y.leapMonth(), ordinal)
	if leap {
		if y&0x10000 != 0 {
			return 30
		}
		return 29
	}
	if y&(0x10000>>m) != 0 {
		return 30
	}
	return 29
}

// lengthOfYear returns the sum of all month lengths.
func (y yearInfo) lengthOfYear() int {
	days := 0
	for ordinal := 1; ordinal <= y.monthCount(); ordinal++ {
		days += y.lengthOfMonth(ordinal)
	}
	return days
}

// monthAt maps a 1-based ordinal position to the month number it carries
// and whether it is the intercalary month. For a year with a leap month
// after month L, the ordinals run 1..L, leap L, L+1..12.
func monthAt(leapMonth, ordinal int) (number int, leap bool) {
	if leapMonth == 0 || ordinal <= leapMonth {
		return ordinal, false
	}
	if ordinal == leapMonth+1 {
		return leapMonth, true
	}
	return ordinal - 1, false
}

// ordinalOf is the inverse of monthAt. The second return is false when
// the month does not occur in a year with the given leap month.
func ordinalOf(leapMonth, number int, leap bool) (int, bool) {
	if number < 1 || number > 12 {
		return 0, false
	}
	if leap {
		if number != leapMonth {
			return 0, false
		}
		return number + 1, true
	}
	if leapMonth != 0 && number > leapMonth {
		return number + 1, true
	}
	return number, true
}

// =============================================================================
// Year table
// =============================================================================

// yearTable holds the packed records for a contiguous run of years,
// indexed by the related Gregorian year, together with the epoch day
// (as days since the Unix epoch) of the first year's New Year's Day.
// Day offsets of every New Year are precomputed at construction so date
// conversion is a binary-search-free scan over small slices.
type yearTable struct {
	firstYear int
	epochDay  int64 // New Year's Day of firstYear, in days since 1970-01-01
	info      []yearInfo
	offsets   []int64 // offsets[i] = days from epochDay to New Year of firstYear+i; len = len(info)+1
}

// newYearTable builds a table from packed records. newYear is the civil
// date (UTC) of the first year's New Year's Day.
func newYearTable(firstYear int, newYear time.Time, info []yearInfo) *yearTable {
	t := &yearTable{
		firstYear: firstYear,
		epochDay:  epochDays(newYear),
		info:      info,
		offsets:   make([]int64, len(info)+1),
	}
	var days int64
	for i, yi := range info {
		t.offsets[i] = days
		days += int64(yi.lengthOfYear())
	}
	t.offsets[len(info)] = days
	return t
}

// covers reports whether the table has a record for the given related
// Gregorian year.
func (t *yearTable) covers(gregorianYear int) bool {
	return gregorianYear >= t.firstYear && gregorianYear < t.firstYear+len(t.info)
}

// lastYear returns the last related Gregorian year the table covers.
func (t *yearTable) lastYear() int {
	return t.firstYear + len(t.info) - 1
}

// infoFor returns the packed record for a covered year.
func (t *yearTable) infoFor(gregorianYear int) yearInfo {
	return t.info[gregorianYear-t.firstYear]
}

// newYearDay returns the epoch day of the given year's New Year's Day.
func (t *yearTable) newYearDay(gregorianYear int) int64 {
	return t.epochDay + t.offsets[gregorianYear-t.firstYear]
}

// yearForDay locates the year containing the given epoch day. The second
// return is false when the day falls outside the covered range.
func (t *yearTable) yearForDay(day int64) (int, bool) {
	rel := day - t.epochDay
	if rel < 0 || rel >= t.offsets[len(t.info)] {
		return 0, false
	}
	// Lunisolar years are 353..385 days, so the year index is within one
	// of rel/385 and a short forward scan finds it.
	i := int(rel / 385)
	for i+1 < len(t.offsets) && t.offsets[i+1] <= rel {
		i++
	}
	return t.firstYear + i, true
}

// validate checks structural sanity of the packed records.
func (t *yearTable) validate() error {
	for i, yi := range t.info {
		if lm := yi.leapMonth(); lm > 12 {
			return fmt.Errorf("year %d: leap month %d out of range", t.firstYear+i, lm)
		}
		if n := yi.lengthOfYear(); n < 353 || n > 385 {
			return fmt.Errorf("year %d: year length %d out of range", t.firstYear+i, n)
		}
	}
	return nil
}

// =============================================================================
// Epoch day helpers
// =============================================================================

const secondsPerDay = 86400

// epochDays converts a civil timestamp to whole days since 1970-01-01,
// ignoring the time-of-day part. The timestamp's own zone determines the
// civil date.
func epochDays(t time.Time) int64 {
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return floorDiv64(u, secondsPerDay)
}

// civilFromEpochDays is the inverse of epochDays, at UTC midnight.
func civilFromEpochDays(day int64) time.Time {
	return time.Unix(day*secondsPerDay, 0).UTC()
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
