package calendar

import "fmt"

// Month is a lunisolar month: the month number (1..12) plus a flag
// marking the intercalary month that repeats the same number.
type Month struct {
	Number int
	Leap   bool
}

// String renders the month, prefixing the intercalary month with an
// asterisk ("*7" is the leap month following month 7).
func (m Month) String() string {
	if m.Leap {
		return fmt.Sprintf("*%d", m.Number)
	}
	return fmt.Sprintf("%d", m.Number)
}

// Date is a concrete date in one East-Asian calendar variant. It is an
// immutable value; validity is established by the engine that produced
// it.
type Date struct {
	Variant Variant
	Year    CyclicYear
	Month   Month
	Day     int
}

// Era returns the sexagenary cycle number acting as the date's era.
func (d Date) Era() Era {
	return Era(d.Year.Cycle())
}

// YearOfEra returns the year's 1-based position within its cycle.
func (d Date) YearOfEra() int {
	return d.Year.YearOfCycle()
}

func (d Date) String() string {
	return fmt.Sprintf("%s[%s(%d)-%s-%d]",
		d.Variant, d.Year.Name(), d.Year.RelatedGregorianYear(), d.Month, d.Day)
}
