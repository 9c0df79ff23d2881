// Package calendar implements the East-Asian lunisolar calendar engine:
// sexagenary cyclic years, per-variant month and year lengths, and
// construction of calendar dates from clocks or parsed field sets.
package calendar

// cycleEpochOffset converts between a Gregorian year and the count of
// cyclic years elapsed since the traditional epoch (2637 BC, the year
// the sexagenary cycle is conventionally said to have been introduced).
const cycleEpochOffset = 2637

// yearsPerCycle is the length of one sexagenary cycle.
const yearsPerCycle = 60

// CyclicYear represents an East-Asian year as the number of years elapsed
// since the traditional epoch. It is an immutable value; the mapping to
// and from the related Gregorian year (the Gregorian year containing that
// year's New Year's Day) is a pure bijection with no bounds of its own.
type CyclicYear struct {
	elapsed int
}

// ForGregorian returns the cyclic year whose New Year's Day falls in the
// given Gregorian year.
func ForGregorian(relatedGregorianYear int) CyclicYear {
	return CyclicYear{elapsed: relatedGregorianYear + cycleEpochOffset}
}

// ForCyclePosition returns the cyclic year at the given position within
// the given sexagenary cycle. yearOfCycle is 1-based (1..60).
func ForCyclePosition(cycle, yearOfCycle int) CyclicYear {
	return CyclicYear{elapsed: (cycle-1)*yearsPerCycle + yearOfCycle}
}

// Elapsed returns the count of cyclic years since the traditional epoch.
func (c CyclicYear) Elapsed() int {
	return c.elapsed
}

// RelatedGregorianYear returns the Gregorian year containing this cyclic
// year's New Year's Day. It is the inverse of ForGregorian.
func (c CyclicYear) RelatedGregorianYear() int {
	return c.elapsed - cycleEpochOffset
}

// Cycle returns the 1-based sexagenary cycle number this year belongs to.
// Cycle 78 began in Gregorian 1984.
func (c CyclicYear) Cycle() int {
	return floorDiv(c.elapsed-1, yearsPerCycle) + 1
}

// YearOfCycle returns the 1-based position (1..60) within the cycle.
func (c CyclicYear) YearOfCycle() int {
	return floorMod(c.elapsed-1, yearsPerCycle) + 1
}

// Stem returns the celestial stem index (1..10) of this year.
func (c CyclicYear) Stem() int {
	return floorMod(c.elapsed-1, 10) + 1
}

// Branch returns the terrestrial branch index (1..12) of this year.
func (c CyclicYear) Branch() int {
	return floorMod(c.elapsed-1, 12) + 1
}

// Romanized pinyin names for the ten celestial stems and twelve
// terrestrial branches. 1984 (cycle 78, year 1) is jia-zi.
var (
	stemNames = [10]string{
		"jia", "yi", "bing", "ding", "wu", "ji", "geng", "xin", "ren", "gui",
	}
	branchNames = [12]string{
		"zi", "chou", "yin", "mao", "chen", "si",
		"wu", "wei", "shen", "you", "xu", "hai",
	}
)

// Name returns the romanized stem-branch name of the year, e.g. "jia-zi"
// for 1984.
func (c CyclicYear) Name() string {
	return stemNames[c.Stem()-1] + "-" + branchNames[c.Branch()-1]
}

// floorDiv divides rounding toward negative infinity, so cycle arithmetic
// stays correct for years before the epoch.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the non-negative remainder of floorDiv.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}
