package calendar

import "strings"

// FormatStyle selects one of the four standard date pattern widths.
type FormatStyle int

const (
	StyleFull FormatStyle = iota
	StyleLong
	StyleMedium
	StyleShort
)

// Date patterns per locale, indexed by FormatStyle. Pattern letters
// follow CLDR conventions for the chinese calendar: r = related
// Gregorian year, U = cyclic year name, M = month, d = day, E = weekday.
// All East-Asian variants in this family share date-pattern conventions
// with the reference (Chinese) calendar, so there is one table.
var formatPatterns = map[string][4]string{
	"root": {
		"r(U) MMMM d, EEEE",
		"r(U) MMMM d",
		"r MMMM d",
		"r-MM-dd",
	},
	"zh": {
		"rU年MMMMd日EEEE",
		"rU年MMMMd日",
		"r年MMMMd日",
		"r/M/d",
	},
	"ko": {
		"r(U)년 MMMM d일 EEEE",
		"r(U)년 MMMM d일",
		"r년 MMMM d일",
		"r. M. d.",
	},
	"vi": {
		"EEEE, d MMMM, r(U)",
		"d MMMM, r(U)",
		"d MMMM, r",
		"d/M/r",
	},
	"ja": {
		"r(U)年MMMMd日EEEE",
		"r(U)年MMMMd日",
		"r年MMMMd日",
		"r/M/d",
	},
}

// lookupPattern returns the date pattern for a locale and style. The
// locale is reduced to its language subtag; unknown languages fall back
// to the root patterns, unknown styles to medium.
func lookupPattern(style FormatStyle, locale string) string {
	lang := locale
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		lang = locale[:i]
	}
	patterns, ok := formatPatterns[lang]
	if !ok {
		patterns = formatPatterns["root"]
	}
	if style < StyleFull || style > StyleShort {
		style = StyleMedium
	}
	return patterns[style]
}
