package calendar

import "fmt"

// Leniency controls how much a merger or parser may guess when input is
// missing or ambiguous.
type Leniency int

const (
	// Strict accepts only fully specified, valid input.
	Strict Leniency = iota
	// Smart fills conventional defaults (day 1, month 1) but rejects
	// anything invalid after defaulting.
	Smart
	// Lax additionally normalizes overflowing fields and falls back to
	// the system timezone when none is supplied.
	Lax
)

func (l Leniency) String() string {
	switch l {
	case Strict:
		return "strict"
	case Smart:
		return "smart"
	case Lax:
		return "lax"
	default:
		return fmt.Sprintf("leniency(%d)", int(l))
	}
}

// ParseLeniency converts a string to a Leniency. The empty string maps
// to Smart, the conventional default.
func ParseLeniency(s string) (Leniency, error) {
	switch s {
	case "":
		return Smart, nil
	case "strict":
		return Strict, nil
	case "smart":
		return Smart, nil
	case "lax":
		return Lax, nil
	}
	return Smart, fmt.Errorf("unknown leniency: %q", s)
}

// Attributes is the read-only configuration a caller passes into date
// construction. The zero value means: no explicit timezone, Strict
// leniency, calendar-default start of day.
type Attributes struct {
	// TimezoneID is an explicit IANA zone override. Empty means
	// unset; under Strict leniency an unset zone aborts clock-based
	// construction.
	TimezoneID string

	// Leniency selects the fallback permissiveness.
	Leniency Leniency

	// StartOfDay overrides the day-boundary policy. Nil means the
	// calendar's default (civil midnight).
	StartOfDay StartOfDay
}
