package calendar

import "time"

// DefaultPivotYear is the pivot-year sentinel returned by mergers. The
// value 100 means two-digit year shorthand is not recognized at all:
// every parsed year number is taken literally.
const DefaultPivotYear = 100

// Merger builds calendar dates for one variant, either from a clock or
// from a partially parsed field entity. It is stateless apart from the
// engine and resolver fixed at construction and is safe for
// unsynchronized shared use.
type Merger struct {
	engine   *Engine
	resolver EntityResolver
}

// NewMerger returns a merger using the standard East-Asian entity
// resolution strategy.
func NewMerger(engine *Engine) *Merger {
	return NewMergerWithResolver(engine, EastAsianResolver{})
}

// NewMergerWithResolver returns a merger with a caller-supplied entity
// resolution strategy. This is the extension point for variants whose
// era or field defaulting rules differ from the shared behavior.
func NewMergerWithResolver(engine *Engine, resolver EntityResolver) *Merger {
	return &Merger{engine: engine, resolver: resolver}
}

// Engine returns the engine the merger produces dates with.
func (m *Merger) Engine() *Engine {
	return m.engine
}

// FormatPattern returns the textual date pattern for a style and locale.
// All variants delegate to the shared reference pattern table; the
// lookup has its own locale fallback and never fails.
func (m *Merger) FormatPattern(style FormatStyle, locale string) string {
	return lookupPattern(style, locale)
}

// CreateFromClock derives "today" in the target calendar.
//
// The timezone comes from the attributes; without an explicit zone the
// system default is used only under Lax leniency, otherwise the method
// reports no result (false) rather than guessing. The resolved
// start-of-day deviation is subtracted from the zoned timestamp before
// its date part is taken, so instants between the true day boundary and
// civil midnight land on the correct calendar day.
//
// This path never returns an error; an instant outside the covered
// table range also yields no result.
func (m *Merger) CreateFromClock(clock Clock, attrs Attributes) (*Date, bool) {
	loc, ok := m.resolveZone(attrs)
	if !ok {
		return nil, false
	}
	startOfDay := attrs.StartOfDay
	if startOfDay == nil {
		startOfDay = m.DefaultStartOfDay()
	}
	now := clock.Now().In(loc)
	deviation := startOfDay.Deviation(now, loc)
	shifted := now.Add(-time.Duration(deviation) * time.Second)
	date, err := m.engine.FromGregorian(shifted)
	if err != nil {
		return nil, false
	}
	return date, true
}

// resolveZone applies the timezone fallback rules of CreateFromClock.
func (m *Merger) resolveZone(attrs Attributes) (*time.Location, bool) {
	if attrs.TimezoneID != "" {
		loc, err := time.LoadLocation(attrs.TimezoneID)
		if err == nil {
			return loc, true
		}
		if attrs.Leniency != Lax {
			return nil, false
		}
	}
	if attrs.Leniency == Lax {
		return time.Local, true
	}
	return nil, false
}

// CreateFromEntity resolves a parsed field entity into a validated date
// by delegating to the variant's resolution strategy. An invalid tuple
// surfaces as a rejected-parse error (*InvalidDateError), not a panic or
// a clamped date.
func (m *Merger) CreateFromEntity(entity Entity, attrs Attributes) (*Date, error) {
	return m.resolver.Resolve(m.engine, entity, attrs)
}

// Preformat prepares a date for display. The date already satisfies the
// display contract, so this is an identity pass-through.
func (m *Merger) Preformat(date *Date) *Date {
	return date
}

// Preparser returns the chronology a multi-stage parse should run
// against first, or nil when there is none. The shared merger has no
// secondary parser.
func (m *Merger) Preparser() *Merger {
	return nil
}

// DefaultStartOfDay returns the calendar's default day-boundary policy.
func (m *Merger) DefaultStartOfDay() StartOfDay {
	return Midnight
}

// DefaultPivotYear returns the pivot-year sentinel; see DefaultPivotYear.
func (m *Merger) DefaultPivotYear() int {
	return DefaultPivotYear
}
