package calendar

import (
	"testing"
	"time"
)

func newChineseMerger() *Merger {
	return NewMerger(NewEngine(Chinese))
}

func TestCreateFromClock_RequiresZone(t *testing.T) {
	merger := newChineseMerger()
	clock := FixedClock{Instant: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}

	for _, leniency := range []Leniency{Strict, Smart} {
		if _, ok := merger.CreateFromClock(clock, Attributes{Leniency: leniency}); ok {
			t.Errorf("leniency %v: got a date without a timezone", leniency)
		}
	}

	// Lax falls back to the system zone instead of giving up.
	date, ok := merger.CreateFromClock(clock, Attributes{Leniency: Lax})
	if !ok {
		t.Fatal("lax leniency: no date from system zone fallback")
	}
	if date.Variant != Chinese {
		t.Errorf("variant = %s, want %s", date.Variant, Chinese)
	}
}

func TestCreateFromClock_InvalidZone(t *testing.T) {
	merger := newChineseMerger()
	clock := FixedClock{Instant: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
	attrs := Attributes{TimezoneID: "Not/AZone", Leniency: Smart}

	if _, ok := merger.CreateFromClock(clock, attrs); ok {
		t.Error("smart leniency accepted an unknown timezone")
	}

	attrs.Leniency = Lax
	if _, ok := merger.CreateFromClock(clock, attrs); !ok {
		t.Error("lax leniency did not fall back past an unknown timezone")
	}
}

func TestCreateFromClock_ZoneChangesDay(t *testing.T) {
	merger := newChineseMerger()
	// 18:00 UTC is already the next civil day in Shanghai (UTC+8).
	clock := FixedClock{Instant: time.Date(2024, time.June, 1, 18, 0, 0, 0, time.UTC)}

	utcDate, ok := merger.CreateFromClock(clock, Attributes{TimezoneID: "UTC"})
	if !ok {
		t.Fatal("no date for UTC")
	}
	cnDate, ok := merger.CreateFromClock(clock, Attributes{TimezoneID: "Asia/Shanghai"})
	if !ok {
		t.Fatal("no date for Asia/Shanghai")
	}

	if dayDistance(t, merger.Engine(), utcDate, cnDate) != 1 {
		t.Errorf("Shanghai date %v is not one day after UTC date %v", cnDate, utcDate)
	}
}

func TestCreateFromClock_StartOfDay(t *testing.T) {
	merger := newChineseMerger()

	// 00:30 with the day opening at 01:00 still belongs to the previous
	// calendar day.
	earlyClock := FixedClock{Instant: time.Date(2024, time.June, 1, 0, 30, 0, 0, time.UTC)}
	midnightDate, ok := merger.CreateFromClock(earlyClock, Attributes{TimezoneID: "UTC"})
	if !ok {
		t.Fatal("no date at civil midnight policy")
	}
	lateOpen, ok := merger.CreateFromClock(earlyClock, Attributes{
		TimezoneID: "UTC",
		StartOfDay: ClockShift(3600),
	})
	if !ok {
		t.Fatal("no date with shifted start of day")
	}
	if dayDistance(t, merger.Engine(), lateOpen, midnightDate) != 1 {
		t.Errorf("shifted policy gave %v, want the day before %v", lateOpen, midnightDate)
	}

	// 23:30 with the day opening at 23:00 already belongs to the next
	// calendar day.
	lateClock := FixedClock{Instant: time.Date(2024, time.June, 1, 23, 30, 0, 0, time.UTC)}
	civil, ok := merger.CreateFromClock(lateClock, Attributes{TimezoneID: "UTC"})
	if !ok {
		t.Fatal("no date at civil midnight policy")
	}
	traditional, ok := merger.CreateFromClock(lateClock, Attributes{
		TimezoneID: "UTC",
		StartOfDay: ClockShift(-3600),
	})
	if !ok {
		t.Fatal("no date with traditional start of day")
	}
	if dayDistance(t, merger.Engine(), civil, traditional) != 1 {
		t.Errorf("traditional policy gave %v, want the day after %v", traditional, civil)
	}
}

func TestCreateFromClock_OutsideCoverage(t *testing.T) {
	merger := newChineseMerger()
	clock := FixedClock{Instant: time.Date(1850, time.June, 1, 12, 0, 0, 0, time.UTC)}

	if _, ok := merger.CreateFromClock(clock, Attributes{TimezoneID: "UTC"}); ok {
		t.Error("got a date for an instant outside the covered range")
	}
}

// dayDistance measures how many days b lies after a.
func dayDistance(t *testing.T, engine *Engine, a, b *Date) int64 {
	t.Helper()
	aCivil, err := engine.ToGregorian(*a)
	if err != nil {
		t.Fatalf("ToGregorian(%v): %v", a, err)
	}
	bCivil, err := engine.ToGregorian(*b)
	if err != nil {
		t.Fatalf("ToGregorian(%v): %v", b, err)
	}
	return epochDays(bCivil) - epochDays(aCivil)
}

func TestMerger_Defaults(t *testing.T) {
	merger := newChineseMerger()

	if got := merger.DefaultStartOfDay().Deviation(time.Now(), time.UTC); got != 0 {
		t.Errorf("default start of day deviation = %d, want 0", got)
	}
	if got := merger.DefaultPivotYear(); got != 100 {
		t.Errorf("DefaultPivotYear() = %d, want 100", got)
	}
	if merger.Preparser() != nil {
		t.Error("Preparser() != nil")
	}
	date := &Date{Variant: Chinese, Year: ForGregorian(2024), Month: Month{Number: 1}, Day: 1}
	if merger.Preformat(date) != date {
		t.Error("Preformat is not an identity")
	}
}

func TestFormatPattern_LocaleFallback(t *testing.T) {
	merger := newChineseMerger()

	tests := []struct {
		style  FormatStyle
		locale string
		want   string
	}{
		{StyleShort, "zh", "r/M/d"},
		{StyleShort, "zh-Hans-CN", "r/M/d"}, // reduced to language subtag
		{StyleFull, "ko", "r(U)년 MMMM d일 EEEE"},
		{StyleShort, "de", "r-MM-dd"}, // unknown language uses root
		{FormatStyle(99), "zh", "r年MMMMd日"}, // unknown style uses medium
	}

	for _, tt := range tests {
		if got := merger.FormatPattern(tt.style, tt.locale); got != tt.want {
			t.Errorf("FormatPattern(%v, %q) = %q, want %q", tt.style, tt.locale, got, tt.want)
		}
	}
}

func TestParseLeniency(t *testing.T) {
	tests := []struct {
		in      string
		want    Leniency
		wantErr bool
	}{
		{"", Smart, false},
		{"strict", Strict, false},
		{"smart", Smart, false},
		{"lax", Lax, false},
		{"sloppy", Smart, true},
	}

	for _, tt := range tests {
		got, err := ParseLeniency(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLeniency(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLeniency(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
