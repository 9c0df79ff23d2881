package calendar

import "testing"

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(string(v))
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v, got, err)
		}
	}

	if _, err := ParseVariant("gregorian"); err == nil {
		t.Error("ParseVariant accepted an unknown variant")
	}
}

func TestVariant_Defaults(t *testing.T) {
	tests := []struct {
		variant Variant
		locale  string
		zone    string
	}{
		{Chinese, "zh", "Asia/Shanghai"},
		{Dangi, "ko", "Asia/Seoul"},
		{Vietnamese, "vi", "Asia/Ho_Chi_Minh"},
		{Japanese, "ja", "Asia/Tokyo"},
	}

	for _, tt := range tests {
		if got := tt.variant.Locale(); got != tt.locale {
			t.Errorf("%s.Locale() = %q, want %q", tt.variant, got, tt.locale)
		}
		if got := tt.variant.DefaultTimezone(); got != tt.zone {
			t.Errorf("%s.DefaultTimezone() = %q, want %q", tt.variant, got, tt.zone)
		}
	}
}

func TestMonth_String(t *testing.T) {
	if got := (Month{Number: 7}).String(); got != "7" {
		t.Errorf("ordinary month String() = %q, want 7", got)
	}
	if got := (Month{Number: 7, Leap: true}).String(); got != "*7" {
		t.Errorf("leap month String() = %q, want *7", got)
	}
}

func TestInvalidDateError_Message(t *testing.T) {
	tests := []struct {
		err  InvalidDateError
		want string
	}{
		{InvalidDateError{Era: 78, Year: 1}, "invalid lunisolar year: era 78, year 1"},
		{InvalidDateError{Era: 78, Year: 1, Month: 14}, "invalid lunisolar month: era 78, year 1, month 14"},
		{InvalidDateError{Era: 78, Year: 1, Month: 2, Day: 30}, "invalid lunisolar date: era 78, year 1, month 2, day 30"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	if IsInvalidDate(nil) {
		t.Error("IsInvalidDate(nil) = true")
	}
}
