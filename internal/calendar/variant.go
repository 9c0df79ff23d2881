package calendar

import "fmt"

// Variant identifies a concrete East-Asian calendar. The tag fixes the
// locale and default timezone used when nothing more specific is known;
// the underlying month tables are supplied per variant at engine
// construction.
type Variant string

const (
	Chinese    Variant = "chinese"
	Dangi      Variant = "dangi" // Korean
	Vietnamese Variant = "vietnamese"
	Japanese   Variant = "japanese" // historical kyureki reckoning
)

// Variants lists all supported calendar variants.
func Variants() []Variant {
	return []Variant{Chinese, Dangi, Vietnamese, Japanese}
}

// ParseVariant converts a string (e.g. a URL segment) to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	switch v {
	case Chinese, Dangi, Vietnamese, Japanese:
		return v, nil
	}
	return "", fmt.Errorf("unknown calendar variant: %q", s)
}

// Locale returns the language tag conventionally paired with the variant.
func (v Variant) Locale() string {
	switch v {
	case Dangi:
		return "ko"
	case Vietnamese:
		return "vi"
	case Japanese:
		return "ja"
	default:
		return "zh"
	}
}

// DefaultTimezone returns the IANA zone the variant's civil reckoning is
// traditionally anchored to.
func (v Variant) DefaultTimezone() string {
	switch v {
	case Dangi:
		return "Asia/Seoul"
	case Vietnamese:
		return "Asia/Ho_Chi_Minh"
	case Japanese:
		return "Asia/Tokyo"
	default:
		return "Asia/Shanghai"
	}
}
