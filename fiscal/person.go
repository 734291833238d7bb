package fiscal

import (
	"strings"
	"time"
)

// Person is the raw input to the generator. MaternalSurname, City and State
// are optional; a blank MaternalSurname means the person has none.
type Person struct {
	GivenName       string
	PaternalSurname string
	MaternalSurname string
	City            string
	State           string
	BirthDate       BirthDate
}

// BirthDate is either a DD-MM-YYYY string, a time value, or absent. The zero
// value is absent and resolves to the generator clock's current date.
type BirthDate struct {
	raw   string
	t     time.Time
	isSet bool
}

// DateString wraps a DD-MM-YYYY string. A blank string is treated as absent.
func DateString(s string) BirthDate {
	s = strings.TrimSpace(s)
	if s == "" {
		return BirthDate{}
	}
	return BirthDate{raw: s}
}

// DateOf wraps a time value; only its calendar date is used.
func DateOf(t time.Time) BirthDate {
	return BirthDate{t: t, isSet: true}
}

// IsZero reports whether no birth date was supplied.
func (b BirthDate) IsZero() bool {
	return b.raw == "" && !b.isSet
}

// String returns the date as supplied, or "" when absent.
func (b BirthDate) String() string {
	switch {
	case b.raw != "":
		return b.raw
	case b.isSet:
		return b.t.Format(DateLayout)
	default:
		return ""
	}
}

// Rule names the initials composition rule that produced a name code.
type Rule string

const (
	// RuleStandard: paternal initial, next paternal vowel, maternal initial, given initial
	RuleStandard Rule = "standard"
	// RuleComposite: paternal initial, maternal initial, first two given-name letters
	RuleComposite Rule = "composite"
)

// Code is a generated ten-character code. It is immutable.
type Code struct {
	nameCode string
	dateCode string
	rule     Rule
	filtered bool
}

// String returns the full code, e.g. "OLAL401201".
func (c Code) String() string {
	return c.nameCode + c.dateCode
}

// NameCode returns the four-letter name segment.
func (c Code) NameCode() string { return c.nameCode }

// DateCode returns the six-digit YYMMDD segment.
func (c Code) DateCode() string { return c.dateCode }

// Rule returns the composition rule that was applied.
func (c Code) Rule() Rule { return c.rule }

// Filtered reports whether the composed name code was blocklisted and
// replaced with the sentinel.
func (c Code) Filtered() bool { return c.filtered }

// MarshalText encodes the code as its string form.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
