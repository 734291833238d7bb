package fiscal

import (
	"fmt"
	"strings"
	"time"

	"github.com/teranos/fiscal/errors"
)

const (
	// DateFormat is the birth date wire format as users write it
	DateFormat = "DD-MM-YYYY"
	// DateLayout formats a time value in DateFormat
	DateLayout = "02-01-2006"
	// parseLayout also accepts one-digit days and months ("1-1-2000")
	parseLayout = "2-1-2006"

	minYear = 1
	maxYear = 9999
)

// Clock supplies the current time for absent birth dates.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// ParseBirthDate parses a DD-MM-YYYY string. Impossible calendar dates
// (31-02-2001) and non-numeric components fail with a DateFormatError that
// carries the underlying parse error; so does year 0000.
func ParseBirthDate(s string) (time.Time, error) {
	in := strings.TrimSpace(s)
	t, err := time.Parse(parseLayout, in)
	if err != nil {
		return time.Time{}, errors.NewDateFormatError(s, DateFormat, err)
	}
	if err := checkYear(t); err != nil {
		return time.Time{}, errors.NewDateFormatError(s, DateFormat, err)
	}
	return t, nil
}

// checkYear keeps the YYMMDD segment six digits long
func checkYear(t time.Time) error {
	if y := t.Year(); y < minYear || y > maxYear {
		return errors.Newf("year %d outside %d-%d", y, minYear, maxYear)
	}
	return nil
}

// Resolve returns the calendar date b stands for; an absent date resolves to
// clock's current date.
func (b BirthDate) Resolve(clock Clock) (time.Time, error) {
	switch {
	case b.raw != "":
		return ParseBirthDate(b.raw)
	case b.isSet:
		if err := checkYear(b.t); err != nil {
			return time.Time{}, errors.NewDateFormatError(b.t.String(), DateFormat, err)
		}
		return b.t, nil
	default:
		return clock.Now(), nil
	}
}

// Year returns the four-digit birth year.
func (b BirthDate) Year(clock Clock) (int, error) {
	t, err := b.Resolve(clock)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}

// EncodeDate returns the YYMMDD segment for b.
func EncodeDate(b BirthDate, clock Clock) (string, error) {
	t, err := b.Resolve(clock)
	if err != nil {
		return "", err
	}
	return FormatDateCode(t), nil
}

// FormatDateCode renders t as YYMMDD: the last two digits of the year, then
// month and day, each zero-padded to two digits.
func FormatDateCode(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", t.Year()%100, int(t.Month()), t.Day())
}
