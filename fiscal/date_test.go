package fiscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/fiscal/errors"
)

func TestEncodeDate(t *testing.T) {
	clock := FixedClock(today)

	tests := []struct {
		name string
		in   BirthDate
		want string
	}{
		{"two digit parts", DateString("15-03-2007"), "070315"},
		{"one digit parts", DateString("1-1-2000"), "000101"},
		{"padded parts", DateString("01-12-1940"), "401201"},
		{"surrounding spaces", DateString(" 28-02-1945 "), "450228"},
		{"leap day", DateString("29-02-2000"), "000229"},
		{"time value", DateOf(time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC)), "991231"},
		{"small year", DateOf(time.Date(5, time.July, 4, 0, 0, 0, 0, time.UTC)), "050704"},
		{"first year", DateString("01-01-0001"), "010101"},
		{"last year", DateString("31-12-9999"), "991231"},
		{"absent", BirthDate{}, "261019"},
		{"blank string", DateString("   "), "261019"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeDate(tt.in, clock)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDate_Invalid(t *testing.T) {
	tests := []string{
		"31-02-2001", // impossible day
		"29-02-2001", // not a leap year
		"15-13-2007", // month out of range
		"00-01-2007",
		"2007-03-15", // wrong order
		"15/03/2007",
		"aa-bb-cccc",
		"15-03-07", // two digit year
		"15-03-2007x",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := EncodeDate(DateString(in), FixedClock(today))
			require.Error(t, err)
			assert.True(t, errors.IsDateFormatError(err))

			var dfe *errors.DateFormatError
			require.True(t, errors.As(err, &dfe))
			assert.Equal(t, in, dfe.Input)
			assert.Equal(t, DateFormat, dfe.Layout)

			var pe *time.ParseError
			assert.True(t, errors.As(err, &pe), "the parse error is kept as the cause")
		})
	}
}

func TestEncodeDate_YearOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		in   BirthDate
	}{
		{"year zero string", DateString("01-01-0000")},
		{"year zero time", DateOf(time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC))},
		{"negative year", DateOf(time.Date(-44, time.March, 15, 0, 0, 0, 0, time.UTC))},
		{"five digit year", DateOf(time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeDate(tt.in, FixedClock(today))
			require.Error(t, err)
			assert.True(t, errors.IsDateFormatError(err))
			assert.Contains(t, err.Error(), "outside 1-9999")
		})
	}
}

func TestGenerate_YearOutOfRange(t *testing.T) {
	_, err := newTestGenerator().Generate(Person{
		GivenName:       "Juan",
		PaternalSurname: "Gómez",
		BirthDate:       DateOf(time.Date(-44, time.March, 15, 0, 0, 0, 0, time.UTC)),
	})
	assert.True(t, errors.IsDateFormatError(err))
}

func TestParseBirthDate(t *testing.T) {
	got, err := ParseBirthDate("15-03-2007")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2007, time.March, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestBirthDate(t *testing.T) {
	assert.True(t, BirthDate{}.IsZero())
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("1-1-2000").IsZero())
	assert.False(t, DateOf(time.Time{}).IsZero())

	assert.Equal(t, "1-1-2000", DateString("1-1-2000").String())
	assert.Equal(t, "05-07-1980", DateOf(time.Date(1980, time.July, 5, 0, 0, 0, 0, time.UTC)).String())
	assert.Equal(t, "", BirthDate{}.String())
}

func TestBirthDate_Year(t *testing.T) {
	year, err := DateString("01-12-1940").Year(FixedClock(today))
	require.NoError(t, err)
	assert.Equal(t, 1940, year)

	year, err = BirthDate{}.Year(FixedClock(today))
	require.NoError(t, err)
	assert.Equal(t, 2026, year)

	_, err = DateString("nope").Year(FixedClock(today))
	assert.True(t, errors.IsDateFormatError(err))
}

func TestFormatDateCode(t *testing.T) {
	assert.Equal(t, "070315", FormatDateCode(time.Date(2007, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "000101", FormatDateCode(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}
