// Package types implements special types for Crewplan.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
//
// It is anchored to the first day of the month in UTC so that month
// arithmetic can never drift across month boundaries and so that equal
// months compare equal wherever they were parsed.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" token and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the canonical month token, formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the canonical "YYYY-MM" token.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// It accepts "YYYY-MM" tokens, "YYYY-MM-DD" dates and RFC3339 timestamps.
// Everything except the year and the month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	t, err := parseAny(value)
	if err != nil {
		return err
	}

	*m = MonthOf(t)
	return nil
}

// UnmarshalParam parses a month from a URI or query parameter so that
// gin can bind "YYYY-MM" tokens directly. An empty parameter yields the
// zero Month.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" {
		*m = Month{}
		return nil
	}

	t, err := parseAny(p)
	if err != nil {
		return err
	}

	*m = MonthOf(t)
	return nil
}

// parseAny selects the layout matching the input. "YYYY-MM" is the
// canonical format, the other two are accepted for compatibility with
// clients sending full dates or timestamps.
func parseAny(value string) (time.Time, error) {
	pattern := "2006-01-02T15:04:05Z07:00"

	if match, _ := regexp.MatchString(`^[0-9]{4}-[0-9]{2}$`, value); match {
		pattern = "2006-01"
	} else if match, _ := regexp.MatchString(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`, value); match {
		pattern = "2006-01-02"
	}

	return time.Parse(pattern, value)
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// MonthsInRange returns the ordered, inclusive sequence of months from
// "from" to "to".
//
// The sequence is empty when either bound is the zero Month, which is
// how absent or unparseable bounds are represented, and when from is
// after to. Neither case is an error.
func MonthsInRange(from, to Month) []Month {
	months := make([]Month, 0)

	if from.IsZero() || to.IsZero() {
		return months
	}

	for month := from; !month.After(to); month = month.AddDate(0, 1) {
		months = append(months, month)
	}

	return months
}
