// Package types implements special types for the finance tracker.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ErrInvalidMonthFormat = errors.New("could not parse the month, use the YYYY-MM format with a month between 01 and 12")

var monthFormat = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// now is replaced in tests.
var now = time.Now

// Month is a month in a specific year.
//
// It is always set to 00:00 UTC on the first of the month so that two
// Months for the same year and month are identical.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// Current returns the present calendar month.
func Current() Month {
	return MonthOf(now())
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	if !monthFormat.MatchString(s) {
		return Month{}, fmt.Errorf("%w: '%s'", ErrInvalidMonthFormat, s)
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %w", ErrInvalidMonthFormat, err)
	}

	return MonthOf(t), nil
}

// ParseMonthOrCurrent parses s like ParseMonth, but returns the current
// month for an empty string.
func ParseMonthOrCurrent(s string) (Month, error) {
	if strings.TrimSpace(s) == "" {
		return Current(), nil
	}

	return ParseMonth(s)
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the month of the year.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of m.String().
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a string in the "YYYY-MM" format. null leaves
// the Month unchanged.
func (m *Month) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMonthFormat, data)
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for uri and query binding.
func (m *Month) UnmarshalParam(param string) error {
	month, err := ParseMonth(param)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Scan writes the value from the database.
//
// Months are stored as their canonical "YYYY-MM" string.
func (m *Month) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*m = Month{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into a Month", value)
	}

	month, err := ParseMonth(s)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	return m.String(), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "string"
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
