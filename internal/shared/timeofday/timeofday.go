// Package timeofday holds a wall-clock time without a date, stored in SQL TIME columns.
package timeofday

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	layoutMinute = "15:04"
	layoutSecond = "15:04:05"
)

type TimeOfDay struct{ time.Time }

// From keeps only the hour, minute and second of t, read in t's own location.
func From(t time.Time) TimeOfDay {
	return TimeOfDay{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

// Parse accepts "HH:MM" or "HH:MM:SS".
func Parse(s string) (TimeOfDay, error) {
	var tod TimeOfDay
	return tod, tod.parse(s)
}

func MustParse(s string) TimeOfDay {
	tod, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tod
}

func Ptr(t TimeOfDay) *TimeOfDay {
	return &t
}

func (t *TimeOfDay) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == len(layoutMinute) {
		s += ":00"
	}
	parsed, err := time.Parse(layoutSecond, s)
	if err != nil {
		return fmt.Errorf("timeofday: invalid value %q: %w", s, err)
	}
	*t = From(parsed)
	return nil
}

// String renders HH:MM, the precision shown on attendance boards.
func (t TimeOfDay) String() string {
	return t.Time.Format(layoutMinute)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Time.Before(other.Time)
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.Time.Equal(other.Time)
}

func (t *TimeOfDay) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		*t = TimeOfDay{}
		return nil
	default:
		return fmt.Errorf("timeofday: unsupported Scan type %T", v)
	}
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Time.Format(layoutSecond), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
