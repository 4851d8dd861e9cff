package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString represents a wall-clock time of day in "HH:MM" format.
// The zero value is not a valid time; use the constructors.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (truncated to minutes).
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
// Single-digit hour or minute components are accepted and normalized.
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return FromMinutes(hour*60 + minute), nil
}

// FromMinutes converts a minute-of-day value to a zero-padded TimeString.
// The caller guarantees 0 <= minutes < MinutesPerDay.
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Minutes returns the minute-of-day value (hour*60 + minute).
// The parse is lenient: components are read as plain integers without
// range checks, mirroring the validated-at-the-boundary contract.
func (t TimeString) Minutes() int {
	parts := strings.SplitN(string(t), ":", 2)

	hour, _ := strconv.Atoi(parts[0])
	minute := 0
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}

	return hour*60 + minute
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Returns an error if the result leaves the current day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total < 0 || total >= MinutesPerDay {
		return "", fmt.Errorf("%w: %q + %d minutes is outside the day", ErrInvalidTimeString, t, minutes)
	}
	return FromMinutes(total), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer for storing TimeString in SQL columns.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = normalize(v)
	case []byte:
		*t = normalize(string(v))
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeString, src)
	}
	return nil
}

// normalize trims a Postgres TIME value ("HH:MM:SS") down to "HH:MM".
func normalize(s string) TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return TimeString(s)
}
