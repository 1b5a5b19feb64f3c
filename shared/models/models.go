package models

import (
	"database/sql/driver"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ID represents a numeric entity identifier. All inter-service calls are
// keyed by these integer identifiers.
type ID int64

// ParseID creates an ID from its string representation
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", s)
	}
	if v <= 0 {
		return 0, errors.Errorf("invalid id %d: must be positive", v)
	}
	return ID(v), nil
}

// Int64 returns the numeric value
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns string representation
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero reports whether the ID is unset
func (id ID) IsZero() bool {
	return id == 0
}

const dateLayout = "2006-01-02"

// Date represents a calendar date without a time component, serialized as
// "YYYY-MM-DD" on the wire and stored as a SQL date.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return Date{Time: t}, nil
}

// String returns the "YYYY-MM-DD" representation
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return errors.Errorf("cannot scan %T into Date", src)
	}
}

// Before reports whether d is before other
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// DaysUntil returns the number of whole days between d and other
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

// Nights returns the billable number of nights between check-in and
// check-out. A same-day stay still counts as one night.
func Nights(checkIn, checkOut Date) int {
	nights := checkIn.DaysUntil(checkOut)
	if nights < 1 {
		return 1
	}
	return nights
}

// Timestamps represents creation and update times
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimestamps creates new timestamps
func NewTimestamps() Timestamps {
	now := time.Now()
	return Timestamps{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update updates the UpdatedAt timestamp
func (t Timestamps) Update() Timestamps {
	t.UpdatedAt = time.Now()
	return t
}
