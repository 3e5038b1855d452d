package generic

import (
	"time"
)

// =============================================================================
// TIME POINT - Calendar date abstraction (payroll works in whole days)
// =============================================================================

// TimePoint is a calendar date. The time-of-day component is always
// midnight UTC so that day arithmetic never drifts across DST changes.
type TimePoint struct {
	Time time.Time
}

// DateLayout is the wire/storage format for dates.
const DateLayout = "2006-01-02"

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar date.
func FromTime(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (TimePoint, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return TimePoint{}, err
	}
	return FromTime(t), nil
}

// MustParseDate is ParseDate for literals in tests and seed data.
func MustParseDate(s string) TimePoint {
	tp, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return tp
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.Time.Before(other.Time) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.Time.Equal(other.Time) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.Time.After(other.Time) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return !tp.After(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return !tp.Before(other) }

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }

// AddYears moves the date n years, clamping to the last day of the month
// instead of overflowing: Feb 29 + 1 year is Feb 28, not Mar 1.
func (tp TimePoint) AddYears(n int) TimePoint {
	year := tp.Year() + n
	day := tp.Day()
	if last := DaysInMonth(year, tp.Month()); day > last {
		day = last
	}
	return NewTimePoint(year, tp.Month(), day)
}

// Properties
func (tp TimePoint) Year() int         { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month { return tp.Time.Month() }
func (tp TimePoint) Day() int          { return tp.Time.Day() }
func (tp TimePoint) IsZero() bool      { return tp.Time.IsZero() }

// SameMonth reports whether both dates fall in the same calendar month.
func (tp TimePoint) SameMonth(other TimePoint) bool {
	return tp.Year() == other.Year() && tp.Month() == other.Month()
}

func (tp TimePoint) String() string {
	return tp.Time.Format(DateLayout)
}

// MarshalText renders the date as YYYY-MM-DD.
func (tp TimePoint) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText parses YYYY-MM-DD.
func (tp *TimePoint) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*tp = parsed
	return nil
}

// =============================================================================
// TIME UTILITIES
// =============================================================================

// DaysBetween returns the whole days from -> to (negative if to is earlier).
func DaysBetween(from, to TimePoint) int { return int(to.Time.Sub(from.Time).Hours() / 24) }

func EndOfYear(year int) TimePoint { return NewTimePoint(year, time.December, 31) }

func EndOfMonth(year int, month time.Month) TimePoint {
	return NewTimePoint(year, month, DaysInMonth(year, month))
}

// DaysInMonth returns 28-31.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
