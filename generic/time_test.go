package generic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/paycheck-engine/generic"
)

func date(s string) generic.TimePoint { return generic.MustParseDate(s) }

// =============================================================================
// TIME POINT
// =============================================================================

func TestTimePoint_AddYears_ClampsLeapDay(t *testing.T) {
	// GIVEN: A Feb 29 birthday
	// WHEN: Moving to a non-leap year
	// THEN: The date clamps to Feb 28 instead of rolling into March

	leap := date("2024-02-29")

	assert.Equal(t, "2025-02-28", leap.AddYears(1).String())
	assert.Equal(t, "2028-02-29", leap.AddYears(4).String())
	assert.Equal(t, "2074-02-28", leap.AddYears(50).String())
	assert.Equal(t, "2034-06-08", date("1984-06-08").AddYears(50).String())
}

func TestTimePoint_Comparisons(t *testing.T) {
	a := date("2024-06-01")
	b := date("2024-06-02")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.BeforeOrEqual(a))
	assert.True(t, a.AfterOrEqual(a))
	assert.False(t, b.BeforeOrEqual(a))
	assert.True(t, a.Equal(generic.NewTimePoint(2024, time.June, 1)))
}

func TestTimePoint_FromTime_DropsClock(t *testing.T) {
	tp := generic.FromTime(time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC))
	assert.True(t, tp.Equal(date("2024-06-01")))
}

func TestTimePoint_TextRoundTrip(t *testing.T) {
	var tp generic.TimePoint
	require.NoError(t, tp.UnmarshalText([]byte("2024-12-30")))

	out, err := tp.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-30", string(out))

	assert.Error(t, tp.UnmarshalText([]byte("30/12/2024")))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := generic.ParseDate("2024-02-30")
	assert.Error(t, err)
}

// =============================================================================
// CALENDAR HELPERS
// =============================================================================

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.June, 30},
		{2024, time.July, 31},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, generic.DaysInMonth(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, generic.DaysInYear(2024))
	assert.Equal(t, 365, generic.DaysInYear(2023))
	assert.Equal(t, 365, generic.DaysInYear(2100))
	assert.Equal(t, 366, generic.DaysInYear(2000))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, generic.DaysBetween(date("2024-06-01"), date("2024-06-01")))
	assert.Equal(t, 13, generic.DaysBetween(date("2024-06-01"), date("2024-06-14")))
	assert.Equal(t, 1, generic.DaysBetween(date("2023-12-31"), date("2024-01-01")))
	assert.Equal(t, -3, generic.DaysBetween(date("2024-03-02"), date("2024-02-28")))
}

func TestEndOfMonth(t *testing.T) {
	assert.Equal(t, "2024-02-29", generic.EndOfMonth(2024, time.February).String())
	assert.Equal(t, "2024-04-30", generic.EndOfMonth(2024, time.April).String())
	assert.Equal(t, "2024-12-31", generic.EndOfYear(2024).String())
}
