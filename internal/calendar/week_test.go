package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"Monday maps to itself", time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), "2024-01-01"},
		{"Wednesday", time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), "2024-01-01"},
		{"Sunday belongs to the previous Monday", time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC), "2024-01-01"},
		{"Crosses a month boundary", time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), "2024-02-26"},
		{"Crosses a year boundary", time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), "2024-12-30"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start := StartOfWeek(tc.input)
			assert.Equal(t, tc.expected, FormatDate(start))
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, 0, start.Hour())
		})
	}
}

func TestStartOfWeekBracketsEveryDay(t *testing.T) {
	base := time.Date(2023, 12, 20, 13, 45, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		d := base.AddDate(0, 0, i)
		start := StartOfWeek(d)

		assert.Equal(t, time.Monday, start.Weekday(), "day %s", d)
		assert.False(t, start.After(d), "start %s after %s", start, d)
		assert.True(t, d.Before(start.AddDate(0, 0, 7)), "%s not before next week", d)
	}
}

func TestStartOfWeekKeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	local := time.Date(2024, 1, 8, 1, 0, 0, 0, loc)
	start := StartOfWeek(local)

	assert.Equal(t, loc, start.Location())
	assert.Equal(t, "2024-01-08", FormatDate(start))
	// same instant in UTC is Monday 04:00
	assert.Equal(t, "2024-01-08", FormatDate(StartOfWeek(local.UTC())))
}

func TestPreviousWeekStart(t *testing.T) {
	for i := 0; i < 14; i++ {
		now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		assert.Equal(t, StartOfWeek(now).AddDate(0, 0, -7), PreviousWeekStart(now))
		assert.Equal(t, StartOfWeek(now), CurrentWeekStart(now))
	}

	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01", FormatDate(PreviousWeekStart(now)))
	assert.Equal(t, "2024-01-08", FormatDate(CurrentWeekStart(now)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/01/2024", time.UTC)
	assert.Error(t, err)

	_, err = ParseDate("2024-02-30", time.UTC)
	assert.Error(t, err)
}

func TestClocks(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, FixedClock(fixed)())

	now := SystemClock(nil)()
	assert.Equal(t, time.UTC, now.Location())
}
