package utils

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 30, 0, 0, time.UTC)
}

func TestGetDayRange(t *testing.T) {
	r := GetDayRange(day(2024, time.March, 5))

	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.March, 5, 23, 59, 59, 999000000, time.UTC), r.End)
}

func TestGetMonthRange(t *testing.T) {
	r := GetMonthRange(day(2024, time.February, 10))

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), r.End)

	r = GetMonthRange(day(2023, time.December, 31))
	assert.Equal(t, 31, r.End.Day())
	assert.Equal(t, time.December, r.End.Month())
}

func TestGetYearRange(t *testing.T) {
	r := GetYearRange(day(2024, time.July, 4))

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 999000000, time.UTC), r.End)
}

func TestGetFinancialYear(t *testing.T) {
	r := GetFinancialYear(day(2024, time.February, 15))
	assert.Equal(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, 999000000, time.UTC), r.End)

	r = GetFinancialYear(day(2024, time.April, 1))
	assert.Equal(t, 2024, r.Start.Year())
	assert.Equal(t, 2025, r.End.Year())

	r = GetFinancialYear(day(2024, time.March, 31))
	assert.Equal(t, 2023, r.Start.Year())
}

func TestFinancialYearLabel(t *testing.T) {
	assert.Equal(t, "2023-24", FinancialYearLabel(day(2024, time.February, 15)))
	assert.Equal(t, "2024-25", FinancialYearLabel(day(2024, time.April, 1)))
	assert.Equal(t, "1999-00", FinancialYearLabel(day(1999, time.December, 1)))
}

func TestGetDateRangeFromQuery(t *testing.T) {
	start, end, err := GetDateRangeFromQuery("", "")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)

	start, end, err = GetDateRangeFromQuery("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), *start)
	assert.Equal(t, time.Date(2024, time.January, 31, 23, 59, 59, 999000000, time.Local), *end)

	start, end, err = GetDateRangeFromQuery("", "2024-01-31")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.NotNil(t, end)
}

func TestGetDateRangeFromQuery_Invalid(t *testing.T) {
	_, _, err := GetDateRangeFromQuery("31/01/2024", "")
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "startDate")
}

func TestAddDaysAndMonths(t *testing.T) {
	assert.Equal(t, day(2024, time.February, 1), AddDays(day(2024, time.January, 31), 1))
	assert.Equal(t, day(2023, time.December, 31), AddDays(day(2024, time.January, 1), -1))

	// January 31 plus one month overflows into March in a leap year
	assert.Equal(t, day(2024, time.March, 2), AddMonths(day(2024, time.January, 31), 1))
	assert.Equal(t, day(2025, time.January, 15), AddMonths(day(2024, time.October, 15), 3))
}

func TestDaysBetween(t *testing.T) {
	d := day(2024, time.January, 1)

	assert.Equal(t, 0, DaysBetween(d, d))
	assert.Equal(t, 10, DaysBetween(d, d.AddDate(0, 0, 10)))
	assert.Equal(t, 10, DaysBetween(d.AddDate(0, 0, 10), d))
	assert.Equal(t, 2, DaysBetween(d, d.Add(36*time.Hour)))
}

func TestRelativeDates(t *testing.T) {
	now := time.Now()

	assert.True(t, IsToday(now))
	assert.False(t, IsToday(now.AddDate(0, 0, -2)))
	assert.True(t, IsPast(now.Add(-time.Hour)))
	assert.False(t, IsPast(now.Add(time.Hour)))
	assert.True(t, IsFuture(now.Add(time.Hour)))
	assert.False(t, IsFuture(now.Add(-time.Hour)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", FormatDate(day(2024, time.March, 5)))
}
