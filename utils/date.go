package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateRange is an inclusive period from the first to the last instant of its days
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

const (
	// DisplayDateLayout is the dd/mm/yyyy format used on reports
	DisplayDateLayout = "02/01/2006"

	queryDateLayout = "2006-01-02"
	endOfDayNanos   = 999 * int(time.Millisecond)
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, endOfDayNanos, t.Location())
}

// GetDayRange returns the bounds of the calendar day containing date
func GetDayRange(date time.Time) DateRange {
	return DateRange{Start: startOfDay(date), End: endOfDay(date)}
}

// GetMonthRange returns the bounds of the calendar month containing date
func GetMonthRange(date time.Time) DateRange {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return DateRange{Start: first, End: endOfDay(first.AddDate(0, 1, -1))}
}

// GetYearRange returns the bounds of the calendar year containing date
func GetYearRange(date time.Time) DateRange {
	return DateRange{
		Start: time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location()),
		End:   time.Date(date.Year(), time.December, 31, 23, 59, 59, endOfDayNanos, date.Location()),
	}
}

// financialYearStart returns the calendar year in which the April-March year containing date begins
func financialYearStart(date time.Time) int {
	if date.Month() < time.April {
		return date.Year() - 1
	}
	return date.Year()
}

// GetFinancialYear returns the April 1 - March 31 financial year containing date
func GetFinancialYear(date time.Time) DateRange {
	year := financialYearStart(date)
	return DateRange{
		Start: time.Date(year, time.April, 1, 0, 0, 0, 0, date.Location()),
		End:   time.Date(year+1, time.March, 31, 23, 59, 59, endOfDayNanos, date.Location()),
	}
}

// FinancialYearLabel returns the short label of the financial year containing date, e.g. "2023-24"
func FinancialYearLabel(date time.Time) string {
	year := financialYearStart(date)
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// GetDateRangeFromQuery parses optional start and end dates from query parameters.
// An empty parameter leaves its bound nil; a present one is widened to the start or end of its day.
func GetDateRangeFromQuery(startDate, endDate string) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if strings.TrimSpace(startDate) != "" {
		parsed, err := ParseDate(startDate, "startDate")
		if err != nil {
			return nil, nil, err
		}
		s := startOfDay(parsed)
		start = &s
	}

	if strings.TrimSpace(endDate) != "" {
		parsed, err := ParseDate(endDate, "endDate")
		if err != nil {
			return nil, nil, err
		}
		e := endOfDay(parsed)
		end = &e
	}

	return start, end, nil
}

// ParseDate parses a yyyy-mm-dd (local) or RFC3339 date supplied in field
func ParseDate(value, field string) (time.Time, error) {
	parsed, err := parseQueryDate(value)
	if err != nil {
		return time.Time{}, NewValidationError(fmt.Sprintf("invalid %s: %s", field, value))
	}
	return parsed, nil
}

func parseQueryDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(queryDateLayout, value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// AddDays returns date moved by days, rolling over months and years
func AddDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// AddMonths returns date moved by months; day overflow rolls into the following month
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// DaysBetween returns the absolute number of days between two instants, rounded up
func DaysBetween(d1, d2 time.Time) int {
	diff := d2.Sub(d1)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// IsToday reports whether date falls on the current calendar day
func IsToday(date time.Time) bool {
	now := time.Now().In(date.Location())
	return date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()
}

// IsPast reports whether date is before now
func IsPast(date time.Time) bool {
	return date.Before(time.Now())
}

// IsFuture reports whether date is after now
func IsFuture(date time.Time) bool {
	return date.After(time.Now())
}

// FormatDate renders date as dd/mm/yyyy
func FormatDate(date time.Time) string {
	return date.Format(DisplayDateLayout)
}
