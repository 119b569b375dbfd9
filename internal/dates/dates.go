// Package dates handles the calendar-day arithmetic shared by the planner and
// the timeline sync engine. All app dates are plain YYYY-MM-DD strings with no
// time component; arithmetic is done on midnight-normalized times.
package dates

import (
	"fmt"
	"time"
)

// Layout is the wire/storage format for calendar days.
const Layout = "2006-01-02"

// Parse converts a YYYY-MM-DD string into a midnight UTC time.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format renders a time as a YYYY-MM-DD string.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Normalize truncates a time to its calendar day.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole number of days from 'from' until 'to',
// both normalized to midnight. Negative when 'to' is earlier.
func DaysBetween(from, to time.Time) int {
	return int(Normalize(to).Sub(Normalize(from)).Hours() / 24)
}

// AddDays shifts a YYYY-MM-DD string forward by n calendar days.
func AddDays(day string, n int) (string, error) {
	t, err := Parse(day)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// NextWeekday returns the first occurrence of wd on or after start.
func NextWeekday(start time.Time, wd time.Weekday) time.Time {
	start = Normalize(start)
	offset := (int(wd) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, offset)
}

// WeekStart returns the Sunday beginning the week that contains t.
func WeekStart(t time.Time) time.Time {
	t = Normalize(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// Today returns the real-world current calendar day.
func Today() string {
	return Format(time.Now())
}
