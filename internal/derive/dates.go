// Package derive computes read-time attributes from stored dates and amounts.
// Every function is pure: callers supply "today".
package derive

import (
	"math"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for clock times.
const TimeLayout = "15:04"

// Day truncates t to its calendar date in UTC, using t's own year/month/day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a calendar date, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// DaysUntil returns whole calendar days from today to target. Negative means
// target is in the past.
func DaysUntil(target, today time.Time) int {
	return int(Day(target).Sub(Day(today)).Hours() / 24)
}

// NextPayDate returns the nearest occurrence of payDay on or after today.
// A payDay beyond the end of a month falls on that month's last day.
func NextPayDate(payDay int, today time.Time) time.Time {
	today = Day(today)
	candidate := clampedDate(today.Year(), today.Month(), payDay)
	if candidate.Before(today) {
		candidate = clampedDate(today.Year(), today.Month()+1, payDay)
	}
	return candidate
}

// DaysUntilPay is DaysUntil applied to NextPayDate.
func DaysUntilPay(payDay int, today time.Time) int {
	return DaysUntil(NextPayDate(payDay, today), today)
}

// YearlySalary is twelve monthly payments, rounded to cents.
func YearlySalary(monthly float64) float64 {
	return math.Round(monthly*12*100) / 100
}

// WorkedMinutes returns the minutes between two HH:MM clock times, or false
// when either is malformed or out is not after in.
func WorkedMinutes(workIn, workOut string) (int, bool) {
	in, err := time.Parse(TimeLayout, workIn)
	if err != nil {
		return 0, false
	}
	out, err := time.Parse(TimeLayout, workOut)
	if err != nil {
		return 0, false
	}
	if !out.After(in) {
		return 0, false
	}
	return int(out.Sub(in).Minutes()), true
}

func clampedDate(year int, month time.Month, day int) time.Time {
	// time.Date normalises month overflow, so month 13 is January next year.
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
