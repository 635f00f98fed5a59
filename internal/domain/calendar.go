package domain

import (
	"fmt"
	"time"
)

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly drops the clock portion of t, keeping its calendar day.
func DateOnly(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// NextBusinessDay walks forward from date one calendar day at a time and
// returns the day on which the n-th weekday (Monday-Friday) is reached.
// n below 1 is treated as 1.
func NextBusinessDay(date time.Time, n int) time.Time {
	if n < 1 {
		n = 1
	}
	d := DateOnly(date)
	for n > 0 {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n--
		}
	}
	return d
}

// LastDayOfMonth returns the last calendar day of date's month.
func LastDayOfMonth(date time.Time) time.Time {
	return Date(date.Year(), date.Month()+1, 0)
}

// MonthStart returns the first day of date's month.
func MonthStart(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), 1)
}

// MonthName returns the full English month name, e.g. "March".
func MonthName(date time.Time) string {
	return date.Month().String()
}

// MonthYear returns the MMYYYY form used in journal numbers.
func MonthYear(date time.Time) string {
	return date.Format("012006")
}

// MonthKey returns the MM/YYYY grouping key.
func MonthKey(date time.Time) string {
	return date.Format("01/2006")
}

// MonthLabel returns "<Month> <YYYY>".
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(date), date.Year())
}

// NextMondayOnOrAfter returns date itself when it is a Monday, otherwise the
// following Monday.
func NextMondayOnOrAfter(date time.Time) time.Time {
	d := DateOnly(date)
	offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// Common output layouts.
const (
	LayoutHuman    = "01/02/2006"
	LayoutISO      = "2006-01-02"
	LayoutFileDate = "01022006"
	LayoutShort    = "010206"
	LayoutShortUS  = "01/02/06"
)
