// Package calendar resolves which days of a month are holidays: every Sunday
// plus a configurable number of extra days taken from the end of the month.
package calendar

import (
	"sort"
	"time"
)

// DaysIn returns the number of calendar days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the weekday of a calendar day.
func Weekday(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Sundays returns the day numbers of every Sunday in the month, ascending.
func Sundays(year int, month time.Month) []int {
	var days []int
	for d := 1; d <= DaysIn(year, month); d++ {
		if Weekday(year, month, d) == time.Sunday {
			days = append(days, d)
		}
	}
	return days
}

// Holidays returns the sorted union of every Sunday and the first extra
// non-Sunday days found scanning backward from the last day of the month.
func Holidays(year int, month time.Month, extra int) []int {
	holidays := Sundays(year, month)
	isHoliday := make(map[int]bool, len(holidays)+extra)
	for _, d := range holidays {
		isHoliday[d] = true
	}

	for d := DaysIn(year, month); d >= 1 && extra > 0; d-- {
		if isHoliday[d] {
			continue
		}
		holidays = append(holidays, d)
		isHoliday[d] = true
		extra--
	}

	sort.Ints(holidays)
	return holidays
}

// WorkingDays returns the number of non-holiday days in the month.
func WorkingDays(year int, month time.Month, extra int) int {
	return DaysIn(year, month) - len(Holidays(year, month, extra))
}
