// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "time"

// daysInMonth returns the number of days in the given month/year, respecting
// leap years.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysInYear returns 366 for a leap year, 365 otherwise.
func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// weekdayIndex returns wd's position relative to wkst, 0..6.
func weekdayIndex(wd, wkst time.Weekday) int {
	return (int(wd) - int(wkst) + 7) % 7
}

// weekStartOnOrBefore returns the date of the wkst-day of the week
// containing t (i.e. t's own date if t already falls on wkst).
func weekStartOnOrBefore(t time.Time, wkst time.Weekday) time.Time {
	diff := weekdayIndex(t.Weekday(), wkst)
	return dateOnly(t).AddDate(0, 0, -diff)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isoWeekOneStart returns the wkst-aligned start date of "week 1" of year,
// per RFC 5545 §3.3.10: the earliest wkst-anchored week containing at least
// 4 days of the new year.
func isoWeekOneStart(year int, wkst time.Weekday) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	start := weekStartOnOrBefore(jan1, wkst)
	daysOfNewYearInWeek := 7 - int(jan1.Sub(start).Hours()/24)
	if daysOfNewYearInWeek < 4 {
		start = start.AddDate(0, 0, 7)
	}
	return start
}

// weeksInYear returns how many wkst-anchored weeks year has.
func weeksInYear(year int, wkst time.Weekday) int {
	this := isoWeekOneStart(year, wkst)
	next := isoWeekOneStart(year+1, wkst)
	return int(next.Sub(this).Hours() / 24 / 7)
}

// weekStartForNumber resolves a (possibly negative) BYWEEKNO value into the
// wkst-day that begins that week of year. Returns ok=false if the week
// number is out of range for the year.
func weekStartForNumber(year int, weekNo int, wkst time.Weekday) (time.Time, bool) {
	total := weeksInYear(year, wkst)
	idx := weekNo
	if idx < 0 {
		idx = total + weekNo + 1
	}
	if idx < 1 || idx > total {
		return time.Time{}, false
	}
	return isoWeekOneStart(year, wkst).AddDate(0, 0, (idx-1)*7), true
}

// resolveDayOfMonth turns a (possibly negative) BYMONTHDAY value into a
// 1-based day number for the given year/month. Returns ok=false if the
// resolved day does not exist in that month (e.g. 31 in February).
func resolveDayOfMonth(year int, month time.Month, day int) (int, bool) {
	n := daysInMonth(year, month)
	d := day
	if d < 0 {
		d = n + d + 1
	}
	if d < 1 || d > n {
		return 0, false
	}
	return d, true
}

// resolveDayOfYear turns a (possibly negative) BYYEARDAY value into a
// 1-based day-of-year number. Returns ok=false if out of range.
func resolveDayOfYear(year int, day int) (int, bool) {
	n := daysInYear(year)
	d := day
	if d < 0 {
		d = n + d + 1
	}
	if d < 1 || d > n {
		return 0, false
	}
	return d, true
}

// nthWeekdayOfMonth returns the date of the ordinal-th occurrence of wd in
// the given month (positive counts from the start, negative from the end).
// ok is false if that ordinal does not occur in the month.
func nthWeekdayOfMonth(year int, month time.Month, wd time.Weekday, ordinal int) (int, bool) {
	n := daysInMonth(year, month)
	if ordinal > 0 {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		offset := weekdayIndex(wd, first.Weekday())
		day := 1 + offset + (ordinal-1)*7
		if day > n {
			return 0, false
		}
		return day, true
	}
	last := time.Date(year, month, n, 0, 0, 0, 0, time.UTC)
	offset := weekdayIndex(last.Weekday(), wd)
	day := n - offset + (ordinal+1)*7
	if day < 1 {
		return 0, false
	}
	return day, true
}

// nthWeekdayOfYear returns the day-of-year (1-based) of the ordinal-th
// occurrence of wd within the given year.
func nthWeekdayOfYear(year int, wd time.Weekday, ordinal int) (int, bool) {
	n := daysInYear(year)
	if ordinal > 0 {
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		offset := weekdayIndex(wd, jan1.Weekday())
		day := 1 + offset + (ordinal-1)*7
		if day > n {
			return 0, false
		}
		return day, true
	}
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	offset := weekdayIndex(dec31.Weekday(), wd)
	day := n - offset + (ordinal+1)*7
	if day < 1 {
		return 0, false
	}
	return day, true
}
