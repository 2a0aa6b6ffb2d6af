// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"sort"
	"time"
)

// initialSeeds computes the starting candidate(s) for a period before any
// BY* rule is applied. For frequencies where no expanding BY* rule governs
// the day component, the seed reproduces the anchor's own day-of-period
// (and is dropped if that day does not exist — this is how a bare
// FREQ=MONTHLY anchored on the 31st, or FREQ=YEARLY anchored on Feb 29,
// naturally skips short periods).
func initialSeeds(r *Rule, period, anchor time.Time) []time.Time {
	h, m, s, ns := anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond()
	loc := anchor.Location()

	switch r.Freq {
	case Yearly:
		if hasDayExpand(r) {
			return []time.Time{time.Date(period.Year(), time.January, 1, h, m, s, ns, loc)}
		}
		t := time.Date(period.Year(), anchor.Month(), anchor.Day(), h, m, s, ns, loc)
		if t.Month() != anchor.Month() {
			return nil
		}
		return []time.Time{t}
	case Monthly:
		if hasDayExpand(r) {
			return []time.Time{time.Date(period.Year(), period.Month(), 1, h, m, s, ns, loc)}
		}
		t := time.Date(period.Year(), period.Month(), anchor.Day(), h, m, s, ns, loc)
		if t.Month() != period.Month() {
			return nil
		}
		return []time.Time{t}
	case Weekly:
		if len(r.ByDay) > 0 {
			return []time.Time{time.Date(period.Year(), period.Month(), period.Day(), h, m, s, ns, loc)}
		}
		offset := weekdayIndex(anchor.Weekday(), r.Wkst.Time())
		return []time.Time{time.Date(period.Year(), period.Month(), period.Day()+offset, h, m, s, ns, loc)}
	case Daily:
		return []time.Time{time.Date(period.Year(), period.Month(), period.Day(), h, m, s, ns, loc)}
	case Hourly:
		return []time.Time{time.Date(period.Year(), period.Month(), period.Day(), period.Hour(), m, s, ns, loc)}
	case Minutely:
		return []time.Time{time.Date(period.Year(), period.Month(), period.Day(), period.Hour(), period.Minute(), s, ns, loc)}
	default: // Secondly
		return []time.Time{period}
	}
}

// hasDayExpand reports whether some BY* rule will supply the day component
// itself, meaning the seed's own day is irrelevant.
func hasDayExpand(r *Rule) bool {
	return len(r.ByMonthDay) > 0 || len(r.ByYearDay) > 0 || len(r.ByWeekNo) > 0 || len(r.ByDay) > 0
}

func dedupSort(tt []time.Time) []time.Time {
	sort.Slice(tt, func(i, j int) bool { return tt[i].Before(tt[j]) })
	out := tt[:0]
	var last time.Time
	for i, t := range tt {
		if i > 0 && t.Equal(last) {
			continue
		}
		out = append(out, t)
		last = t
	}
	return out
}

func limitByMonth(tt []time.Time, months []int) []time.Time {
	if len(months) == 0 {
		return tt
	}
	set := intSet(months)
	out := tt[:0]
	for _, t := range tt {
		if set[int(t.Month())] {
			out = append(out, t)
		}
	}
	return out
}

func expandByMonth(tt []time.Time, months []int) []time.Time {
	if len(months) == 0 {
		return tt
	}
	out := make([]time.Time, 0, len(tt)*len(months))
	for _, t := range tt {
		for _, mo := range months {
			month := time.Month(mo)
			nt := time.Date(t.Year(), month, t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
			if nt.Month() != month {
				continue
			}
			out = append(out, nt)
		}
	}
	return out
}

// expandByWeekNo expands each seed into the 7 weekday instants of every
// specified week number, WKST-anchored. See spec's BYWEEKNO date-arithmetic
// rule.
func expandByWeekNo(tt []time.Time, weekNos []int, wkst time.Weekday) []time.Time {
	if len(weekNos) == 0 {
		return tt
	}
	out := make([]time.Time, 0, len(tt)*len(weekNos)*7)
	for _, t := range tt {
		for _, wn := range weekNos {
			start, ok := weekStartForNumber(t.Year(), wn, wkst)
			if !ok {
				continue
			}
			for d := 0; d < 7; d++ {
				nt := time.Date(start.Year(), start.Month(), start.Day()+d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
				out = append(out, nt)
			}
		}
	}
	return out
}

func limitByYearDay(tt []time.Time, yeardays []int) []time.Time {
	if len(yeardays) == 0 {
		return tt
	}
	out := tt[:0]
	for _, t := range tt {
		yday := t.YearDay()
		for _, yd := range yeardays {
			resolved, ok := resolveDayOfYear(t.Year(), yd)
			if ok && resolved == yday {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func expandByYearDay(tt []time.Time, yeardays []int) []time.Time {
	if len(yeardays) == 0 {
		return tt
	}
	out := make([]time.Time, 0, len(tt)*len(yeardays))
	for _, t := range tt {
		yearStart := time.Date(t.Year(), time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		for _, yd := range yeardays {
			resolved, ok := resolveDayOfYear(t.Year(), yd)
			if !ok {
				continue
			}
			out = append(out, yearStart.AddDate(0, 0, resolved-1))
		}
	}
	return out
}

func limitByMonthDay(tt []time.Time, monthdays []int) []time.Time {
	if len(monthdays) == 0 {
		return tt
	}
	out := tt[:0]
	for _, t := range tt {
		for _, md := range monthdays {
			resolved, ok := resolveDayOfMonth(t.Year(), t.Month(), md)
			if ok && resolved == t.Day() {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func expandByMonthDay(tt []time.Time, monthdays []int) []time.Time {
	if len(monthdays) == 0 {
		return tt
	}
	out := make([]time.Time, 0, len(tt)*len(monthdays))
	for _, t := range tt {
		for _, md := range monthdays {
			resolved, ok := resolveDayOfMonth(t.Year(), t.Month(), md)
			if !ok {
				continue
			}
			out = append(out, time.Date(t.Year(), t.Month(), resolved, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()))
		}
	}
	return out
}

func limitByDayWeekday(tt []time.Time, days []ByDay) []time.Time {
	if len(days) == 0 {
		return tt
	}
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d.Weekday.Time()] = true
	}
	out := tt[:0]
	for _, t := range tt {
		if set[t.Weekday()] {
			out = append(out, t)
		}
	}
	return out
}

// expandByDayWeekly expands each seed (a week-start instant) into one
// candidate per requested weekday of that week, preserving time-of-day.
func expandByDayWeekly(tt []time.Time, days []ByDay, wkst time.Weekday) []time.Time {
	if len(days) == 0 {
		return tt
	}
	out := make([]time.Time, 0, len(tt)*len(days))
	for _, t := range tt {
		base := weekStartOnOrBefore(t, wkst)
		for _, d := range days {
			offset := weekdayIndex(d.Weekday.Time(), wkst)
			out = append(out, time.Date(base.Year(), base.Month(), base.Day()+offset, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()))
		}
	}
	return out
}

// expandByDayInMonth expands each seed into every day of that seed's month
// matching one of the requested (unordered) weekdays.
func expandByDayInMonth(tt []time.Time, days []ByDay) []time.Time {
	if len(days) == 0 {
		return tt
	}
	out := []time.Time{}
	for _, t := range tt {
		n := daysInMonth(t.Year(), t.Month())
		for day := 1; day <= n; day++ {
			wd := time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, time.UTC).Weekday()
			for _, d := range days {
				if d.Weekday.Time() == wd {
					out = append(out, time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()))
					break
				}
			}
		}
	}
	return out
}

// expandByDayInYear expands each seed into every day of that seed's year
// matching one of the requested (unordered) weekdays.
func expandByDayInYear(tt []time.Time, days []ByDay) []time.Time {
	if len(days) == 0 {
		return tt
	}
	out := []time.Time{}
	for _, t := range tt {
		n := daysInYear(t.Year())
		yearStart := time.Date(t.Year(), time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		for yd := 0; yd < n; yd++ {
			day := yearStart.AddDate(0, 0, yd)
			for _, d := range days {
				if d.Weekday.Time() == day.Weekday() {
					out = append(out, day)
					break
				}
			}
		}
	}
	return out
}

// expandByOrdinalDayInMonth replaces each seed's day with the ordinal-th
// occurrence of each requested weekday within that seed's month.
func expandByOrdinalDayInMonth(tt []time.Time, days []ByDay) []time.Time {
	out := []time.Time{}
	for _, t := range tt {
		for _, d := range days {
			day, ok := nthWeekdayOfMonth(t.Year(), t.Month(), d.Weekday.Time(), d.Ordinal)
			if !ok {
				continue
			}
			out = append(out, time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()))
		}
	}
	return out
}

// expandByOrdinalDayInYear replaces each seed's day with the ordinal-th
// occurrence of each requested weekday within that seed's year.
func expandByOrdinalDayInYear(tt []time.Time, days []ByDay) []time.Time {
	out := []time.Time{}
	for _, t := range tt {
		for _, d := range days {
			yd, ok := nthWeekdayOfYear(t.Year(), d.Weekday.Time(), d.Ordinal)
			if !ok {
				continue
			}
			yearStart := time.Date(t.Year(), time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
			out = append(out, yearStart.AddDate(0, 0, yd-1))
		}
	}
	return out
}

func limitByHour(tt []time.Time, hours []int) []time.Time {
	if len(hours) == 0 {
		return tt
	}
	set := intSet(hours)
	out := tt[:0]
	for _, t := range tt {
		if set[t.Hour()] {
			out = append(out, t)
		}
	}
	return out
}

func expandByHour(tt []time.Time, hours []int) []time.Time {
	if len(hours) == 0 {
		return tt
	}
	out := make([]time.Time, 0, len(tt)*len(hours))
	for _, t := range tt {
		for _, h := range hours {
			out = append(out, time.Date(t.Year(), t.Month(), t.Day(), h, t.Minute(), t.Second(), t.Nanosecond(), t.Location()))
		}
	}
	return out
}

func limitByMinute(tt []time.Time, minutes []int) []time.Time {
	if len(minutes) == 0 {
		return tt
	}
	set := intSet(minutes)
	out := tt[:0]
	for _, t := range tt {
		if set[t.Minute()] {
			out = append(out, t)
		}
	}
	return out
}

func expandByMinute(tt []time.Time, minutes []int) []time.Time {
	if len(minutes) == 0 {
		return tt
	}
	out := make([]time.Time, 0, len(tt)*len(minutes))
	for _, t := range tt {
		for _, m := range minutes {
			out = append(out, time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), m, t.Second(), t.Nanosecond(), t.Location()))
		}
	}
	return out
}

func expandBySecond(tt []time.Time, seconds []int) []time.Time {
	if len(seconds) == 0 {
		return tt
	}
	out := make([]time.Time, 0, len(tt)*len(seconds))
	for _, t := range tt {
		for _, s := range seconds {
			out = append(out, time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), s, t.Nanosecond(), t.Location()))
		}
	}
	return out
}

func intSet(vals []int) map[int]bool {
	set := make(map[int]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}

// expandPeriod runs the full BY* expand/limit pipeline for a single period
// and returns the sorted, deduplicated candidate set (BYSETPOS is applied
// by the caller, after anchor filtering), per the frequency-specific
// expansion table.
func expandPeriod(r *Rule, period, anchor time.Time) []time.Time {
	tt := initialSeeds(r, period, anchor)
	if len(tt) == 0 {
		return nil
	}

	switch r.Freq {
	case Yearly:
		if len(r.ByMonth) > 0 {
			tt = expandByMonth(tt, r.ByMonth)
		}
		hasOrdinal, hasPlain := splitByDay(r.ByDay)
		switch {
		case len(r.ByWeekNo) > 0:
			tt = expandByWeekNo(tt, r.ByWeekNo, r.Wkst.Time())
			if len(r.ByYearDay) > 0 {
				tt = limitByYearDay(tt, r.ByYearDay)
			}
			if len(r.ByMonthDay) > 0 {
				tt = limitByMonthDay(tt, r.ByMonthDay)
			}
			if len(hasPlain) > 0 {
				tt = limitByDayWeekday(tt, hasPlain)
			}
		case len(r.ByYearDay) > 0:
			tt = expandByYearDay(tt, r.ByYearDay)
			if len(hasPlain) > 0 {
				tt = limitByDayWeekday(tt, hasPlain)
			}
		case len(r.ByMonthDay) > 0:
			tt = expandByMonthDay(tt, r.ByMonthDay)
			if len(hasPlain) > 0 {
				tt = limitByDayWeekday(tt, hasPlain)
			}
		case len(hasOrdinal) > 0:
			tt = expandByOrdinalDayInYear(tt, hasOrdinal)
		case len(hasPlain) > 0:
			if len(r.ByMonth) > 0 {
				tt = expandByDayInMonth(tt, hasPlain)
			} else {
				tt = expandByDayInYear(tt, hasPlain)
			}
		}
	case Monthly:
		hasOrdinal, hasPlain := splitByDay(r.ByDay)
		switch {
		case len(r.ByMonthDay) > 0:
			tt = expandByMonthDay(tt, r.ByMonthDay)
			if len(hasPlain) > 0 {
				tt = limitByDayWeekday(tt, hasPlain)
			}
		case len(hasOrdinal) > 0:
			tt = expandByOrdinalDayInMonth(tt, hasOrdinal)
		case len(hasPlain) > 0:
			tt = expandByDayInMonth(tt, hasPlain)
		}
	case Weekly:
		tt = expandByDayWeekly(tt, r.ByDay, r.Wkst.Time())
		tt = limitByMonth(tt, r.ByMonth)
	case Daily:
		tt = limitByMonth(tt, r.ByMonth)
		tt = limitByYearDay(tt, r.ByYearDay)
		tt = limitByMonthDay(tt, r.ByMonthDay)
		tt = limitByDayWeekday(tt, r.ByDay)
	case Hourly, Minutely, Secondly:
		tt = limitByMonth(tt, r.ByMonth)
		tt = limitByYearDay(tt, r.ByYearDay)
		tt = limitByMonthDay(tt, r.ByMonthDay)
		tt = limitByDayWeekday(tt, r.ByDay)
	}

	// BYHOUR: limit for SECONDLY/MINUTELY, expand otherwise.
	if r.Freq == Secondly || r.Freq == Minutely {
		tt = limitByHour(tt, r.ByHour)
	} else {
		tt = expandByHour(tt, r.ByHour)
	}

	// BYMINUTE: limit for SECONDLY, expand otherwise.
	if r.Freq == Secondly {
		tt = limitByMinute(tt, r.ByMinute)
	} else {
		tt = expandByMinute(tt, r.ByMinute)
	}

	// BYSECOND always expands.
	tt = expandBySecond(tt, r.BySecond)

	tt = dedupSort(tt)
	return tt
}

func splitByDay(days []ByDay) (ordinal, plain []ByDay) {
	for _, d := range days {
		if d.Ordinal != 0 {
			ordinal = append(ordinal, d)
		} else {
			plain = append(plain, d)
		}
	}
	return
}

// applySetPos selects the 1-indexed (or negatively indexed) entries from
// the sorted, deduplicated candidate set, re-sorted ascending. Multiple
// positions are the union of the selected candidates.
func applySetPos(tt []time.Time, positions []int) []time.Time {
	if len(positions) == 0 {
		return tt
	}
	n := len(tt)
	selected := make(map[int]bool, len(positions))
	for _, p := range positions {
		var idx int
		if p > 0 {
			idx = p - 1
		} else {
			idx = n + p
		}
		if idx >= 0 && idx < n {
			selected[idx] = true
		}
	}
	out := make([]time.Time, 0, len(selected))
	for i := 0; i < n; i++ {
		if selected[i] {
			out = append(out, tt[i])
		}
	}
	return out
}
