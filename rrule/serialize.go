// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"strconv"
	"strings"
)

// String renders r back into canonical RRULE wire form: KEY=VALUE pairs in
// the fixed order FREQ,INTERVAL,COUNT,UNTIL,BYSECOND,BYMINUTE,BYHOUR,BYDAY,
// BYMONTHDAY,BYYEARDAY,BYWEEKNO,BYMONTH,BYSETPOS,WKST. Default INTERVAL=1
// and absent WKST are omitted. parse(r.String()) reproduces r.
func (r *Rule) String() string {
	var b strings.Builder
	write := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value)
	}

	write("FREQ", string(r.Freq))
	if r.Interval != 1 {
		write("INTERVAL", strconv.Itoa(r.Interval))
	}
	if r.Count != nil {
		write("COUNT", strconv.Itoa(*r.Count))
	}
	if r.Until != nil {
		write("UNTIL", formatUntil(r.Until))
	}
	if len(r.BySecond) > 0 {
		write("BYSECOND", joinInts(r.BySecond))
	}
	if len(r.ByMinute) > 0 {
		write("BYMINUTE", joinInts(r.ByMinute))
	}
	if len(r.ByHour) > 0 {
		write("BYHOUR", joinInts(r.ByHour))
	}
	if len(r.ByDay) > 0 {
		write("BYDAY", joinByDay(r.ByDay))
	}
	if len(r.ByMonthDay) > 0 {
		write("BYMONTHDAY", joinInts(r.ByMonthDay))
	}
	if len(r.ByYearDay) > 0 {
		write("BYYEARDAY", joinInts(r.ByYearDay))
	}
	if len(r.ByWeekNo) > 0 {
		write("BYWEEKNO", joinInts(r.ByWeekNo))
	}
	if len(r.ByMonth) > 0 {
		write("BYMONTH", joinInts(r.ByMonth))
	}
	if len(r.BySetPos) > 0 {
		write("BYSETPOS", joinInts(r.BySetPos))
	}
	if r.Wkst != "" && r.Wkst != Monday {
		write("WKST", string(r.Wkst))
	}

	return b.String()
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinByDay(days []ByDay) string {
	parts := make([]string, len(days))
	for i, d := range days {
		if d.Ordinal == 0 {
			parts[i] = string(d.Weekday)
		} else {
			parts[i] = strconv.Itoa(d.Ordinal) + string(d.Weekday)
		}
	}
	return strings.Join(parts, ",")
}

// untilUTCLayout renders a UTC UNTIL in the YYYYMMDDTHHMMSSZ form parseUntil
// accepts.
const untilUTCLayout = "20060102T150405Z"

func formatUntil(u *Until) string {
	switch u.Kind {
	case UntilDate:
		return u.Time.Format(untilDateLayout)
	case UntilUTC:
		return u.Time.Format(untilUTCLayout)
	default:
		return u.Time.Format(untilFloatingLayout)
	}
}
