// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"strconv"
	"strings"
	"time"

	"github.com/michael-gallo/simple-ical/icaldur"
)

// ParseRule takes an iCal recurrence rule string and parses it into a Rule.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
//
// Example for an event that happens daily for 10 days:
//
//	ParseRule("FREQ=DAILY;INTERVAL=1;COUNT=10")
//
// The parser is atomic: on any error no Rule is produced, and the returned
// error is a *ParseError naming the offending key.
func ParseRule(s string) (*Rule, error) {
	var r Rule
	r.Interval = 1
	r.Wkst = Monday

	seen := make(map[string]bool)
	var sawFreq bool

	for _, part := range strings.Split(s, ";") {
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, &ParseError{Key: "<cross>", Value: part, Cause: ErrBadValue}
		}
		key = strings.ToUpper(key)
		if seen[key] {
			return nil, &ParseError{Key: key, Cause: ErrDuplicateKey}
		}
		seen[key] = true

		if err := assignField(&r, key, value); err != nil {
			return nil, err
		}
		if key == "FREQ" {
			sawFreq = true
		}
	}

	if !sawFreq {
		return nil, &ParseError{Key: "FREQ", Cause: ErrFreqRequired}
	}

	return NewRule(r)
}

func assignField(r *Rule, key, value string) error {
	switch key {
	case "FREQ":
		freq := Frequency(strings.ToUpper(value))
		if !freq.valid() {
			return &ParseError{Key: key, Value: value, Cause: ErrBadValue}
		}
		r.Freq = freq
	case "INTERVAL":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: ErrBadValue}
		}
		if n <= 0 {
			return &ParseError{Key: key, Value: value, Cause: ErrInvalidInterval}
		}
		r.Interval = n
	case "COUNT":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return &ParseError{Key: key, Value: value, Cause: ErrBadValue}
		}
		r.Count = &n
	case "UNTIL":
		u, err := parseUntil(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.Until = u
	case "WKST":
		wd := Weekday(strings.ToUpper(value))
		if !wd.valid() {
			return &ParseError{Key: key, Value: value, Cause: ErrBadValue}
		}
		r.Wkst = wd
	case "BYSECOND":
		vals, err := parseIntList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.BySecond = vals
	case "BYMINUTE":
		vals, err := parseIntList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.ByMinute = vals
	case "BYHOUR":
		vals, err := parseIntList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.ByHour = vals
	case "BYMONTHDAY":
		vals, err := parseIntList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.ByMonthDay = vals
	case "BYYEARDAY":
		vals, err := parseIntList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.ByYearDay = vals
	case "BYWEEKNO":
		vals, err := parseIntList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.ByWeekNo = vals
	case "BYMONTH":
		vals, err := parseIntList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.ByMonth = vals
	case "BYSETPOS":
		vals, err := parseIntList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.BySetPos = vals
	case "BYDAY":
		days, err := parseByDayList(value)
		if err != nil {
			return &ParseError{Key: key, Value: value, Cause: err}
		}
		r.ByDay = days
	default:
		return &ParseError{Key: key, Cause: ErrUnknownKey}
	}
	return nil
}

// parseIntList parses a comma-separated list of (possibly signed) integers.
// Empty entries ("1,,3") are rejected.
func parseIntList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, ErrEmptyListEntry
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, ErrBadValue
		}
		out = append(out, n)
	}
	return out, nil
}

// parseByDayList parses a comma-separated BYDAY value: each entry matches
// /^[+-]?\d{0,3}(MO|TU|WE|TH|FR|SA|SU)$/i. A zero ordinal is rejected; an
// absent ordinal is encoded as 0 ("no ordinal").
func parseByDayList(value string) ([]ByDay, error) {
	parts := strings.Split(value, ",")
	out := make([]ByDay, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, ErrEmptyListEntry
		}
		bd, err := parseByDay(p)
		if err != nil {
			return nil, err
		}
		out = append(out, bd)
	}
	return out, nil
}

func parseByDay(s string) (ByDay, error) {
	if len(s) < 2 {
		return ByDay{}, ErrBadValue
	}
	wdStr := strings.ToUpper(s[len(s)-2:])
	ordStr := s[:len(s)-2]

	wd := Weekday(wdStr)
	if !wd.valid() {
		return ByDay{}, ErrBadValue
	}

	if ordStr == "" {
		return ByDay{Weekday: wd}, nil
	}

	ordinal, err := strconv.Atoi(ordStr)
	if err != nil {
		return ByDay{}, ErrBadValue
	}
	if ordinal == 0 || ordinal < -53 || ordinal > 53 {
		return ByDay{}, ErrBadValue
	}
	return ByDay{Ordinal: ordinal, Weekday: wd}, nil
}

const (
	untilDateLayout     = "20060102"
	untilFloatingLayout = "20060102T150405"
)

// parseUntil parses the value of an UNTIL rule part into one of the three
// RFC 5545 date-time flavors. The UTC case shares its layout with DTSTART/
// DTEND/DTSTAMP parsing elsewhere in the module, so it defers to
// icaldur.ParseIcalTime rather than repeating the layout string here.
func parseUntil(value string) (*Until, error) {
	if strings.HasSuffix(value, "Z") {
		t, err := icaldur.ParseIcalTime(value)
		if err != nil {
			return nil, ErrBadValue
		}
		return &Until{Time: t, Kind: UntilUTC}, nil
	}
	if len(value) == len(untilFloatingLayout) {
		t, err := time.Parse(untilFloatingLayout, value)
		if err != nil {
			return nil, ErrBadValue
		}
		return &Until{Time: t, Kind: UntilFloating}, nil
	}
	t, err := time.Parse(untilDateLayout, value)
	if err != nil {
		return nil, ErrBadValue
	}
	return &Until{Time: t, Kind: UntilDate}, nil
}
