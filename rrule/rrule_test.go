// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPointer[T any](v T) *T {
	return &v
}

func TestParseRuleValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Rule
	}{
		{
			name:  "daily with interval",
			input: "FREQ=DAILY;INTERVAL=2;COUNT=10",
			want:  &Rule{Freq: Daily, Interval: 2, Count: getPointer(10), Wkst: Monday},
		},
		{
			name:  "daily default interval",
			input: "FREQ=DAILY;COUNT=10",
			want:  &Rule{Freq: Daily, Interval: 1, Count: getPointer(10), Wkst: Monday},
		},
		{
			name:  "monthly on third-to-last day, forever",
			input: "FREQ=MONTHLY;BYMONTHDAY=-3",
			want:  &Rule{Freq: Monthly, Interval: 1, ByMonthDay: []int{-3}, Wkst: Monday},
		},
		{
			name:  "monthly on first and last day for 10 occurrences",
			input: "FREQ=MONTHLY;COUNT=10;BYMONTHDAY=1,-1",
			want:  &Rule{Freq: Monthly, Interval: 1, Count: getPointer(10), ByMonthDay: []int{1, -1}, Wkst: Monday},
		},
		{
			name:  "every tuesday, every other month",
			input: "FREQ=MONTHLY;INTERVAL=2;BYDAY=TU",
			want:  &Rule{Freq: Monthly, Interval: 2, ByDay: []ByDay{{Weekday: Tuesday}}, Wkst: Monday},
		},
		{
			name:  "every third year on the 1st, 100th, 200th day for 10 occurrences",
			input: "FREQ=YEARLY;INTERVAL=3;COUNT=10;BYYEARDAY=1,100,200",
			want:  &Rule{Freq: Yearly, Interval: 3, Count: getPointer(10), ByYearDay: []int{1, 100, 200}, Wkst: Monday},
		},
		{
			name:  "custom wkst",
			input: "FREQ=WEEKLY;WKST=SU;BYDAY=TU,SU",
			want: &Rule{Freq: Weekly, Interval: 1, Wkst: Sunday,
				ByDay: []ByDay{{Weekday: Tuesday}, {Weekday: Sunday}}},
		},
		{
			name:  "ordinal byday on monthly",
			input: "FREQ=MONTHLY;BYDAY=-1FR",
			want:  &Rule{Freq: Monthly, Interval: 1, Wkst: Monday, ByDay: []ByDay{{Ordinal: -1, Weekday: Friday}}},
		},
		{
			name:  "bysetpos with byday",
			input: "FREQ=MONTHLY;BYDAY=MO,TU,WE,TH,FR;BYSETPOS=-1",
			want: &Rule{Freq: Monthly, Interval: 1, Wkst: Monday,
				ByDay:    []ByDay{{Weekday: Monday}, {Weekday: Tuesday}, {Weekday: Wednesday}, {Weekday: Thursday}, {Weekday: Friday}},
				BySetPos: []int{-1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRule(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCause error
	}{
		{"invalid frequency", "FREQ=DALLY;INTERVAL=2;COUNT=10", ErrBadValue},
		{"missing frequency", "INTERVAL=1;COUNT=10", ErrFreqRequired},
		{"count and until both set", "FREQ=DAILY;COUNT=10;UNTIL=19730429T070000Z", ErrCountAndUntil},
		{"interval not positive", "FREQ=DAILY;INTERVAL=0;COUNT=10", ErrInvalidInterval},
		{"malformed pair", "FREQ=DAILY;INVALID", ErrBadValue},
		{"duplicate key", "FREQ=DAILY;FREQ=WEEKLY", ErrDuplicateKey},
		{"unknown key", "FREQ=DAILY;BYFOO=1", ErrUnknownKey},
		{"bysetpos without friend", "FREQ=DAILY;BYSETPOS=1", ErrBySetPosNeedsFriend},
		{"byweekno not yearly", "FREQ=MONTHLY;BYWEEKNO=3", ErrByWeekNoRequiresYearly},
		{"ordinal byday on weekly", "FREQ=WEEKLY;BYDAY=1MO", ErrOrdinalByDayRequiresMonthlyOrYearly},
		{"ordinal byday with byweekno", "FREQ=YEARLY;BYWEEKNO=10;BYDAY=1MO", ErrOrdinalByDayWithByWeekNo},
		{"empty list entry", "FREQ=DAILY;BYMONTHDAY=1,,3", ErrEmptyListEntry},
		{"bymonth out of range", "FREQ=YEARLY;BYMONTH=13", ErrBadValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRule(tc.input)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantCause), "got %v, want cause %v", err, tc.wantCause)
		})
	}
}

func TestRuleStringRoundTrip(t *testing.T) {
	inputs := []string{
		"FREQ=DAILY;INTERVAL=2;COUNT=10",
		"FREQ=MONTHLY;BYMONTHDAY=-3",
		"FREQ=MONTHLY;COUNT=10;BYMONTHDAY=1,-1",
		"FREQ=MONTHLY;INTERVAL=2;BYDAY=TU",
		"FREQ=YEARLY;INTERVAL=3;COUNT=10;BYYEARDAY=1,100,200",
		"FREQ=WEEKLY;WKST=SU;BYDAY=TU,SU",
		"FREQ=MONTHLY;BYDAY=-1FR",
		"FREQ=WEEKLY;BYDAY=MO,WE,FR;BYSETPOS=1;COUNT=4",
		"FREQ=YEARLY;UNTIL=19991231T235959Z;BYMONTH=1",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			r1, err := ParseRule(in)
			require.NoError(t, err)

			r2, err := ParseRule(r1.String())
			require.NoError(t, err)

			assert.Equal(t, r1, r2)
		})
	}
}

func TestNewRuleCopiesSlices(t *testing.T) {
	months := []int{1, 2}
	r, err := NewRule(Rule{Freq: Yearly, ByMonth: months})
	require.NoError(t, err)

	months[0] = 99
	assert.Equal(t, 1, r.ByMonth[0], "NewRule must defensively copy slice fields")
}
