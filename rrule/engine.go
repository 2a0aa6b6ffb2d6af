// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "time"

const (
	// defaultSafetyCap bounds emission when a rule has no COUNT, UNTIL, or
	// caller-supplied range end — otherwise an unbounded rule pulled to
	// completion (e.g. collected into a slice) would never terminate.
	defaultSafetyCap = 10000

	// maxEmptyPeriods bounds how many consecutive periods may produce zero
	// candidates before the engine declares the series structurally empty.
	maxEmptyPeriods = 5000
)

// Mode selects how the anchor itself is treated. See spec §4.3 "Anchor
// handling".
type Mode int

const (
	// ModePure only emits the anchor if it independently satisfies the
	// rule. This is the default for Generate and is always used by
	// IsMember.
	ModePure Mode = iota
	// ModeCalendar prepends the anchor when it would not otherwise match,
	// matching the iCalendar convention that DTSTART is always the first
	// instance of a recurring component.
	ModeCalendar
)

// Iterator is a pull-based, non-restartable occurrence stream. Call Next
// until it returns false, then check Err for an abnormal stop.
type Iterator struct {
	rule   *Rule
	anchor time.Time

	mode       Mode
	rangeStart *time.Time
	rangeEnd   *time.Time
	limit      int

	internalCap int

	periodStart time.Time
	queue       []time.Time
	qi          int
	emitted     int
	done        bool
	err         error

	calendarPrefixDone bool
}

// Generate returns the lazy, strictly ascending occurrence stream of rule
// anchored at anchor, in pure mode.
func Generate(rule *Rule, anchor time.Time) *Iterator {
	return newIterator(rule, anchor, ModePure, nil, nil, 0)
}

// GenerateRange restricts Generate's output to [rangeStart, rangeEnd]
// inclusive. The anchor remains the canonical starting point for the
// rule's internal cadence; only emission is filtered.
func GenerateRange(rule *Rule, anchor, rangeStart, rangeEnd time.Time) *Iterator {
	return newIterator(rule, anchor, ModePure, &rangeStart, &rangeEnd, 0)
}

// GenerateCap returns a limit-bounded prefix of Generate's output.
func GenerateCap(rule *Rule, anchor time.Time, limit int) *Iterator {
	return newIterator(rule, anchor, ModePure, nil, nil, limit)
}

// GenerateCalendar is the calendar-mode entry point used by the VEVENT/VTODO
// bridge (spec §6): the anchor is prepended to the output if it does not
// already match the rule.
func GenerateCalendar(rule *Rule, anchor time.Time) *Iterator {
	return newIterator(rule, anchor, ModeCalendar, nil, nil, 0)
}

func newIterator(rule *Rule, anchor time.Time, mode Mode, rangeStart, rangeEnd *time.Time, limit int) *Iterator {
	it := &Iterator{
		rule:        rule,
		anchor:      anchor,
		mode:        mode,
		rangeStart:  rangeStart,
		rangeEnd:    rangeEnd,
		limit:       limit,
		periodStart: firstPeriod(rule, anchor),
	}
	if rule.Count == nil && rule.Until == nil && rangeEnd == nil && limit <= 0 {
		it.internalCap = defaultSafetyCap
	}
	return it
}

// Next advances the stream. ok is false once the stream is exhausted;
// callers should then inspect Err.
func (it *Iterator) Next() (time.Time, bool) {
	if it.done {
		return time.Time{}, false
	}

	if it.mode == ModeCalendar && !it.calendarPrefixDone {
		it.calendarPrefixDone = true
		if !isMemberOfPeriod(it.rule, it.anchor, it.anchor) {
			if t, ok := it.checkLimitsAndEmit(it.anchor); ok {
				return t, true
			}
			return time.Time{}, false
		}
	}

	for {
		for it.qi < len(it.queue) {
			t := it.queue[it.qi]
			it.qi++
			if out, ok := it.checkLimitsAndEmit(t); ok {
				return out, true
			}
			if it.done {
				return time.Time{}, false
			}
		}
		if !it.advance() {
			it.done = true
			return time.Time{}, false
		}
	}
}

// checkLimitsAndEmit applies COUNT/UNTIL/range-end/safety-cap checks to a
// single candidate, in the order RFC 5545's recurrence state machine checks
// them on pop. It sets it.done and it.err as a side effect when a terminal
// limit is hit.
func (it *Iterator) checkLimitsAndEmit(t time.Time) (time.Time, bool) {
	if it.rule.Count != nil && it.emitted >= *it.rule.Count {
		it.done = true
		return time.Time{}, false
	}
	if it.rule.Until != nil && afterUntil(t, it.rule.Until) {
		it.done = true
		return time.Time{}, false
	}
	if it.rangeEnd != nil && t.After(*it.rangeEnd) {
		it.done = true
		return time.Time{}, false
	}
	if it.internalCap > 0 && it.emitted >= it.internalCap {
		it.done = true
		it.err = &LimitError{Kind: LimitSafetyCap, Position: it.emitted}
		return time.Time{}, false
	}
	if it.limit > 0 && it.emitted >= it.limit {
		it.done = true
		return time.Time{}, false
	}
	it.emitted++
	return t, true
}

// advance computes the next non-empty period's candidate queue. It returns
// false if the series is structurally exhausted (maxEmptyPeriods reached
// with no survivors).
func (it *Iterator) advance() bool {
	empty := 0
	for {
		cands := expandPeriod(it.rule, it.periodStart, it.anchor)
		cands = filterAnchorRange(cands, it.anchor, nil)
		cands = applySetPos(cands, it.rule.BySetPos)
		it.periodStart = advancePeriodTime(it.rule, it.periodStart)

		if it.rangeStart != nil {
			// Occurrences before rangeStart are not emitted but still
			// count toward COUNT.
			inRange := filterAnchorRange(cands, it.anchor, it.rangeStart)
			it.emitted += len(cands) - len(inRange)
			cands = inRange
		}

		if len(cands) > 0 {
			it.queue = cands
			it.qi = 0
			return true
		}

		empty++
		if empty >= maxEmptyPeriods {
			return false
		}
	}
}

// Err returns the only error the engine can surface: a safety-cap breach.
// All other structural impossibilities (a rule that can never fire) end the
// stream normally with ok=false and a nil error.
func (it *Iterator) Err() error { return it.err }

func filterAnchorRange(tt []time.Time, anchor time.Time, rangeStart *time.Time) []time.Time {
	out := tt[:0]
	for _, t := range tt {
		if t.Before(anchor) {
			continue
		}
		if rangeStart != nil && t.Before(*rangeStart) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func afterUntil(t time.Time, u *Until) bool {
	if u.Kind == UntilUTC {
		return t.After(u.Time)
	}
	cutoff := time.Date(u.Time.Year(), u.Time.Month(), u.Time.Day(), u.Time.Hour(), u.Time.Minute(), u.Time.Second(), u.Time.Nanosecond(), t.Location())
	return t.After(cutoff)
}

// firstPeriod returns the period (per FREQ) containing anchor.
func firstPeriod(r *Rule, anchor time.Time) time.Time {
	switch r.Freq {
	case Yearly:
		return time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
	case Monthly:
		return time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	case Weekly:
		return weekStartOnOrBefore(anchor, r.Wkst.Time())
	case Daily:
		return dateOnly(anchor)
	case Hourly:
		return time.Date(anchor.Year(), anchor.Month(), anchor.Day(), anchor.Hour(), 0, 0, 0, anchor.Location())
	case Minutely:
		return time.Date(anchor.Year(), anchor.Month(), anchor.Day(), anchor.Hour(), anchor.Minute(), 0, 0, anchor.Location())
	default: // Secondly
		return time.Date(anchor.Year(), anchor.Month(), anchor.Day(), anchor.Hour(), anchor.Minute(), anchor.Second(), 0, anchor.Location())
	}
}

// advancePeriodTime steps a period start forward by r.Interval periods.
func advancePeriodTime(r *Rule, period time.Time) time.Time {
	switch r.Freq {
	case Yearly:
		return period.AddDate(r.Interval, 0, 0)
	case Monthly:
		return period.AddDate(0, r.Interval, 0)
	case Weekly:
		return period.AddDate(0, 0, 7*r.Interval)
	case Daily:
		return period.AddDate(0, 0, r.Interval)
	case Hourly:
		return period.Add(time.Duration(r.Interval) * time.Hour)
	case Minutely:
		return period.Add(time.Duration(r.Interval) * time.Minute)
	default: // Secondly
		return period.Add(time.Duration(r.Interval) * time.Second)
	}
}

// isMemberOfPeriod reports whether candidate survives the BY* pipeline,
// BYSETPOS, and the anchor floor for the single period containing it —
// without consulting COUNT or UNTIL. Used by calendar-mode's anchor check.
func isMemberOfPeriod(r *Rule, anchor, candidate time.Time) bool {
	period := firstPeriod(r, candidate)
	cands := expandPeriod(r, period, anchor)
	cands = filterAnchorRange(cands, anchor, nil)
	cands = applySetPos(cands, r.BySetPos)
	for _, c := range cands {
		if c.Equal(candidate) {
			return true
		}
	}
	return false
}

// IsMember reports whether candidate would appear in the unbounded Generate
// sequence for rule anchored at anchor. It always uses pure mode.
func IsMember(rule *Rule, anchor, candidate time.Time) bool {
	if candidate.Before(anchor) {
		return false
	}
	if rule.Until != nil && afterUntil(candidate, rule.Until) {
		return false
	}

	it := GenerateRange(rule, anchor, anchor, candidate)
	for {
		t, ok := it.Next()
		if !ok {
			return false
		}
		if t.Equal(candidate) {
			return true
		}
		if t.After(candidate) {
			return false
		}
	}
}
