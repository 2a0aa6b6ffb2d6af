// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"errors"
	"fmt"
)

// Sentinel causes. ParseError.Cause wraps one of these so callers can test
// the failure class with errors.Is while ParseError still carries the
// offending key/value for a precise message.
var (
	ErrUnknownKey                          = errors.New("unknown key")
	ErrDuplicateKey                        = errors.New("duplicate key")
	ErrBadValue                            = errors.New("value not allowed")
	ErrFreqRequired                        = errors.New("FREQ is required and must be a recognized frequency")
	ErrInvalidInterval                     = errors.New("INTERVAL must be a positive integer")
	ErrCountAndUntil                       = errors.New("COUNT and UNTIL cannot both be set")
	ErrBySetPosNeedsFriend                 = errors.New("BYSETPOS requires another BY* rule to be present")
	ErrByWeekNoRequiresYearly               = errors.New("BYWEEKNO is only legal with FREQ=YEARLY")
	ErrOrdinalByDayRequiresMonthlyOrYearly = errors.New("an ordinal BYDAY prefix requires FREQ=MONTHLY or FREQ=YEARLY")
	ErrOrdinalByDayWithByWeekNo            = errors.New("ordinal BYDAY cannot be combined with BYWEEKNO")
	ErrEmptyListEntry                      = errors.New("empty entry in comma-separated list")

	// ErrSafetyCap is the only error the occurrence engine itself can
	// surface; all other structural impossibilities produce an empty
	// sequence rather than an error.
	ErrSafetyCap = errors.New("engine: safety cap exceeded without reaching COUNT, UNTIL, or the end of range")
)

// ParseError describes why ParseRule rejected an RRULE string. Key names
// the offending parameter ("<cross>" for a cross-parameter rule); Value, if
// non-empty, is the raw text that failed to validate.
type ParseError struct {
	Key   string
	Value string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("rrule: %s: %v", e.Key, e.Cause)
	}
	return fmt.Sprintf("rrule: %s: value %q is not allowed: %v", e.Key, e.Value, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LimitKind identifies why an occurrence stream stopped.
type LimitKind int

const (
	LimitCount LimitKind = iota
	LimitUntil
	LimitSafetyCap
)

// LimitError is informational: the engine terminates normally on
// LimitCount/LimitUntil. Only LimitSafetyCap is ever returned from Err().
type LimitError struct {
	Kind     LimitKind
	Position int
}

func (e *LimitError) Error() string {
	switch e.Kind {
	case LimitCount:
		return "rrule: COUNT reached"
	case LimitUntil:
		return "rrule: UNTIL reached"
	default:
		return fmt.Sprintf("rrule: safety cap exceeded after %d occurrences", e.Position)
	}
}

func (e *LimitError) Unwrap() error {
	if e.Kind == LimitSafetyCap {
		return ErrSafetyCap
	}
	return nil
}
