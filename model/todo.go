// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"net/url"
	"time"

	"github.com/michael-gallo/simple-ical/rrule"
)

// TodoClass represents the possible values for a VTODO's CLASS field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.3
type TodoClass string

const (
	TodoClassPublic       TodoClass = "PUBLIC"
	TodoClassPrivate      TodoClass = "PRIVATE"
	TodoClassConfidential TodoClass = "CONFIDENTIAL"
)

// TodoStatus represents the possible values for a VTODO's STATUS field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type TodoStatus string

const (
	TodoStatusNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoStatusCompleted   TodoStatus = "COMPLETED"
	TodoStatusInProcess   TodoStatus = "IN-PROCESS"
	TodoStatusCancelled   TodoStatus = "CANCELLED"
)

// TodoTransp represents the possible values for a VTODO's TRANSP field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
type TodoTransp string

const (
	TodoTranspOpaque      TodoTransp = "OPAQUE"
	TodoTranspTransparent TodoTransp = "TRANSPARENT"
)

// Todo represents a VTODO component in the iCalendar format.
// A VTODO is a grouping of component properties that describe a to-do,
// appointment, or journal entry.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
	// The unique identifier for the to-do.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
	UID string

	// a DTSTAMP property defines the date and time that the instance of the calendar component was created.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
	// Note: This is technically mandatory in RFC 5545, however I have seen examples in the wild where it is not present.
	// I will not be enforcing this requirement in the parser. I may at some point in the future add a strict mode.
	DTStamp time.Time

	Class           TodoClass
	Completed       time.Time
	Created         time.Time
	Description     []string
	DTStart         time.Time
	Due             time.Time
	Duration        time.Duration
	Geo             []float64
	LastModified    time.Time
	Location        string
	PercentComplete int
	Priority        int
	RecurrenceID    time.Time
	Sequence        int
	Status          TodoStatus
	Summary         string
	Transp          TodoTransp
	URL             string

	// Attach provides the capability to associate a document object with the to-do.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.1
	Attach []string
	// Attendees specifies the participants that are invited to the to-do.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
	Attendees []url.URL
	// Categories specifies the categories that the to-do belongs to.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.2
	Categories []string
	// Comment specifies non-processing information intended to provide a comment to the calendar user.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.4
	Comment []string
	// Contacts specifies the contact information for the to-do.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
	Contacts []string
	// ExceptionDates specifies the list of date/time exceptions for a recurring to-do.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.1
	ExceptionDates []time.Time
	// RequestStatus specifies the status code returned for a scheduling request.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.8.3
	RequestStatus []string
	// Related specifies a relationship or reference between one calendar component and another.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.5
	Related []string
	// Resources defines the equipment or resources anticipated for the to-do.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.10
	Resources []string
	// Rdate specifies the list of date/time values for recurring to-dos.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.2
	Rdate []time.Time

	// RRule is the recurrence rule governing this to-do's repetition, if any.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.3
	RRule *rrule.Rule
}

// Occurrences returns the calendar-mode occurrence stream of t's recurrence
// rule anchored at Due. It returns nil if t does not recur.
func (t *Todo) Occurrences() *rrule.Iterator {
	if t.RRule == nil {
		return nil
	}
	return rrule.GenerateCalendar(t.RRule, t.Due)
}
