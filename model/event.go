// Package model contains structs used throughout the project
package model

import (
	"time"

	"github.com/michael-gallo/simple-ical/rrule"
)

// The possible values for a VEVENT's STATUS field, note VTODO's STATUS field accepts different values
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusTentative EventStatus = "TENTATIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// EventTransp represents the possible values for a VEVENT's TRANSP field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
type EventTransp string

const (
	EventTranspOpaque      EventTransp = "OPAQUE"
	EventTranspTransparent EventTransp = "TRANSPARENT"
)

// An Event in the iCalendar format
// for more information see https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	// The unique identifier for the event.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
	UID string
	// a DTSTAMP property defines the date and time that the instance of the calendar component was created.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
	DTStamp time.Time
	// a short, one-line summary about the activity or journal entry.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.12
	Summary string
	// Used to capture lengthy textual descriptions associated with the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.5
	Description string
	// dtstart in the ICAL format
	// See the datetime specification for more information: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
	Start time.Time
	// dtend in the ICAL format, mutually exclusive with Duration
	// See the datetime specification for more information: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
	End time.Time
	// Duration of the event, mutually exclusive with End.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.5
	Duration time.Duration
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.7
	Location string

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
	// defines the overall status or confirmation for the calendar component.
	Status EventStatus

	// Specifies the revision sequence number of the calendar component within a sequence of revisions.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.4
	Sequence Sequence

	// Specifies whether this event is to be treated as consuming time on a busy/free search.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
	Transp EventTransp

	// Specifies the date and time that the information associated with the calendar component was last revised.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.3
	LastModified time.Time

	// Geo specifies latitude/longitude as a two-element slice.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.6
	Geo []float64

	// RRule is the recurrence rule governing this event's repetition, if any.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.3
	RRule *rrule.Rule

	// OPTIONAL, MAY occur more than once
	// Specifies non-processing information intended to provide a comment to the calendar user.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.4
	Comment []string
	// Specifies the categories that the event belongs to.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.2
	Categories []string
	// Contacts specifies the contact information for the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
	Contacts []Contact
}

// Occurrences returns the calendar-mode occurrence stream of e's recurrence
// rule anchored at Start. It returns nil if e does not recur.
func (e *Event) Occurrences() *rrule.Iterator {
	if e.RRule == nil {
		return nil
	}
	return rrule.GenerateCalendar(e.RRule, e.Start)
}
