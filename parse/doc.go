// Package parse parses iCalendar (RFC 5545) data into Go structs.
//
// It parses VEVENT, VTODO and VJOURNAL components. Any other component block
// (such as VFREEBUSY, VTIMEZONE or VALARM) is rejected with
// ErrTemplateInvalidStartBlock. See the model package for data structures,
// and examples in this package for common entry points.
package parse
