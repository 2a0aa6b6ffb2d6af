package parse

import "github.com/michael-gallo/simple-ical/model"

// parseCalendarProperty parses a single VCALENDAR-level property line. RRULE
// only ever appears inside a VEVENT/VTODO/VJOURNAL block, never here, so this
// function stays limited to the four calendar-level properties RFC 5545
// defines at this nesting depth.
func parseCalendarProperty(propertyName string, value string, _ map[string]string, calendar *model.Calendar) error {
	switch propertyName {
	case "VERSION":
		return setOnceProperty(&calendar.Version, value, propertyName, "VCALENDAR")
	case "PRODID":
		return setOnceProperty(&calendar.ProdID, value, propertyName, "VCALENDAR")
	case "CALSCALE":
		return setOnceProperty(&calendar.CalScale, value, propertyName, "VCALENDAR")
	case "METHOD":
		return setOnceProperty(&calendar.Method, value, propertyName, "VCALENDAR")
	}
	return nil
}

func validateCalendar(calendar *model.Calendar) error {
	if calendar.Version == "" {
		return ErrMissingCalendarVersionProperty
	}
	if calendar.ProdID == "" {
		return ErrMissingCalendarProdIDProperty
	}
	return nil
}
