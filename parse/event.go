package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/michael-gallo/simple-ical/model"
	"github.com/michael-gallo/simple-ical/rrule"
)

const eventLocation = "Event"

// parseEventProperty parses a single property line and adds it to the provided event.
func parseEventProperty(propertyName string, value string, params map[string]string, event *model.Event) error {
	switch model.EventToken(propertyName) {
	case model.EventTokenDTStamp:
		return setOnceTimeProperty(&event.DTStamp, value, propertyName, eventLocation)
	case model.EventTokenUID:
		return setOnceProperty(&event.UID, value, propertyName, eventLocation)
	case model.EventTokenSummary:
		return setOnceProperty(&event.Summary, value, propertyName, eventLocation)
	case model.EventTokenDescription:
		return setOnceProperty(&event.Description, value, propertyName, eventLocation)
	case model.EventTokenDtstart:
		return setOnceTimeProperty(&event.Start, value, propertyName, eventLocation)
	case model.EventTokenLocation:
		return setOnceProperty(&event.Location, value, propertyName, eventLocation)
	case model.EventTokenStatus:
		event.Status = model.EventStatus(value)
	case model.EventTokenSequence:
		return setOnceIntProperty(&event.Sequence, value, propertyName, eventLocation)
	case model.EventTokenTransp:
		return setOnceProperty(&event.Transp, model.EventTransp(value), propertyName, eventLocation)
	case model.EventTokenLastModified:
		return setOnceTimeProperty(&event.LastModified, value, propertyName, eventLocation)
	case model.EventTokenContact:
		event.Contacts = append(event.Contacts, value)
		return nil
	case model.EventTokenComment:
		event.Comment = append(event.Comment, value)
	case model.EventTokenCategories:
		event.Categories = append(event.Categories, strings.Split(value, ",")...)

	// Dtend and Duration are mutually exclusive
	case model.EventTokenDtend:
		if event.Duration != 0 {
			return ErrInvalidDurationPropertyDtend
		}
		return setOnceTimeProperty(&event.End, value, propertyName, eventLocation)
	case model.EventTokenDuration:
		if event.End != (time.Time{}) {
			return ErrInvalidDurationPropertyDtend
		}
		return setOnceDurationProperty(&event.Duration, value, propertyName, eventLocation)

	case model.EventTokenGeo:
		if event.Geo != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateProperty, propertyName)
		}
		latitudeString, longitudeString, found := strings.Cut(value, ";")
		if !found {
			return ErrInvalidGeoProperty
		}
		latitude, err := strconv.ParseFloat(latitudeString, 64)
		if err != nil {
			return ErrInvalidGeoPropertyLatitude
		}
		longitude, err := strconv.ParseFloat(longitudeString, 64)
		if err != nil {
			return ErrInvalidGeoPropertyLongitude
		}
		event.Geo = append(event.Geo, latitude, longitude)

	case model.EventTokenRRule:
		rule, err := rrule.ParseRule(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidEventProperty, err.Error())
		}
		event.RRule = rule

	default:
		return fmt.Errorf("%w: %s", ErrInvalidEventProperty, propertyName)
	}
	return nil
}

// validateEvent ensures that all required values are present for an event.
func validateEvent(event *model.Event) error {
	if event.UID == "" {
		return ErrMissingEventUIDProperty
	}
	if event.Start == (time.Time{}) {
		return ErrMissingEventDTStartProperty
	}
	return nil
}
