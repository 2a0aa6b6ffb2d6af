package parse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/michael-gallo/simple-ical/icaldur"
)

// iCalDateTimeFormat is the layout used for DATE-TIME valued properties.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
const iCalDateTimeFormat = "20060102T150405Z"

func setOnceProperty[T comparable](field *T, value T, propertyName string, componentType string) error {
	var zero T
	if *field != zero {
		return fmt.Errorf(ErrDuplicatePropertyInComponentFormat, ErrDuplicatePropertyInComponent, propertyName, componentType)
	}
	*field = value
	return nil
}

// setOnceIntProperty sets an int field only if it hasn't been set before.
// this is intended for properties RFC 5545 allows only once per component
func setOnceIntProperty(field *int, value, propertyName string, componentType string) error {
	parsedValue, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s property %s in iCal", ErrParseErrorInComponent, componentType, propertyName)
	}
	return setOnceProperty(field, parsedValue, propertyName, componentType)
}

// setOnceTimeProperty sets a time.Time field only if it hasn't been set before.
// this is intended for properties RFC 5545 allows only once per component
func setOnceTimeProperty(field *time.Time, value, propertyName string, componentType string) error {
	parsedTime, err := time.Parse(iCalDateTimeFormat, value)
	if err != nil {
		return fmt.Errorf("%w: %s property %s in iCal", ErrParseErrorInComponent, componentType, propertyName)
	}
	return setOnceProperty(field, parsedTime, propertyName, componentType)
}

// setOnceDurationProperty sets a duration field only if it hasn't been set before.
// this is intended for properties RFC 5545 allows only once per component
func setOnceDurationProperty(field *time.Duration, value, propertyName string, componentType string) error {
	parsedDuration, err := icaldur.ParseICalDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s property %s in iCal", ErrParseErrorInComponent, componentType, propertyName)
	}
	return setOnceProperty(field, parsedDuration, propertyName, componentType)
}

// appendTimeProperty parses value as a DATE-TIME and appends it to field.
// Intended for properties such as EXDATE/RDATE that may repeat.
func appendTimeProperty(field *[]time.Time, value, propertyName string, componentType string) error {
	parsedTime, err := time.Parse(iCalDateTimeFormat, value)
	if err != nil {
		return fmt.Errorf("%w: %s property %s in iCal", ErrParseErrorInComponent, componentType, propertyName)
	}
	*field = append(*field, parsedTime)
	return nil
}
