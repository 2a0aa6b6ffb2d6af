package parse

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/michael-gallo/simple-ical/model"
)

// IcalString parses an iCalendar document held entirely in memory.
func IcalString(input string) (*model.Calendar, error) {
	return parseIcal(strings.NewReader(input))
}

// IcalReader parses an iCalendar document from an arbitrary reader.
func IcalReader(r io.Reader) (*model.Calendar, error) {
	return parseIcal(r)
}

// IcalFromFileName opens the file at path and parses its contents as an iCalendar document.
func IcalFromFileName(path string) (*model.Calendar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseIcal(file)
}

// parseIcal reads lines from r, tracks BEGIN/END block nesting, and dispatches
// each property line to the parser for the component currently open.
func parseIcal(r io.Reader) (*model.Calendar, error) {
	scanner := bufio.NewScanner(r)
	ctx := newParseContext()

	var sawAnyLine bool
	var closed bool

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		sawAnyLine = true

		if line == "" {
			return nil, ErrInvalidCalendarEmptyLine
		}
		if closed {
			return nil, ErrContentAfterEndBlock
		}

		propertyName, params, value, err := parseIcalLine(line)
		if err != nil {
			return nil, err
		}

		if len(ctx.stack) == 0 {
			if propertyName != "BEGIN" || value != string(model.SectionTokenVCalendar) {
				return nil, ErrInvalidCalendarFormatMissingBegin
			}
			ctx.stack = append(ctx.stack, model.SectionTokenVCalendar)
			continue
		}

		switch propertyName {
		case "BEGIN":
			if err := ctx.beginSection(model.SectionToken(value)); err != nil {
				return nil, err
			}
		case "END":
			done, err := ctx.endSection(model.SectionToken(value))
			if err != nil {
				return nil, err
			}
			if done {
				closed = true
			}
		default:
			if err := ctx.dispatch(propertyName, value, params); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !sawAnyLine {
		return nil, ErrNoCalendarFound
	}
	if !closed || len(ctx.stack) > 0 {
		return nil, ErrInvalidCalendarFormatMissingEnd
	}

	return ctx.calendar, nil
}
