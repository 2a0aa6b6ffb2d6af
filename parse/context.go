package parse

import (
	"fmt"

	"github.com/michael-gallo/simple-ical/model"
)

// parseContext tracks the nested BEGIN/END block structure of an iCalendar
// document as it is parsed, along with the component currently being built
// at each level of nesting.
type parseContext struct {
	calendar *model.Calendar

	stack []model.SectionToken

	currentEvent   *model.Event
	currentTodo    *model.Todo
	currentJournal *model.Journal

	seenUIDs map[string]bool
}

func newParseContext() *parseContext {
	return &parseContext{
		calendar: &model.Calendar{},
		seenUIDs: make(map[string]bool),
	}
}

func (ctx *parseContext) top() model.SectionToken {
	if len(ctx.stack) == 0 {
		return ""
	}
	return ctx.stack[len(ctx.stack)-1]
}

// beginSection pushes a newly opened sub-component onto the stack and
// initializes the component value that its properties will be parsed into.
func (ctx *parseContext) beginSection(token model.SectionToken) error {
	switch token {
	case model.SectionTokenVEvent:
		ctx.currentEvent = &model.Event{}
	case model.SectionTokenVTodo:
		ctx.currentTodo = &model.Todo{}
	case model.SectionTokenVJournal:
		ctx.currentJournal = &model.Journal{}
	default:
		return fmt.Errorf("%w: %s", ErrTemplateInvalidStartBlock, token)
	}
	ctx.stack = append(ctx.stack, token)
	return nil
}

// endSection pops the innermost open component, validates it, and folds it
// into its parent (or, for VCALENDAR, reports that the document is closed).
func (ctx *parseContext) endSection(token model.SectionToken) (bool, error) {
	if len(ctx.stack) == 0 || ctx.top() != token {
		return false, fmt.Errorf("%w: %s", ErrTemplateInvalidEndBlock, token)
	}
	ctx.stack = ctx.stack[:len(ctx.stack)-1]

	switch token {
	case model.SectionTokenVCalendar:
		if err := validateCalendar(ctx.calendar); err != nil {
			return false, err
		}
		return true, nil
	case model.SectionTokenVEvent:
		if err := validateEvent(ctx.currentEvent); err != nil {
			return false, err
		}
		if err := ctx.checkDuplicateUID(ctx.currentEvent.UID); err != nil {
			return false, err
		}
		ctx.calendar.Events = append(ctx.calendar.Events, *ctx.currentEvent)
		ctx.currentEvent = nil
	case model.SectionTokenVTodo:
		if err := validateTodo(ctx.currentTodo); err != nil {
			return false, err
		}
		if err := ctx.checkDuplicateUID(ctx.currentTodo.UID); err != nil {
			return false, err
		}
		ctx.calendar.Todos = append(ctx.calendar.Todos, *ctx.currentTodo)
		ctx.currentTodo = nil
	case model.SectionTokenVJournal:
		if err := validateJournal(ctx.currentJournal); err != nil {
			return false, err
		}
		if err := ctx.checkDuplicateUID(ctx.currentJournal.UID); err != nil {
			return false, err
		}
		ctx.calendar.Journals = append(ctx.calendar.Journals, *ctx.currentJournal)
		ctx.currentJournal = nil
	}
	return false, nil
}

// checkDuplicateUID records uid as seen and reports whether it had already
// been used by another top-level component in this document.
func (ctx *parseContext) checkDuplicateUID(uid string) error {
	if uid == "" {
		return nil
	}
	if ctx.seenUIDs[uid] {
		return fmt.Errorf("%w: %s", ErrDuplicateProperty, uid)
	}
	ctx.seenUIDs[uid] = true
	return nil
}

// dispatch routes a property line to the parser for the component currently
// open at the top of the stack.
func (ctx *parseContext) dispatch(propertyName, value string, params map[string]string) error {
	switch ctx.top() {
	case model.SectionTokenVCalendar:
		return parseCalendarProperty(propertyName, value, params, ctx.calendar)
	case model.SectionTokenVEvent:
		return parseEventProperty(propertyName, value, params, ctx.currentEvent)
	case model.SectionTokenVTodo:
		return parseTodoProperty(propertyName, value, params, ctx.currentTodo)
	case model.SectionTokenVJournal:
		return parseJournalProperty(propertyName, value, params, ctx.currentJournal)
	}
	return nil
}
