package test

import (
	"net/url"
	"testing"
	"time"

	"github.com/michael-gallo/simple-ical/model"
	"github.com/michael-gallo/simple-ical/parse"
	"github.com/michael-gallo/simple-ical/rrule"
	"github.com/stretchr/testify/assert"
)

const testJournalInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Journal Calendar//EN
BEGIN:VJOURNAL
UID:journal123@example.com
DTSTAMP:20240101T000000Z
SUMMARY:Project status update
DESCRIPTION:Completed the initial research phase
DESCRIPTION:Identified key stakeholders and requirements
CLASS:CONFIDENTIAL
STATUS:FINAL
CREATED:20240101T090000Z
LAST-MODIFIED:20240115T120000Z
DTSTART:20240101T090000Z
ATTENDEE:mailto:stakeholder1@example.com
ATTENDEE:mailto:stakeholder2@example.com
CONTACT:Jane Doe, Project Manager, +1-555-0456
CATEGORIES:work,project,status
COMMENT:This journal entry documents the completion of Phase 1
URL:https://project.example.com/journal/123
END:VJOURNAL
END:VCALENDAR
`

const testJournalMissingUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Journal Calendar//EN
BEGIN:VJOURNAL
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
END:VJOURNAL
END:VCALENDAR
`

const testJournalDuplicateUIDInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Journal Calendar//EN
BEGIN:VJOURNAL
UID:journal123@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
END:VJOURNAL
BEGIN:VJOURNAL
UID:journal123@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
END:VJOURNAL
END:VCALENDAR
`

const testJournalMultipleExdatesInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Journal Calendar//EN
BEGIN:VJOURNAL
UID:journal123@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
SUMMARY:Journal with Multiple Exception Dates
DESCRIPTION:This journal has multiple exception dates to test the append functionality
CLASS:CONFIDENTIAL
STATUS:FINAL
EXDATE:20240115T090000Z
EXDATE:20240122T090000Z
EXDATE:20240129T090000Z
END:VJOURNAL
END:VCALENDAR
`

func TestValidJournal(t *testing.T) {
	testCases := []struct {
		name             string
		input            string
		expectedCalendar *model.Calendar
	}{
		{
			name:  "Valid VJOURNAL",
			input: testJournalInput,
			expectedCalendar: &model.Calendar{
				ProdID:  "-//Test//Journal Calendar//EN",
				Version: "2.0",
				Journals: []model.Journal{
					{
						UID:          "journal123@example.com",
						DTStamp:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						Summary:      "Project status update",
						Description:  []string{"Completed the initial research phase", "Identified key stakeholders and requirements"},
						Class:        model.JournalClassConfidential,
						Status:       model.JournalStatusFinal,
						Created:      time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
						LastModified: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC),
						DTStart:    time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
						Attendees:  []url.URL{{Scheme: "mailto", Opaque: "stakeholder1@example.com"}, {Scheme: "mailto", Opaque: "stakeholder2@example.com"}},
						Contacts:   []string{"Jane Doe, Project Manager, +1-555-0456"},
						Categories: []string{"work", "project", "status"},
						Comment:    []string{"This journal entry documents the completion of Phase 1"},
						URL:        "https://project.example.com/journal/123",
					},
				},
			},
		},
		{
			name:  "Valid VJOURNAL with Multiple Exception Dates",
			input: testJournalMultipleExdatesInput,
			expectedCalendar: &model.Calendar{
				ProdID:  "-//Test//Journal Calendar//EN",
				Version: "2.0",
				Journals: []model.Journal{
					{
						UID:         "journal123@example.com",
						DTStamp:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						DTStart:     time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
						Summary:     "Journal with Multiple Exception Dates",
						Description: []string{"This journal has multiple exception dates to test the append functionality"},
						Class:       model.JournalClassConfidential,
						Status:      model.JournalStatusFinal,
						ExceptionDates: []time.Time{
							time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
							time.Date(2024, time.January, 22, 9, 0, 0, 0, time.UTC),
							time.Date(2024, time.January, 29, 9, 0, 0, 0, time.UTC),
						},
					},
				},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calendar, err := parse.IcalString(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, *tc.expectedCalendar, *calendar)
		})
	}
}

func TestInvalidJournal(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "VJOURNAL missing UID",
			input: testJournalMissingUIDInput,
		},
		{
			name:  "VJOURNAL duplicate UID",
			input: testJournalDuplicateUIDInput,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calendar, err := parse.IcalString(tc.input)
			assert.Error(t, err)
			assert.Nil(t, calendar)
		})
	}
}

const testJournalWithRRuleInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Journal Calendar//EN
BEGIN:VJOURNAL
UID:recurring-journal@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240101T090000Z
SUMMARY:Monthly retrospective
RRULE:FREQ=MONTHLY;BYMONTHDAY=1;COUNT=3
END:VJOURNAL
END:VCALENDAR
`

// TestJournalRRuleParsesAndOccurs exercises the VJOURNAL calendar bridge
// end-to-end, mirroring TestEventRRuleParsesAndOccurs and
// TestTodoRRuleParsesAndOccurs for the third recurring component kind.
func TestJournalRRuleParsesAndOccurs(t *testing.T) {
	calendar, err := parse.IcalString(testJournalWithRRuleInput)
	assert.NoError(t, err)
	assert.Len(t, calendar.Journals, 1)

	journal := calendar.Journals[0]
	wantRule, err := rrule.ParseRule("FREQ=MONTHLY;BYMONTHDAY=1;COUNT=3")
	assert.NoError(t, err)
	assert.Equal(t, wantRule, journal.RRule)

	it := journal.Occurrences()
	assert.NotNil(t, it)

	var got []time.Time
	for {
		occurrence, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, occurrence)
	}
	assert.NoError(t, it.Err())

	want := []time.Time{
		time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, got)
}
