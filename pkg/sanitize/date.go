package sanitize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dayMonthYear = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDate      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Layouts tried after the calendar date formats. Times without a zone are
// interpreted as UTC.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Jan 2, 2006",
	"2 Jan 2006",
	"02.01.2006",
}

// Epoch is the issue date of notes without a usable date.
var Epoch = time.Unix(0, 0).UTC()

// ParseDate parses an issue date.
//
// "DD/MM/YYYY" and "YYYY-MM-DD" are calendar dates and become midnight UTC
// of that date, independent of any local time zone. Other ISO-8601 and
// common timestamp formats are accepted as well. It reports false if no
// format matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := dayMonthYear.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return calendarDate(year, month, day)
	}

	if isoDate.MatchString(s) {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// CoerceDate returns the issue date stored in v, or Epoch if there is none.
func CoerceDate(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return Epoch
	}

	if t, ok := ParseDate(s); ok {
		return t
	}
	return Epoch
}

// calendarDate constructs midnight UTC of the date. Out of range days and
// months are rejected instead of being normalized into the next month.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
