package sheet

import (
	"strings"
	"time"
)

// ContactDateLayout is the stored lexical format for contact dates: two-digit
// day, month and year, space separated ("05 06 24").
const ContactDateLayout = "02 01 06"

// twoDigitYearPivot controls how 2-digit years are read: a parsed year more
// than this many years in the future is pushed back a century.
const twoDigitYearPivot = 20

// Layouts are day-first: the source sheets are Turkish-locale. The canonical
// layout is tried first so that normalizing an already-normalized date is a
// no-op.
var (
	twoDigitYearLayouts = []string{
		ContactDateLayout,
		"2 1 06", "2/1/06", "02/01/06", "2-1-06", "2.1.06", "02.01.06",
	}
	fourDigitYearLayouts = []string{
		"2 1 2006", "02 01 2006",
		"2/1/2006", "02/01/2006",
		"2-1-2006", "02-01-2006",
		"2.1.2006", "02.01.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"2006-01-02 15:04:05",
		"2 Jan 2006", "Jan 2, 2006",
	}
)

// ParseDate parses a spreadsheet date cell. It reports false for anything it
// cannot read.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// 4-digit years are unambiguous, try them first.
	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	pivot := time.Now().Year() + twoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() > pivot {
			t = t.AddDate(-100, 0, 0)
		}
		return t, true
	}

	return time.Time{}, false
}

// NormalizeDate reformats a date cell to ContactDateLayout. Unparseable
// values yield the empty string rather than an error so one bad date never
// aborts a whole import.
func NormalizeDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return t.Format(ContactDateLayout)
}

// IsContactDate reports whether s is empty or matches ContactDateLayout
// exactly. This is the one date-format check applied to manual entry.
func IsContactDate(s string) bool {
	if s == "" {
		return true
	}
	t, err := time.Parse(ContactDateLayout, s)
	return err == nil && t.Format(ContactDateLayout) == s
}
