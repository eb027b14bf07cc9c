// Package sheet implements the spreadsheet import/export adapters: header
// reconciliation, stage-flag coercion, contact-date normalization and the
// xlsx codec around them.
package sheet

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanHeader normalizes a spreadsheet column header: newlines and runs of
// whitespace collapse to a single space, surrounding whitespace is trimmed.
// A missing or blank header becomes the empty string.
func CleanHeader(h string) string {
	h = strings.ReplaceAll(h, "\n", " ")
	h = whitespaceRun.ReplaceAllString(h, " ")
	return strings.TrimSpace(h)
}

// importHeaders is the fixed rename table from human-authored headers to
// canonical field names. Matching is exact after CleanHeader; unknown headers
// are ignored. IS ARIYOR has no counterpart in the legacy sheets but is
// produced by Export, so it is accepted to keep round trips lossless.
var importHeaders = map[string]string{
	"ADI SOYADI":      "name",
	"BAGLANTI TARIHI": "contact_date",
	"RANDEVU OLUSTU":  "appointment_made",
	"DAVET YAPILDI":   "invited",
	"PLAN ANLTD":      "plan_explained",
	"YANIT":           "declined",
	"KAYIT":           "registered",
	"TAKIP":           "followed_up",
	"ACIKLAMA":        "notes",
	"IS ARIYOR":       "job_seeking",
}

// exportColumns maps canonical fields back to the human-facing headers, in
// the snapshot column order. The raw id column is kept first, as the legacy
// exports did; re-imports ignore it.
var exportColumns = []struct {
	Field  string
	Header string
	IsFlag bool
}{
	{"id", "id", false},
	{"name", "ADI SOYADI", false},
	{"contact_date", "BAGLANTI TARIHI", false},
	{"notes", "ACIKLAMA", false},
	{"invited", "DAVET YAPILDI", true},
	{"appointment_made", "RANDEVU OLUSTU", true},
	{"plan_explained", "PLAN ANLTD", true},
	{"registered", "KAYIT", true},
	{"followed_up", "TAKIP", true},
	{"declined", "YANIT", true},
	{"job_seeking", "IS ARIYOR", true},
}

// textFields are the canonical non-flag fields synthesized as "" when the
// sheet lacks them.
var textFields = []string{"name", "contact_date", "notes"}
