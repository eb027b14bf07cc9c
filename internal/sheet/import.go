package sheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"adaytakip/internal/storage"
)

// CandidateWriter is the slice of the record store the importer needs.
// Imported rows go through the same insert path as manual entry.
type CandidateWriter interface {
	InsertCandidate(c storage.Candidate) (int64, error)
}

// RowFailure describes one sheet row that could not be stored. Line is the
// 1-based spreadsheet line number (the header is line 1).
type RowFailure struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResult reports a per-row outcome sequence instead of a single flag:
// imports are best-effort row by row, so rows inserted before a failure
// remain and the caller can see exactly which lines did not land.
type ImportResult struct {
	BatchID  string       `json:"batch_id"`
	Total    int          `json:"total"`
	Inserted int          `json:"inserted"`
	Failed   []RowFailure `json:"failed,omitempty"`
	Message  string       `json:"message"`
}

// Importer ingests an externally authored xlsx sheet into the record store.
type Importer struct {
	store CandidateWriter
}

func NewImporter(store CandidateWriter) *Importer {
	return &Importer{store: store}
}

// Import parses the first sheet of the workbook, reconciles its headers with
// the canonical fields, normalizes every cell and inserts one candidate per
// row. There is no sheet-wide transaction.
func (im *Importer) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	result := ImportResult{BatchID: uuid.New().String()}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return result, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return result, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return result, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return result, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	// Column position -> canonical field. Unknown headers are dropped.
	fieldAt := make(map[int]string)
	for i, h := range rows[0] {
		if field, ok := importHeaders[CleanHeader(h)]; ok {
			fieldAt[i] = field
		}
	}

	for i, row := range rows[1:] {
		line := i + 2

		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("import cancelled at line %d: %w", line, err)
		}
		if emptyRow(row) {
			continue
		}
		result.Total++

		c := buildCandidate(row, fieldAt)
		if _, err := im.store.InsertCandidate(c); err != nil {
			result.Failed = append(result.Failed, RowFailure{Line: line, Reason: err.Error()})
			continue
		}
		result.Inserted++
	}

	result.Message = fmt.Sprintf("imported %d of %d rows", result.Inserted, result.Total)
	slog.Info("import finished",
		"batch", result.BatchID, "total", result.Total,
		"inserted", result.Inserted, "failed", len(result.Failed))
	return result, nil
}

// buildCandidate maps one sheet row onto a Candidate. Fields the sheet does
// not carry keep their zero defaults: 0 for flags, "" for text.
func buildCandidate(row []string, fieldAt map[int]string) storage.Candidate {
	var c storage.Candidate
	for pos, field := range fieldAt {
		var raw string
		if pos < len(row) {
			raw = row[pos]
		}
		switch field {
		case "name":
			c.Name = strings.TrimSpace(raw)
		case "notes":
			c.Notes = strings.TrimSpace(raw)
		case "contact_date":
			c.ContactDate = NormalizeDate(raw)
		default:
			c.SetFlag(field, CoerceFlag(raw))
		}
	}
	return c
}

func emptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
