package sheet

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"adaytakip/internal/storage"
)

// ErrNoData is returned by Export when there are no candidates; no file is
// produced in that case.
var ErrNoData = errors.New("no candidates to export")

const (
	// ExportFileName is the download name for exported workbooks.
	ExportFileName = "linkedin_adaylar.xlsx"
	// ExportContentType is the xlsx MIME type.
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	exportSheetName = "Adaylar"
)

// CandidateReader is the slice of the record store the exporter needs.
type CandidateReader interface {
	ListCandidates() ([]storage.Candidate, error)
}

// Exporter renders the full record set as a single-sheet xlsx buffer in the
// header vocabulary of the original import format. The buffer is transient
// output; nothing is written to disk.
type Exporter struct {
	store CandidateReader
}

func NewExporter(store CandidateReader) *Exporter {
	return &Exporter{store: store}
}

func (ex *Exporter) Export(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates, err := ex.store.ListCandidates()
	if err != nil {
		return nil, fmt.Errorf("reading candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col.Header
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}

	for i, c := range candidates {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		row := exportRow(c)
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// exportRow renders one candidate in exportColumns order, with flags as
// EVET/HAYIR tokens.
func exportRow(c storage.Candidate) []any {
	row := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		switch {
		case col.Field == "id":
			row[i] = strconv.FormatInt(c.ID, 10)
		case col.IsFlag:
			row[i] = FormatFlag(c.Flag(col.Field))
		case col.Field == "name":
			row[i] = c.Name
		case col.Field == "contact_date":
			row[i] = c.ContactDate
		case col.Field == "notes":
			row[i] = c.Notes
		}
	}
	return row
}
