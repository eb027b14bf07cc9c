package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"

	"adaytakip/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("storage.Open(:memory:): %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// buildWorkbook writes a single-sheet xlsx into memory.
func buildWorkbook(t *testing.T, header []string, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow("Sheet1", "A1", &hdr); err != nil {
		t.Fatalf("writing header: %v", err)
	}
	for i, row := range rows {
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &vals); err != nil {
			t.Fatalf("writing row %d: %v", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("serializing workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

// TestImportBasic: a sheet with the legacy headers lands as coerced,
// normalized candidates.
func TestImportBasic(t *testing.T) {
	store := openTestStore(t)
	im := NewImporter(store)

	wb := buildWorkbook(t,
		[]string{"ADI SOYADI", "BAGLANTI TARIHI", "DAVET YAPILDI", "RANDEVU OLUSTU", "ACIKLAMA"},
		[][]string{
			{"Ayşe Yılmaz", "2024-06-05", "Evet", "hayır", "ilk temas"},
			{"Mehmet Kaya", "15 09 23", "x", "", ""},
		})

	result, err := im.Import(context.Background(), wb)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Total != 2 || result.Inserted != 2 {
		t.Fatalf("result = %+v, want 2/2", result)
	}
	if len(result.Failed) != 0 {
		t.Fatalf("unexpected failures: %+v", result.Failed)
	}
	if result.BatchID == "" {
		t.Error("BatchID is empty")
	}

	got, err := store.ListCandidates()
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}

	first := got[0]
	if first.Name != "Ayşe Yılmaz" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.ContactDate != "05 06 24" {
		t.Errorf("ContactDate = %q, want %q", first.ContactDate, "05 06 24")
	}
	if first.Invited != 1 {
		t.Errorf("Invited = %d, want 1", first.Invited)
	}
	if first.AppointmentMade != 0 {
		t.Errorf("AppointmentMade = %d, want 0", first.AppointmentMade)
	}
	if first.Notes != "ilk temas" {
		t.Errorf("Notes = %q", first.Notes)
	}
	// Columns absent from the sheet default to zero values.
	if first.Registered != 0 || first.JobSeeking != 0 {
		t.Errorf("missing columns not defaulted: %+v", first)
	}

	second := got[1]
	if second.ContactDate != "15 09 23" {
		t.Errorf("second ContactDate = %q, want %q", second.ContactDate, "15 09 23")
	}
	if second.Invited != 1 {
		t.Errorf("second Invited = %d, want 1 (token x)", second.Invited)
	}
}

// TestImportMessyHeaders: headers with newlines and doubled spaces still
// match after cleaning; unknown headers are ignored.
func TestImportMessyHeaders(t *testing.T) {
	store := openTestStore(t)
	im := NewImporter(store)

	wb := buildWorkbook(t,
		[]string{"ADI  SOYADI\n", "DAVET\nYAPILDI", "SIRKET"},
		[][]string{{"Fatma Demir", "EVET", "Acme"}})

	result, err := im.Import(context.Background(), wb)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Inserted != 1 {
		t.Fatalf("inserted = %d, want 1", result.Inserted)
	}

	got, _ := store.ListCandidates()
	if got[0].Name != "Fatma Demir" {
		t.Errorf("Name = %q", got[0].Name)
	}
	if got[0].Invited != 1 {
		t.Errorf("Invited = %d, want 1", got[0].Invited)
	}
	if got[0].Notes != "" {
		t.Errorf("unknown column leaked into Notes: %q", got[0].Notes)
	}
}

// TestImportBadDate: an unparseable date stores as empty string and never
// aborts the import.
func TestImportBadDate(t *testing.T) {
	store := openTestStore(t)
	im := NewImporter(store)

	wb := buildWorkbook(t,
		[]string{"ADI SOYADI", "BAGLANTI TARIHI"},
		[][]string{{"Ali Can", "gelecek hafta"}})

	result, err := im.Import(context.Background(), wb)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Inserted != 1 {
		t.Fatalf("inserted = %d, want 1", result.Inserted)
	}

	got, _ := store.ListCandidates()
	if got[0].ContactDate != "" {
		t.Errorf("ContactDate = %q, want empty", got[0].ContactDate)
	}
}

// TestImportSkipsEmptyRows: fully blank rows do not become records.
func TestImportSkipsEmptyRows(t *testing.T) {
	store := openTestStore(t)
	im := NewImporter(store)

	wb := buildWorkbook(t,
		[]string{"ADI SOYADI"},
		[][]string{{"Veli Su"}, {""}, {"  "}, {"Can Oz"}})

	result, err := im.Import(context.Background(), wb)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Total != 2 || result.Inserted != 2 {
		t.Errorf("result = %+v, want 2 non-empty rows", result)
	}
}

// TestImportNotASpreadsheet: garbage input reports failure without touching
// the store.
func TestImportNotASpreadsheet(t *testing.T) {
	store := openTestStore(t)
	im := NewImporter(store)

	_, err := im.Import(context.Background(), bytes.NewReader([]byte("definitely not xlsx")))
	if err == nil {
		t.Fatal("Import accepted garbage input")
	}

	n, _ := store.CountCandidates()
	if n != 0 {
		t.Errorf("store has %d rows after failed parse, want 0", n)
	}
}

// failAfterWriter fails every insert past the first n, to exercise the
// per-row best-effort policy.
type failAfterWriter struct {
	n    int
	seen int
}

func (w *failAfterWriter) InsertCandidate(c storage.Candidate) (int64, error) {
	w.seen++
	if w.seen > w.n {
		return 0, errors.New("disk full")
	}
	return int64(w.seen), nil
}

// TestImportPartialFailure: rows inserted before a row-level failure remain
// counted, and failures carry sheet line numbers.
func TestImportPartialFailure(t *testing.T) {
	im := NewImporter(&failAfterWriter{n: 1})

	wb := buildWorkbook(t,
		[]string{"ADI SOYADI"},
		[][]string{{"a"}, {"b"}, {"c"}})

	result, err := im.Import(context.Background(), wb)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Inserted != 1 {
		t.Errorf("inserted = %d, want 1", result.Inserted)
	}
	if len(result.Failed) != 2 {
		t.Fatalf("failed = %+v, want 2 entries", result.Failed)
	}
	if result.Failed[0].Line != 3 {
		t.Errorf("first failure line = %d, want 3", result.Failed[0].Line)
	}
	if result.Failed[1].Line != 4 {
		t.Errorf("second failure line = %d, want 4", result.Failed[1].Line)
	}
	if result.Message != fmt.Sprintf("imported %d of %d rows", 1, 3) {
		t.Errorf("message = %q", result.Message)
	}
}

// TestImportCancelled: a cancelled context stops the loop with an error.
func TestImportCancelled(t *testing.T) {
	store := openTestStore(t)
	im := NewImporter(store)

	wb := buildWorkbook(t, []string{"ADI SOYADI"}, [][]string{{"a"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := im.Import(ctx, wb); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
