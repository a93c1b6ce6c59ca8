package services

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

type memorySaver struct {
	filename    string
	contentType string
	data        []byte
	calls       int
	err         error
}

func (s *memorySaver) Save(_ context.Context, filename, contentType string, data []byte) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.filename = filename
	s.contentType = contentType
	s.data = data
	return nil
}

func TestExportSummary_Success(t *testing.T) {
	saver := &memorySaver{}
	err := ExportSummary(context.Background(), "Acme-Contract-7", phaseOne(), dec("5"), CurrencyFormatter{}, saver)
	if err != nil {
		t.Fatalf("ExportSummary() error = %v", err)
	}

	if saver.filename != "Acme-Contract-7.xlsx" {
		t.Errorf("filename = %q, want %q", saver.filename, "Acme-Contract-7.xlsx")
	}
	if saver.contentType != SpreadsheetContentType {
		t.Errorf("content type = %q", saver.contentType)
	}

	f, err := excelize.OpenReader(bytesReader(saver.data))
	if err != nil {
		t.Fatalf("saved data is not valid Excel: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("data", "C8"); got != "45.00" {
		t.Errorf("total labour = %q, want 45.00", got)
	}
}

func TestExportSummary_EmptyContract(t *testing.T) {
	saver := &memorySaver{}
	err := ExportSummary(context.Background(), "  ", phaseOne(), dec("5"), CurrencyFormatter{}, saver)
	if !errors.Is(err, ErrEmptyContract) {
		t.Fatalf("error = %v, want ErrEmptyContract", err)
	}
	if saver.calls != 0 {
		t.Errorf("saver called %d times, want 0", saver.calls)
	}
}

func TestExportSummary_SaveError(t *testing.T) {
	boom := errors.New("disk full")
	saver := &memorySaver{err: boom}

	err := ExportSummary(context.Background(), "C-1", phaseOne(), dec("5"), CurrencyFormatter{}, saver)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped save error", err)
	}
}

func TestExportSnapshot_UsesProjectSettings(t *testing.T) {
	saver := &memorySaver{}
	snap := Snapshot{
		Project:    Project{Contract: "Plot-Job-12", SundriesPercentage: dec("10")},
		Categories: phaseOne(),
	}

	if err := ExportSnapshot(context.Background(), snap, CurrencyFormatter{}, saver); err != nil {
		t.Fatalf("ExportSnapshot() error = %v", err)
	}
	if saver.filename != "Plot-Job-12.xlsx" {
		t.Errorf("filename = %q", saver.filename)
	}

	f, err := excelize.OpenReader(bytesReader(saver.data))
	if err != nil {
		t.Fatalf("saved data is not valid Excel: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("data", "D8"); got != "4.50" {
		t.Errorf("total sundries = %q, want 4.50", got)
	}
}

func TestAssembleExport(t *testing.T) {
	snap := Snapshot{
		Project:    Project{Contract: "Acme-Contract-7", SundriesPercentage: dec("5")},
		Categories: twoPhases(),
	}

	for i := 0; i < 2; i++ {
		b, err := AssembleExport(snap, CurrencyFormatter{})
		if err != nil {
			t.Fatalf("AssembleExport() error = %v", err)
		}
		f, err := excelize.OpenReader(bytesReader(b))
		if err != nil {
			t.Fatalf("result is not valid Excel: %v", err)
		}
		last := len(BuildSummaryRows(snap.Categories, dec("5"), CurrencyFormatter{})) + 1
		if got, _ := f.GetCellValue("data", "C"+itoa(last)); got != "910.00" {
			t.Errorf("run %d: grand labour = %q, want 910.00", i, got)
		}
		if got, _ := f.GetCellValue("data", "D"+itoa(last)); got != "45.50" {
			t.Errorf("run %d: grand sundries = %q, want 45.50", i, got)
		}
		f.Close()
	}
}
