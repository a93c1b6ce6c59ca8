package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"plotsummary/services"
	"plotsummary/testhelpers"
)

const phaseOneSnapshot = `{
  "project": {"id": "p1", "client": "Acme", "contract": "Acme-Contract-7", "sundriesPercentage": 5},
  "plotCategories": [{
    "id": "c1",
    "name": "Phase 1",
    "plotGroups": [{
      "id": "g1",
      "name": "Type A",
      "plots": "1, 2",
      "plotGroupItems": [{
        "id": "i1",
        "quantity": 100,
        "rate": {"id": "r1", "name": "Facing brick", "costPerUnit": 0.45, "rateType": {"id": "t1", "name": "Brick"}}
      }]
    }]
  }]
}`

func runExport(t *testing.T, cmdArgs ...string) (string, error) {
	t.Helper()
	cmd := newExportSummaryCommand(nil, services.CurrencyFormatter{}, ".")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(cmdArgs)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportSummaryCommand_Snapshot(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(snapshot, []byte(phaseOneSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")

	out, err := runExport(t, "--snapshot", snapshot, "--out", outDir)
	if err != nil {
		t.Fatalf("export-summary error: %v", err)
	}

	path := filepath.Join(outDir, "Acme-Contract-7.xlsx")
	if !strings.Contains(out, path) {
		t.Errorf("expected output to name %s, got %q", path, out)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("exported file is not valid Excel: %v", err)
	}
	defer f.Close()

	for cell, want := range map[string]string{"A8": "TOTAL", "C8": "45.00", "D8": "2.25", "F8": "100", "G8": "0"} {
		if got, _ := f.GetCellValue(services.SummarySheetName, cell); got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestExportSummaryCommand_Project(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "DB-Contract", 10)
	brick := testhelpers.CreateTestRateType(t, app, services.RateTypeBrick)
	rate := testhelpers.CreateTestRate(t, app, "Facing brick", 0.45, brick.Id)
	category := testhelpers.CreateTestPlotCategory(t, app, proj.Id, "Phase 1")
	group := testhelpers.CreateTestPlotGroup(t, app, proj.Id, category.Id, "Type A", "1")
	testhelpers.CreateTestPlotGroupItem(t, app, group.Id, rate.Id, 100)

	outDir := t.TempDir()
	cmd := newExportSummaryCommand(app, services.CurrencyFormatter{}, outDir)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--project", proj.Id})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export-summary error: %v", err)
	}

	f, err := excelize.OpenFile(filepath.Join(outDir, "DB-Contract.xlsx"))
	if err != nil {
		t.Fatalf("exported file is not valid Excel: %v", err)
	}
	defer f.Close()

	// One plot: header, blank, category, blank, plot, blank, TOTAL.
	if got, _ := f.GetCellValue(services.SummarySheetName, "D7"); got != "4.50" {
		t.Errorf("D7 = %q, want 4.50", got)
	}
}

func TestExportSummaryCommand_FlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"neither", nil},
		{"both", []string{"--project", "p1", "--snapshot", "s.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runExport(t, tt.args...); err == nil {
				t.Error("expected flag validation error")
			}
		})
	}
}

func TestExportSummaryCommand_BadSnapshot(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(snapshot, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runExport(t, "--snapshot", snapshot, "--out", dir); err == nil {
		t.Error("expected decode error")
	}
	if _, err := os.Stat(filepath.Join(dir, ".xlsx")); !os.IsNotExist(err) {
		t.Error("no file should be written for a bad snapshot")
	}
}
