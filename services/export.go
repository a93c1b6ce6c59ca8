package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SpreadsheetExtension   = ".xlsx"
)

// ErrEmptyContract is returned when no filename can be derived for an export.
var ErrEmptyContract = errors.New("contract is empty")

// FileSaver delivers a finished export file, e.g. to disk or to an HTTP
// response.
type FileSaver interface {
	Save(ctx context.Context, filename, contentType string, data []byte) error
}

// ExportSummary builds the plot summary spreadsheet for a contract and hands
// it to saver as "<contract>.xlsx". Nothing is saved if the workbook cannot
// be produced.
func ExportSummary(ctx context.Context, contract string, categories []PlotCategory, sundriesPercentage decimal.Decimal, cf CurrencyFormatter, saver FileSaver) error {
	if strings.TrimSpace(contract) == "" {
		return ErrEmptyContract
	}

	data := BuildSummaryExport(contract, categories, sundriesPercentage, cf)
	xlsxBytes, err := GenerateSummaryExcel(data)
	if err != nil {
		return fmt.Errorf("export summary %q: %w", contract, err)
	}

	if err := saver.Save(ctx, data.Filename, SpreadsheetContentType, xlsxBytes); err != nil {
		return fmt.Errorf("save %s: %w", data.Filename, err)
	}
	return nil
}

// ExportSnapshot runs ExportSummary with the contract and sundries percentage
// of the snapshot's project.
func ExportSnapshot(ctx context.Context, snap Snapshot, cf CurrencyFormatter, saver FileSaver) error {
	return ExportSummary(ctx, snap.Project.Contract, snap.Categories, snap.Project.SundriesPercentage, cf, saver)
}

// AssembleExport returns the summary workbook of a snapshot without saving it.
// Calls are independent; the same snapshot always yields the same cells.
func AssembleExport(snap Snapshot, cf CurrencyFormatter) ([]byte, error) {
	data := BuildSummaryExport(snap.Project.Contract, snap.Categories, snap.Project.SundriesPercentage, cf)
	return GenerateSummaryExcel(data)
}
