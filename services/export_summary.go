package services

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RowKind says how a summary row is laid out in the export.
type RowKind int

const (
	RowBlank    RowKind = iota // empty spacer row
	RowCategory                // category name in PLOT, everything else blank
	RowPlot                    // one plot carrying its group's figures
	RowTotal                   // the final TOTAL row
)

// TotalLabel is written in the PLOT column of the grand total row.
const TotalLabel = "TOTAL"

// SummaryColumns are the export column headers. The two empty headers are
// spacer columns.
var SummaryColumns = []string{"PLOT", "", "LABOUR", "SUNDRIES", "", "BRICKS", "BLOCKS"}

// SummaryRow is a single row of the plot summary export. Money values are
// already formatted; Bricks and Blocks are only meaningful on plot and total
// rows.
type SummaryRow struct {
	Kind     RowKind
	Plot     string
	Labour   string
	Sundries string
	Bricks   int64
	Blocks   int64
}

// HasUnits reports whether the BRICKS and BLOCKS cells are filled.
func (r SummaryRow) HasUnits() bool {
	return r.Kind == RowPlot || r.Kind == RowTotal
}

// SummaryExport holds everything needed to write the summary spreadsheet.
type SummaryExport struct {
	Filename string
	Rows     []SummaryRow
}

// BuildSummaryRows flattens the categories into export rows.
//
// Each category produces a blank row, a header row with its name, a blank
// separator and then one row per plot, sorted by plot code. A plot row carries
// the whole figures of the group it belongs to. After the last category come
// a blank row and the TOTAL row.
func BuildSummaryRows(categories []PlotCategory, pct decimal.Decimal, cf CurrencyFormatter) []SummaryRow {
	var rows []SummaryRow

	for _, category := range categories {
		var plotRows []SummaryRow
		for _, group := range category.PlotGroups {
			t := GroupTotals(group, pct)
			labour := cf.Format(t.Labour)
			sundries := cf.Format(t.Sundries)
			for _, code := range SplitPlots(group.Plots) {
				plotRows = append(plotRows, SummaryRow{
					Kind:     RowPlot,
					Plot:     code,
					Labour:   labour,
					Sundries: sundries,
					Bricks:   t.Bricks,
					Blocks:   t.Blocks,
				})
			}
		}

		sort.SliceStable(plotRows, func(i, j int) bool {
			return ComparePlotCodes(plotRows[i].Plot, plotRows[j].Plot) < 0
		})

		rows = append(rows,
			SummaryRow{Kind: RowBlank},
			SummaryRow{Kind: RowCategory, Plot: category.Name},
			SummaryRow{Kind: RowBlank},
		)
		rows = append(rows, plotRows...)
	}

	grand := GrandTotals(categories, pct)
	rows = append(rows,
		SummaryRow{Kind: RowBlank},
		SummaryRow{
			Kind:     RowTotal,
			Plot:     TotalLabel,
			Labour:   cf.Format(grand.Labour),
			Sundries: cf.Format(grand.Sundries),
			Bricks:   grand.Bricks,
			Blocks:   grand.Blocks,
		},
	)
	return rows
}

// BuildSummaryExport assembles the rows and filename for a contract.
func BuildSummaryExport(contract string, categories []PlotCategory, pct decimal.Decimal, cf CurrencyFormatter) SummaryExport {
	return SummaryExport{
		Filename: SummaryFilename(contract),
		Rows:     BuildSummaryRows(categories, pct, cf),
	}
}

// SummaryFilename is the download name of a contract's summary spreadsheet.
func SummaryFilename(contract string) string {
	return contract + SpreadsheetExtension
}
