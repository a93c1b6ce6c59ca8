package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SummarySheetName is the single sheet of the summary workbook.
const SummarySheetName = "data"

// GenerateSummaryExcel writes the summary rows to a single-sheet workbook and
// returns the file contents. On error no bytes are returned.
func GenerateSummaryExcel(data SummaryExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := SummarySheetName

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through G), matching SummaryColumns.
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{14, 3, 14, 14, 3, 10, 10}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	categoryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create category style: %w", err)
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{{Type: "top", Color: "#000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Row 1: Column Headers ───────────────────────────────────────────

	for i, h := range SummaryColumns {
		if err := f.SetCellValue(sheetName, columns[i]+"1", h); err != nil {
			return nil, fmt.Errorf("set header %s: %w", columns[i], err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	// ── Data Rows (starting row 2) ──────────────────────────────────────

	row := 2
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)
		row++

		if r.Kind == RowBlank {
			continue
		}

		values := map[string]any{"A": sanitizeExcelCell(r.Plot)}
		if r.Kind != RowCategory {
			values["C"] = sanitizeExcelCell(r.Labour)
			values["D"] = sanitizeExcelCell(r.Sundries)
		}
		if r.HasUnits() {
			values["F"] = r.Bricks
			values["G"] = r.Blocks
		}
		for _, col := range columns {
			v, ok := values[col]
			if !ok {
				continue
			}
			if err := f.SetCellValue(sheetName, col+rowStr, v); err != nil {
				return nil, fmt.Errorf("set cell %s%s: %w", col, rowStr, err)
			}
		}

		switch r.Kind {
		case RowCategory:
			err = f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, categoryStyle)
		case RowTotal:
			err = f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, totalStyle)
		default:
			err = f.SetCellStyle(sheetName, "C"+rowStr, "D"+rowStr, moneyStyle)
		}
		if err != nil {
			return nil, fmt.Errorf("style row %s: %w", rowStr, err)
		}
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas. Formatted negative amounts are left alone.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '-':
		if len(s) > 1 && s[1] >= '0' && s[1] <= '9' {
			return s
		}
		return "'" + s
	case '=', '+', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
