package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// SummaryDocument is the input of the per-group summary PDF.
type SummaryDocument struct {
	Contract      string
	Client        string
	Address       string
	GeneratedDate string
	Summary       GroupSummary
}

// GenerateSummaryPDF renders the per-group summary of a project using
// maroto/v2 and returns the raw PDF bytes.
func GenerateSummaryPDF(doc SummaryDocument, cf CurrencyFormatter) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addSummaryHeader(m, doc)

	for _, section := range doc.Summary.Categories {
		addCategorySection(m, section, cf)
	}

	addGrandTotal(m, doc.Summary.Grand, cf)

	if doc.GeneratedDate != "" {
		addFooter(m, doc.GeneratedDate)
	}

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdf.GetBytes(), nil
}

// addSummaryHeader adds the contract title, client and address.
func addSummaryHeader(m core.Maroto, doc SummaryDocument) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(doc.Contract, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(doc.Client, props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
			col.New(6).Add(
				text.New(doc.Address, props.Text{Size: 9, Align: align.Right, Color: grey}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addCategorySection adds a category heading, its column header, one row per
// plot group labelled with its plots, and the category total.
func addCategorySection(m core.Maroto, section CategorySection, cf CurrencyFormatter) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(section.Name, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
					Top:   2,
				}),
			),
		),
	)

	addTableHeader(m, "Plot Group Name")

	for _, g := range section.Groups {
		addTotalsRow(m, g.Label(), g.Totals, cf, nil, fontstyle.Normal)
	}

	totalBg := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	addTotalsRow(m, "Total", section.Totals, cf, totalBg, fontstyle.Bold)

	m.AddRows(row.New(4))
}

// addGrandTotal adds the project-wide totals table.
func addGrandTotal(m core.Maroto, grand Totals, cf CurrencyFormatter) {
	m.AddRows(row.New(4))
	addTableHeader(m, "Grand Total")

	bg := &props.Cell{BackgroundColor: &props.Color{Red: 82, Green: 82, Blue: 82}}
	addTotalsRowColored(m, "-", grand, cf, bg, fontstyle.Bold, &props.Color{Red: 255, Green: 255, Blue: 255})
}

// addTableHeader adds the column header row for a totals table.
func addTableHeader(m core.Maroto, firstColumn string) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New(firstColumn, headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Labour", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Sundries", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Bricks", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Blocks", headerText)).WithStyle(&headerCell),
		),
	)
}

func addTotalsRow(m core.Maroto, label string, t Totals, cf CurrencyFormatter, cellStyle *props.Cell, style fontstyle.Type) {
	addTotalsRowColored(m, label, t, cf, cellStyle, style, nil)
}

// addTotalsRowColored adds one label + totals row. cellStyle and color may be nil.
func addTotalsRowColored(m core.Maroto, label string, t Totals, cf CurrencyFormatter, cellStyle *props.Cell, style fontstyle.Type, color *props.Color) {
	leftText := props.Text{Size: 8, Style: style, Align: align.Left, Color: color}
	rightText := leftText
	rightText.Align = align.Right

	cols := []core.Col{
		col.New(4).Add(text.New(label, leftText)),
		col.New(2).Add(text.New(cf.Format(t.Labour), rightText)),
		col.New(2).Add(text.New(cf.Format(t.Sundries), rightText)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", t.Bricks), rightText)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", t.Blocks), rightText)),
	}
	if cellStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(cellStyle)
		}
	}

	m.AddRows(row.New(7).Add(cols...))
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, generatedDate string) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", generatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
