package services

import "github.com/shopspring/decimal"

// RateType classifies a rate. Material counts match on Name exactly.
type RateType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Rate is a priced unit of work or material.
type Rate struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	UnitOfMeasurement string          `json:"unitOfMeasurement"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	RateType          *RateType       `json:"rateType,omitempty"`
}

// PlotGroupItem is a single line item inside a plot group.
type PlotGroupItem struct {
	ID       string `json:"id"`
	Rate     *Rate  `json:"rate,omitempty"`
	Quantity int64  `json:"quantity"`
}

// PlotGroup is a set of plots sharing the same line items. Plots holds the
// comma-delimited identifiers exactly as stored, e.g. "1, 2, 3-A".
type PlotGroup struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Plots          string          `json:"plots"`
	PlotGroupItems []PlotGroupItem `json:"plotGroupItems,omitempty"`
}

// PlotCategory partitions the plot groups of a project (house type, phase).
type PlotCategory struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	PlotGroups []PlotGroup `json:"plotGroups,omitempty"`
}

// Project is the top-level container. SundriesPercentage is in [0, 100].
type Project struct {
	ID                 string          `json:"id"`
	Client             string          `json:"client"`
	Contract           string          `json:"contract"`
	Address            string          `json:"address"`
	SundriesPercentage decimal.Decimal `json:"sundriesPercentage"`
}

// Snapshot is the complete input of a single export.
type Snapshot struct {
	Project    Project        `json:"project"`
	Categories []PlotCategory `json:"plotCategories"`
}

// Totals holds the four figures reported at every level of the summary.
type Totals struct {
	Labour   decimal.Decimal
	Sundries decimal.Decimal
	Bricks   int64
	Blocks   int64
}
