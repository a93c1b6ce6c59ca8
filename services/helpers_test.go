package services

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func brickRate(cost string) *Rate {
	return &Rate{ID: "r-brick", Name: "Facing brick", UnitOfMeasurement: "nr", CostPerUnit: dec(cost), RateType: &RateType{ID: "t-brick", Name: RateTypeBrick}}
}

func blockRate(cost string) *Rate {
	return &Rate{ID: "r-block", Name: "Dense block", UnitOfMeasurement: "nr", CostPerUnit: dec(cost), RateType: &RateType{ID: "t-block", Name: RateTypeBlock}}
}

func labourRate(cost string) *Rate {
	return &Rate{ID: "r-labour", Name: "Scaffold", UnitOfMeasurement: "m2", CostPerUnit: dec(cost), RateType: &RateType{ID: "t-labour", Name: "Labour"}}
}

// phaseOne is a single category with one group of plots "1,2" holding 100
// bricks at 0.45.
func phaseOne() []PlotCategory {
	return []PlotCategory{
		{
			ID:   "c1",
			Name: "Phase 1",
			PlotGroups: []PlotGroup{
				{
					ID:    "g1",
					Name:  "Semi-detached",
					Plots: "1,2",
					PlotGroupItems: []PlotGroupItem{
						{ID: "i1", Rate: brickRate("0.45"), Quantity: 100},
					},
				},
			},
		},
	}
}

// twoPhases has mixed materials spread over two categories.
func twoPhases() []PlotCategory {
	return []PlotCategory{
		{
			Name: "Phase 1",
			PlotGroups: []PlotGroup{
				{
					Name:  "Type A",
					Plots: "10, 2, 1-A",
					PlotGroupItems: []PlotGroupItem{
						{Rate: brickRate("0.50"), Quantity: 1000},
						{Rate: blockRate("1.20"), Quantity: 200},
					},
				},
				{
					Name:  "Type B",
					Plots: "3/B",
					PlotGroupItems: []PlotGroupItem{
						{Rate: labourRate("12.00"), Quantity: 10},
					},
				},
			},
		},
		{
			Name: "Phase 2",
			PlotGroups: []PlotGroup{
				{
					Name:  "Type C",
					Plots: "20",
					PlotGroupItems: []PlotGroupItem{
						{Rate: blockRate("1.00"), Quantity: 50},
					},
				},
			},
		},
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
