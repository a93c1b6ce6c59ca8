// Package services provides the cost roll-up, plot ordering and export
// functions for project plot summaries.
package services

import "github.com/shopspring/decimal"

// Rate type names that are counted as materials.
const (
	RateTypeBrick = "Brick"
	RateTypeBlock = "Block"
)

var hundred = decimal.NewFromInt(100)

// ItemValue is quantity × cost per unit. An item without a rate is worth zero.
func ItemValue(item PlotGroupItem) decimal.Decimal {
	if item.Rate == nil {
		return decimal.Zero
	}
	return item.Rate.CostPerUnit.Mul(decimal.NewFromInt(item.Quantity))
}

// GroupTotal sums the value of every item in the group.
//
// The items of a group cover all of its plots together: the sum is not
// multiplied by the number of plots listed in group.Plots. The unit count
// roll-ups (GroupUnits and friends) follow the same rule.
func GroupTotal(group PlotGroup) decimal.Decimal {
	total := decimal.Zero
	for _, item := range group.PlotGroupItems {
		total = total.Add(ItemValue(item))
	}
	return total
}

func CategoryTotal(category PlotCategory) decimal.Decimal {
	total := decimal.Zero
	for _, group := range category.PlotGroups {
		total = total.Add(GroupTotal(group))
	}
	return total
}

func GrandTotal(categories []PlotCategory) decimal.Decimal {
	total := decimal.Zero
	for _, category := range categories {
		total = total.Add(CategoryTotal(category))
	}
	return total
}

// UnitCount sums the quantity of items whose rate type name equals typeName.
// Items with no rate or no rate type are skipped.
func UnitCount(items []PlotGroupItem, typeName string) int64 {
	var count int64
	for _, item := range items {
		if item.Rate == nil || item.Rate.RateType == nil {
			continue
		}
		if item.Rate.RateType.Name == typeName {
			count += item.Quantity
		}
	}
	return count
}

func GroupUnits(group PlotGroup, typeName string) int64 {
	return UnitCount(group.PlotGroupItems, typeName)
}

func CategoryUnits(category PlotCategory, typeName string) int64 {
	var count int64
	for _, group := range category.PlotGroups {
		count += GroupUnits(group, typeName)
	}
	return count
}

func GrandUnits(categories []PlotCategory, typeName string) int64 {
	var count int64
	for _, category := range categories {
		count += CategoryUnits(category, typeName)
	}
	return count
}

// Sundries is pct percent of total.
func Sundries(total, pct decimal.Decimal) decimal.Decimal {
	return total.Mul(pct).Div(hundred)
}

// GroupTotals returns the labour, sundries and material counts of one group.
func GroupTotals(group PlotGroup, pct decimal.Decimal) Totals {
	labour := GroupTotal(group)
	return Totals{
		Labour:   labour,
		Sundries: Sundries(labour, pct),
		Bricks:   GroupUnits(group, RateTypeBrick),
		Blocks:   GroupUnits(group, RateTypeBlock),
	}
}

func CategoryTotals(category PlotCategory, pct decimal.Decimal) Totals {
	labour := CategoryTotal(category)
	return Totals{
		Labour:   labour,
		Sundries: Sundries(labour, pct),
		Bricks:   CategoryUnits(category, RateTypeBrick),
		Blocks:   CategoryUnits(category, RateTypeBlock),
	}
}

func GrandTotals(categories []PlotCategory, pct decimal.Decimal) Totals {
	labour := GrandTotal(categories)
	return Totals{
		Labour:   labour,
		Sundries: Sundries(labour, pct),
		Bricks:   GrandUnits(categories, RateTypeBrick),
		Blocks:   GrandUnits(categories, RateTypeBlock),
	}
}
