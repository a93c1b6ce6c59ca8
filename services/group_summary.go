package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GroupLine is one plot group in the per-group summary.
type GroupLine struct {
	Name   string
	Plots  []string
	Totals Totals
}

// PlotList joins the group's plot codes for display, e.g. "1, 2, 3-A".
func (g GroupLine) PlotList() string {
	return strings.Join(g.Plots, ", ")
}

// Label is the group name followed by its plots in brackets.
func (g GroupLine) Label() string {
	if len(g.Plots) == 0 {
		return g.Name
	}
	return g.Name + " (" + g.PlotList() + ")"
}

// CategorySection lists the groups of a category with the category total.
type CategorySection struct {
	Name   string
	Groups []GroupLine
	Totals Totals
}

// GroupSummary is the per-group view of a project: one section per category
// that has groups, plus the grand total.
type GroupSummary struct {
	SundriesPercentage decimal.Decimal
	Categories         []CategorySection
	Grand              Totals
}

// BuildGroupSummary totals every group, category and the whole project.
// Categories without any plot groups are left out of the sections but the
// grand total always covers every category.
func BuildGroupSummary(categories []PlotCategory, pct decimal.Decimal) GroupSummary {
	summary := GroupSummary{
		SundriesPercentage: pct,
		Grand:              GrandTotals(categories, pct),
	}

	for _, category := range categories {
		if len(category.PlotGroups) == 0 {
			continue
		}
		section := CategorySection{
			Name:   category.Name,
			Totals: CategoryTotals(category, pct),
		}
		for _, group := range category.PlotGroups {
			section.Groups = append(section.Groups, GroupLine{
				Name:   group.Name,
				Plots:  SplitPlots(group.Plots),
				Totals: GroupTotals(group, pct),
			})
		}
		summary.Categories = append(summary.Categories, section)
	}
	return summary
}
