package handlers

import (
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"plotsummary/services"
)

// ErrProjectNotFound is returned by LoadSnapshot when the project id is unknown.
var ErrProjectNotFound = errors.New("project not found")

// LoadSnapshot reads a project and its full plot hierarchy into a
// services.Snapshot. A rate's cost is taken from the project's rate override
// when one exists, otherwise from the rate catalogue. Any failed query is
// returned as an error; only an empty result counts as an empty collection.
func LoadSnapshot(app *pocketbase.PocketBase, projectID string) (services.Snapshot, error) {
	projectRecord, err := app.FindRecordById("projects", projectID)
	if err != nil {
		return services.Snapshot{}, fmt.Errorf("%w: %s: %v", ErrProjectNotFound, projectID, err)
	}

	rates, err := loadRates(app, projectID)
	if err != nil {
		return services.Snapshot{}, err
	}

	categoryRecords, err := app.FindRecordsByFilter("plot_categories", "project = {:projectId}", "created,name", 0, 0, map[string]any{"projectId": projectID})
	if err != nil {
		return services.Snapshot{}, fmt.Errorf("load plot categories: %w", err)
	}

	snap := services.Snapshot{
		Project: services.Project{
			ID:                 projectRecord.Id,
			Client:             projectRecord.GetString("client"),
			Contract:           projectRecord.GetString("contract"),
			Address:            projectRecord.GetString("address"),
			SundriesPercentage: decimal.NewFromFloat(projectRecord.GetFloat("sundries_percentage")),
		},
	}

	for _, cr := range categoryRecords {
		category := services.PlotCategory{ID: cr.Id, Name: cr.GetString("name")}

		groupRecords, err := app.FindRecordsByFilter("plot_groups", "plot_category = {:categoryId}", "created,name", 0, 0, map[string]any{"categoryId": cr.Id})
		if err != nil {
			return services.Snapshot{}, fmt.Errorf("load plot groups of %q: %w", category.Name, err)
		}

		for _, gr := range groupRecords {
			group := services.PlotGroup{
				ID:    gr.Id,
				Name:  gr.GetString("name"),
				Plots: gr.GetString("plots"),
			}

			itemRecords, err := app.FindRecordsByFilter("plot_group_items", "plot_group = {:groupId}", "created", 0, 0, map[string]any{"groupId": gr.Id})
			if err != nil {
				return services.Snapshot{}, fmt.Errorf("load plot group items of %q: %w", group.Name, err)
			}

			for _, ir := range itemRecords {
				group.PlotGroupItems = append(group.PlotGroupItems, services.PlotGroupItem{
					ID:       ir.Id,
					Rate:     rates[ir.GetString("rate")],
					Quantity: int64(ir.GetInt("quantity")),
				})
			}
			category.PlotGroups = append(category.PlotGroups, group)
		}
		snap.Categories = append(snap.Categories, category)
	}

	return snap, nil
}

// loadRates returns the rate catalogue keyed by id, with project overrides applied.
func loadRates(app *pocketbase.PocketBase, projectID string) (map[string]*services.Rate, error) {
	typeRecords, err := app.FindAllRecords("rate_types")
	if err != nil {
		return nil, fmt.Errorf("load rate types: %w", err)
	}
	rateTypes := make(map[string]*services.RateType, len(typeRecords))
	for _, r := range typeRecords {
		rateTypes[r.Id] = &services.RateType{ID: r.Id, Name: r.GetString("name")}
	}

	rateRecords, err := app.FindAllRecords("rates")
	if err != nil {
		return nil, fmt.Errorf("load rates: %w", err)
	}

	overrides, err := app.FindRecordsByFilter("project_rates", "project = {:projectId}", "", 0, 0, map[string]any{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("load project rates: %w", err)
	}
	overrideCost := make(map[string]*core.Record, len(overrides))
	for _, o := range overrides {
		overrideCost[o.GetString("rate")] = o
	}

	rates := make(map[string]*services.Rate, len(rateRecords))
	for _, r := range rateRecords {
		cost := r.GetFloat("cost_per_unit")
		if o, ok := overrideCost[r.Id]; ok {
			cost = o.GetFloat("cost_per_unit")
		}
		rates[r.Id] = &services.Rate{
			ID:                r.Id,
			Name:              r.GetString("name"),
			UnitOfMeasurement: r.GetString("unit_of_measurement"),
			CostPerUnit:       decimal.NewFromFloat(cost),
			RateType:          rateTypes[r.GetString("rate_type")],
		}
	}
	return rates, nil
}
