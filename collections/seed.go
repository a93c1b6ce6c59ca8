package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"
)

// ── Definition structs ───────────────────────────────────────────────────

type rateDef struct {
	name        string
	uom         string
	costPerUnit float64
	rateType    string
}

type itemDef struct {
	rate     string
	quantity int
}

type groupDef struct {
	name  string
	plots string
	items []itemDef
}

type categoryDef struct {
	name   string
	groups []groupDef
}

// RateTypeNames are always present after seeding. "Brick" and "Block" are the
// names the summary counts materials by.
var RateTypeNames = []string{"Brick", "Block", "Labour"}

var seedRates = []rateDef{
	{"Facing brickwork", "nr", 0.45, "Brick"},
	{"Common brickwork", "nr", 0.40, "Brick"},
	{"Dense blockwork", "nr", 1.10, "Block"},
	{"Thermal blockwork", "nr", 1.25, "Block"},
	{"Cavity wall insulation", "m2", 2.50, "Labour"},
	{"Lintel fixing", "nr", 6.00, "Labour"},
	{"Scaffold adaption", "item", 35.00, "Labour"},
}

var seedCategories = []categoryDef{
	{
		name: "Phase 1",
		groups: []groupDef{
			{
				name:  "Semi-detached (Type A)",
				plots: "1, 2, 3-A, 4",
				items: []itemDef{
					{"Facing brickwork", 6200},
					{"Dense blockwork", 1450},
					{"Cavity wall insulation", 110},
					{"Lintel fixing", 14},
				},
			},
			{
				name:  "Detached (Type B)",
				plots: "5, 6/1",
				items: []itemDef{
					{"Facing brickwork", 8100},
					{"Thermal blockwork", 1900},
					{"Scaffold adaption", 2},
				},
			},
		},
	},
	{
		name: "Phase 2",
		groups: []groupDef{
			{
				name:  "Terrace (Type C)",
				plots: "12, 10, 11",
				items: []itemDef{
					{"Common brickwork", 4300},
					{"Dense blockwork", 980},
					{"Lintel fixing", 9},
				},
			},
		},
	},
}

// SeedRateTypes makes sure every name in RateTypeNames exists. It is safe to
// call on every startup.
func SeedRateTypes(app *pocketbase.PocketBase) (map[string]*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("rate_types")
	if err != nil {
		return nil, fmt.Errorf("seed: could not find rate_types collection: %w", err)
	}

	byName := make(map[string]*core.Record, len(RateTypeNames))
	for _, name := range RateTypeNames {
		existing, err := app.FindFirstRecordByData(col, "name", name)
		if err == nil && existing != nil {
			byName[name] = existing
			continue
		}

		r := core.NewRecord(col)
		r.Set("name", name)
		if err := app.Save(r); err != nil {
			return nil, fmt.Errorf("seed: rate type %q: %w", name, err)
		}
		byName[name] = r
	}
	return byName, nil
}

// Seed populates the rate catalogue and a demo project with two phases. It
// returns early if any project records already exist.
func Seed(app *pocketbase.PocketBase) error {
	rateTypes, err := SeedRateTypes(app)
	if err != nil {
		return err
	}

	// ── idempotency: skip if projects already exist ──────────────────
	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("seed: could not find projects collection: %w", err)
	}
	existing, err := app.FindAllRecords(projectsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query projects: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Info("seed: projects collection is empty, inserting seed data")

	ratesCol, err := app.FindCollectionByNameOrId("rates")
	if err != nil {
		return fmt.Errorf("seed: could not find rates collection: %w", err)
	}
	categoriesCol, err := app.FindCollectionByNameOrId("plot_categories")
	if err != nil {
		return fmt.Errorf("seed: could not find plot_categories collection: %w", err)
	}
	groupsCol, err := app.FindCollectionByNameOrId("plot_groups")
	if err != nil {
		return fmt.Errorf("seed: could not find plot_groups collection: %w", err)
	}
	itemsCol, err := app.FindCollectionByNameOrId("plot_group_items")
	if err != nil {
		return fmt.Errorf("seed: could not find plot_group_items collection: %w", err)
	}

	// ── rate catalogue ───────────────────────────────────────────────
	rateIDs := make(map[string]string, len(seedRates))
	for _, d := range seedRates {
		r := core.NewRecord(ratesCol)
		r.Set("name", d.name)
		r.Set("unit_of_measurement", d.uom)
		r.Set("cost_per_unit", d.costPerUnit)
		if rt, ok := rateTypes[d.rateType]; ok {
			r.Set("rate_type", rt.Id)
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: rate %q: %w", d.name, err)
		}
		rateIDs[d.name] = r.Id
	}

	// ── demo project ─────────────────────────────────────────────────
	project := core.NewRecord(projectsCol)
	project.Set("client", "Northfield Homes Ltd")
	project.Set("contract", "NFH-2024-017")
	project.Set("address", "Land off Mill Lane, Northfield")
	project.Set("sundries_percentage", 5)
	if err := app.Save(project); err != nil {
		return fmt.Errorf("seed: project: %w", err)
	}

	for _, cd := range seedCategories {
		category := core.NewRecord(categoriesCol)
		category.Set("project", project.Id)
		category.Set("name", cd.name)
		if err := app.Save(category); err != nil {
			return fmt.Errorf("seed: category %q: %w", cd.name, err)
		}

		for _, gd := range cd.groups {
			group := core.NewRecord(groupsCol)
			group.Set("project", project.Id)
			group.Set("plot_category", category.Id)
			group.Set("name", gd.name)
			group.Set("plots", gd.plots)
			if err := app.Save(group); err != nil {
				return fmt.Errorf("seed: plot group %q: %w", gd.name, err)
			}

			for _, id := range gd.items {
				item := core.NewRecord(itemsCol)
				item.Set("plot_group", group.Id)
				item.Set("rate", rateIDs[id.rate])
				item.Set("quantity", id.quantity)
				if err := app.Save(item); err != nil {
					return fmt.Errorf("seed: item %q in %q: %w", id.rate, gd.name, err)
				}
			}
		}
	}

	log.WithField("project", project.Id).Info("seed: done")
	return nil
}
