package collections

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"
)

// Setup programmatically creates/ensures the projects, rate catalogue and
// plot hierarchy collections exist.
func Setup(app *pocketbase.PocketBase) {
	projects := ensureCollection(app, "projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "client", Required: true})
		c.Fields.Add(&core.TextField{Name: "contract", Required: true})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sundries_percentage", Required: false, Min: floatPtr(0), Max: floatPtr(100)})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	rateTypes := ensureCollection(app, "rate_types", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.AddIndex("idx_rate_types_name", true, "name", "")
	})

	rates := ensureCollection(app, "rates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit_of_measurement", Required: true})
		c.Fields.Add(&core.NumberField{Name: "cost_per_unit", Required: false, Min: floatPtr(0)})
		c.Fields.Add(&core.RelationField{
			Name:         "rate_type",
			Required:     false,
			CollectionId: rateTypes.Id,
			MaxSelect:    1,
		})
	})

	ensureCollection(app, "project_rates", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "rate",
			Required:      true,
			CollectionId:  rates.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "cost_per_unit", Required: false, Min: floatPtr(0)})
		c.AddIndex("idx_project_rates_project_rate", true, "project, rate", "")
	})

	plotCategories := ensureCollection(app, "plot_categories", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	plotGroups := ensureCollection(app, "plot_groups", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "plot_category",
			Required:      true,
			CollectionId:  plotCategories.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "plots", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "plot_group_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "plot_group",
			Required:      true,
			CollectionId:  plotGroups.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "rate",
			Required:     true,
			CollectionId: rates.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false, Min: floatPtr(0), OnlyInt: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Debugf("Collection %q already exists, skipping creation.", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	log.Infof("Created collection %q (id=%s)", name, collection.Id)
	return collection
}

func floatPtr(v float64) *float64 {
	return &v
}
