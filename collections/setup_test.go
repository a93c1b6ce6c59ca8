package collections_test

import (
	"testing"

	"plotsummary/collections"
	"plotsummary/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"projects",
	"rate_types",
	"rates",
	"project_rates",
	"plot_categories",
	"plot_groups",
	"plot_group_items",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_Fields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		collection string
		fields     []string
	}{
		{"projects", []string{"client", "contract", "address", "sundries_percentage", "created", "updated"}},
		{"rate_types", []string{"name"}},
		{"rates", []string{"name", "unit_of_measurement", "cost_per_unit", "rate_type"}},
		{"project_rates", []string{"project", "rate", "cost_per_unit"}},
		{"plot_categories", []string{"project", "name"}},
		{"plot_groups", []string{"project", "plot_category", "name", "plots"}},
		{"plot_group_items", []string{"plot_group", "rate", "quantity"}},
	}

	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			col, err := app.FindCollectionByNameOrId(tt.collection)
			if err != nil {
				t.Fatalf("collection %q not found: %v", tt.collection, err)
			}
			for _, f := range tt.fields {
				if col.Fields.GetByName(f) == nil {
					t.Errorf("%s: missing field %q", tt.collection, f)
				}
			}
		})
	}
}

func TestSetup_SundriesPercentageBounds(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("projects")

	nf, ok := col.Fields.GetByName("sundries_percentage").(*core.NumberField)
	if !ok {
		t.Fatal("projects.sundries_percentage is not a NumberField")
	}
	if nf.Min == nil || *nf.Min != 0 {
		t.Errorf("sundries_percentage min = %v, want 0", nf.Min)
	}
	if nf.Max == nil || *nf.Max != 100 {
		t.Errorf("sundries_percentage max = %v, want 100", nf.Max)
	}
}

func TestSetup_QuantityIsInteger(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("plot_group_items")

	nf, ok := col.Fields.GetByName("quantity").(*core.NumberField)
	if !ok {
		t.Fatal("plot_group_items.quantity is not a NumberField")
	}
	if !nf.OnlyInt {
		t.Error("plot_group_items.quantity: expected OnlyInt=true")
	}
}

func TestSetup_CascadeDeleteHierarchy(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Create full hierarchy: project -> category -> group -> item
	proj := testhelpers.CreateTestProject(t, app, "Cascade-1", 5)
	brick := testhelpers.CreateTestRateType(t, app, "Brick")
	rate := testhelpers.CreateTestRate(t, app, "Facing brick", 0.45, brick.Id)
	category := testhelpers.CreateTestPlotCategory(t, app, proj.Id, "Phase 1")
	group := testhelpers.CreateTestPlotGroup(t, app, proj.Id, category.Id, "Type A", "1,2")
	item := testhelpers.CreateTestPlotGroupItem(t, app, group.Id, rate.Id, 100)

	// Delete the project, which should cascade delete category -> group -> item
	if err := app.Delete(proj); err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}

	if _, err := app.FindRecordById("plot_categories", category.Id); err == nil {
		t.Error("plot_category should have been cascade-deleted")
	}
	if _, err := app.FindRecordById("plot_groups", group.Id); err == nil {
		t.Error("plot_group should have been cascade-deleted")
	}
	if _, err := app.FindRecordById("plot_group_items", item.Id); err == nil {
		t.Error("plot_group_item should have been cascade-deleted")
	}

	// The rate catalogue is shared and must survive.
	if _, err := app.FindRecordById("rates", rate.Id); err != nil {
		t.Errorf("rate should not be deleted with project: %v", err)
	}
}
