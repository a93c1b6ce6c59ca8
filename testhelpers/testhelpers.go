// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"plotsummary/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

func save(t *testing.T, app *pocketbase.PocketBase, collection string, fields map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		t.Fatalf("failed to find %s collection: %v", collection, err)
	}

	record := core.NewRecord(col)
	for k, v := range fields {
		record.Set(k, v)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test %s record: %v", collection, err)
	}

	return record
}

// CreateTestProject creates a project record with the given contract and sundries percentage.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, contract string, sundriesPercentage float64) *core.Record {
	t.Helper()
	return save(t, app, "projects", map[string]any{
		"client":              "Test Client",
		"contract":            contract,
		"address":             "1 Test Street",
		"sundries_percentage": sundriesPercentage,
	})
}

// CreateTestRateType creates a rate type with the given name.
func CreateTestRateType(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()
	return save(t, app, "rate_types", map[string]any{"name": name})
}

// CreateTestRate creates a catalogue rate. rateTypeID may be empty.
func CreateTestRate(t *testing.T, app *pocketbase.PocketBase, name string, costPerUnit float64, rateTypeID string) *core.Record {
	t.Helper()
	return save(t, app, "rates", map[string]any{
		"name":                name,
		"unit_of_measurement": "nr",
		"cost_per_unit":       costPerUnit,
		"rate_type":           rateTypeID,
	})
}

// CreateTestProjectRate overrides a rate's cost for one project.
func CreateTestProjectRate(t *testing.T, app *pocketbase.PocketBase, projectID, rateID string, costPerUnit float64) *core.Record {
	t.Helper()
	return save(t, app, "project_rates", map[string]any{
		"project":       projectID,
		"rate":          rateID,
		"cost_per_unit": costPerUnit,
	})
}

// CreateTestPlotCategory creates a plot category linked to a project.
func CreateTestPlotCategory(t *testing.T, app *pocketbase.PocketBase, projectID, name string) *core.Record {
	t.Helper()
	return save(t, app, "plot_categories", map[string]any{
		"project": projectID,
		"name":    name,
	})
}

// CreateTestPlotGroup creates a plot group inside a category.
func CreateTestPlotGroup(t *testing.T, app *pocketbase.PocketBase, projectID, categoryID, name, plots string) *core.Record {
	t.Helper()
	return save(t, app, "plot_groups", map[string]any{
		"project":       projectID,
		"plot_category": categoryID,
		"name":          name,
		"plots":         plots,
	})
}

// CreateTestPlotGroupItem creates a line item inside a plot group.
func CreateTestPlotGroupItem(t *testing.T, app *pocketbase.PocketBase, groupID, rateID string, quantity int) *core.Record {
	t.Helper()
	return save(t, app, "plot_group_items", map[string]any{
		"plot_group": groupID,
		"rate":       rateID,
		"quantity":   quantity,
	})
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
