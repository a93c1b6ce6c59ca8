package handlers

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"plotsummary/services"
	"plotsummary/templates"
)

// buildSummaryPageData formats a group summary for display.
func buildSummaryPageData(snap services.Snapshot, cf services.CurrencyFormatter) templates.SummaryPageData {
	summary := services.BuildGroupSummary(snap.Categories, snap.Project.SundriesPercentage)

	line := func(name, plots string, t services.Totals) templates.SummaryLine {
		return templates.SummaryLine{
			Name:     name,
			Plots:    plots,
			Labour:   cf.Format(t.Labour),
			Sundries: cf.Format(t.Sundries),
			Bricks:   strconv.FormatInt(t.Bricks, 10),
			Blocks:   strconv.FormatInt(t.Blocks, 10),
		}
	}

	data := templates.SummaryPageData{
		ProjectID:          snap.Project.ID,
		Contract:           snap.Project.Contract,
		Client:             snap.Project.Client,
		Address:            snap.Project.Address,
		SundriesPercentage: snap.Project.SundriesPercentage.String(),
		Grand:              line("-", "", summary.Grand),
	}
	for _, section := range summary.Categories {
		s := templates.SummarySection{
			Name:  section.Name,
			Total: line("Total", "", section.Totals),
		}
		for _, g := range section.Groups {
			s.Lines = append(s.Lines, line(g.Name, g.PlotList(), g.Totals))
		}
		data.Sections = append(data.Sections, s)
	}
	return data
}

// HandleSummaryView renders the per-group summary of a project.
func HandleSummaryView(app *pocketbase.PocketBase, cf services.CurrencyFormatter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing project ID")
		}

		snap, err := LoadSnapshot(app, projectID)
		if err != nil {
			return snapshotError(e, "summary_view", err)
		}

		data := buildSummaryPageData(snap, cf)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.SummaryContent(data)
		} else {
			component = templates.SummaryPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
