package handlers

import (
	"net/http"
	"sort"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"plotsummary/templates"
)

// HandleProjectList lists every project with a link to its summary.
func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("projects")
		if err != nil {
			log.Printf("project_list: could not query projects: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].GetString("contract") < records[j].GetString("contract")
		})

		var items []templates.ProjectListItem
		for _, rec := range records {
			categories, err := app.FindRecordsByFilter(
				"plot_categories",
				"project = {:projectId}",
				"", 0, 0,
				map[string]any{"projectId": rec.Id},
			)
			if err != nil {
				categories = nil
			}

			createdDate := "-"
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("02 Jan 2006")
			}

			items = append(items, templates.ProjectListItem{
				ID:            rec.Id,
				Contract:      rec.GetString("contract"),
				Client:        rec.GetString("client"),
				CategoryCount: len(categories),
				CreatedDate:   createdDate,
			})
		}

		data := templates.ProjectListData{Items: items}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ProjectListContent(data)
		} else {
			component = templates.ProjectListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
