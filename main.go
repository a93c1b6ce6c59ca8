package main

import (
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"plotsummary/collections"
	"plotsummary/handlers"
	"plotsummary/internal/config"
	"plotsummary/services"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel())

	cf, err := services.NewCurrencyFormatter(cfg.Export.Locale)
	if err != nil {
		log.Fatalf("invalid export locale: %v", err)
	}

	app := pocketbase.New()
	app.RootCmd.AddCommand(newExportSummaryCommand(app, cf, cfg.Export.OutDir))

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if cfg.Seed.Enabled {
			if err := collections.Seed(app); err != nil {
				log.Warnf("seed data failed: %v", err)
			}
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Projects ─────────────────────────────────────────────
		se.Router.GET("/projects", handlers.HandleProjectList(app))

		// ── Plot summary ─────────────────────────────────────────
		se.Router.GET("/projects/{id}/summary", handlers.HandleSummaryView(app, cf))
		se.Router.GET("/projects/{id}/summary/export/excel", handlers.HandleSummaryExportExcel(app, cf))
		se.Router.GET("/projects/{id}/summary/export/pdf", handlers.HandleSummaryExportPDF(app, cf))

		se.Router.GET("/projects/{id}", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, fmt.Sprintf("/projects/%s/summary", e.Request.PathValue("id")))
		})

		// Redirect home to projects list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/projects")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
