package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"plotsummary/services"
)

// ResponseSaver delivers an export file as an HTTP download.
type ResponseSaver struct {
	W http.ResponseWriter
}

func (s ResponseSaver) Save(_ context.Context, filename, contentType string, data []byte) error {
	s.W.Header().Set("Content-Type", contentType)
	s.W.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(filename)))
	s.W.WriteHeader(http.StatusOK)
	_, err := s.W.Write(data)
	return err
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

// snapshotError answers a failed LoadSnapshot: 404 for an unknown project,
// 500 for anything else.
func snapshotError(e *core.RequestEvent, area string, err error) error {
	if errors.Is(err, ErrProjectNotFound) {
		log.Printf("%s: %v", area, err)
		return ErrorToast(e, http.StatusNotFound, "Project not found")
	}
	log.Errorf("%s: %v", area, err)
	return ErrorToast(e, http.StatusInternalServerError, "Failed to load project data")
}

// HandleSummaryExportExcel returns a handler that generates and downloads the
// plot summary spreadsheet of a project.
func HandleSummaryExportExcel(app *pocketbase.PocketBase, cf services.CurrencyFormatter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing project ID")
		}

		snap, err := LoadSnapshot(app, projectID)
		if err != nil {
			return snapshotError(e, "export_summary", err)
		}

		if err := services.ExportSnapshot(e.Request.Context(), snap, cf, ResponseSaver{W: e.Response}); err != nil {
			log.WithField("project", projectID).Errorf("export_summary: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}
		return nil
	}
}

// HandleSummaryExportPDF returns a handler that generates and downloads the
// per-group summary of a project as a PDF.
func HandleSummaryExportPDF(app *pocketbase.PocketBase, cf services.CurrencyFormatter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing project ID")
		}

		snap, err := LoadSnapshot(app, projectID)
		if err != nil {
			return snapshotError(e, "export_summary_pdf", err)
		}

		doc := services.SummaryDocument{
			Contract:      snap.Project.Contract,
			Client:        snap.Project.Client,
			Address:       snap.Project.Address,
			GeneratedDate: time.Now().Format("02 Jan 2006"),
			Summary:       services.BuildGroupSummary(snap.Categories, snap.Project.SundriesPercentage),
		}

		pdfBytes, err := services.GenerateSummaryPDF(doc, cf)
		if err != nil {
			log.WithField("project", projectID).Errorf("export_summary_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		saver := ResponseSaver{W: e.Response}
		if err := saver.Save(e.Request.Context(), snap.Project.Contract+".pdf", "application/pdf", pdfBytes); err != nil {
			log.Printf("export_summary_pdf: write response: %v", err)
		}
		return nil
	}
}
