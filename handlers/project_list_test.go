package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plotsummary/testhelpers"
)

func TestHandleProjectList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleProjectList(app)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No projects yet")
}

func TestHandleProjectList_WithProjects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	alpha := testhelpers.CreateTestProject(t, app, "Alpha Contract", 5)
	testhelpers.CreateTestProject(t, app, "Beta Contract", 5)
	testhelpers.CreateTestPlotCategory(t, app, alpha.Id, "Phase 1")

	handler := HandleProjectList(app)
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Alpha Contract",
		"Beta Contract",
		fmt.Sprintf(`href="/projects/%s/summary"`, alpha.Id),
	)
	if strings.Index(body, "Alpha Contract") > strings.Index(body, "Beta Contract") {
		t.Error("expected projects ordered by contract")
	}
}

func TestHandleProjectList_HTMXPartial(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "Partial Contract", 5)

	handler := HandleProjectList(app)
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX request should render the partial only")
	}
	testhelpers.AssertHTMLContains(t, body, "Partial Contract")
}
