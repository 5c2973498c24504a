package jira

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/serena-hb/jiractx/pkg/models"
)

// fakeSettingsServer serves the two settings endpoints and counts requests.
func fakeSettingsServer(t *testing.T, requests *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/field":
			json.NewEncoder(w).Encode([]models.Field{
				{ID: "summary", Name: "Summary", Custom: false},
				{ID: "customfield_10010", Name: "Story Points", Custom: true},
				{ID: "customfield_10020", Name: "Sprint", Custom: true},
			})
		case r.URL.Path == "/project/ABC/statuses":
			json.NewEncoder(w).Encode([]models.IssueTypeStatuses{
				{
					Name: "Task",
					Statuses: []models.Status{
						{Name: "To Do"},
						{Name: "In Progress"},
						{Name: "Done"},
					},
				},
				{
					Name: "Bug",
					Statuses: []models.Status{
						{Name: "Open"},
						{Name: "Closed"},
					},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				ErrorMessages: []string{"No project could be found with key or id"},
			})
		}
	}))
}

func TestProjectContext(t *testing.T) {
	var requests int
	srv := fakeSettingsServer(t, &requests)
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx, err := ProjectContext(NewFieldService(c), NewProjectService(c), "ABC")
	if err != nil {
		t.Fatalf("ProjectContext returned error: %v", err)
	}

	// One request for fields, one for statuses
	if requests != 2 {
		t.Errorf("issued %d requests, want 2", requests)
	}

	wantFields := map[string]string{
		"customfield_10010": "Story Points",
		"customfield_10020": "Sprint",
	}
	if len(ctx.CustomFields) != len(wantFields) {
		t.Errorf("got %d custom fields, want %d", len(ctx.CustomFields), len(wantFields))
	}
	for id, name := range wantFields {
		if got := ctx.CustomFields[id]; got != name {
			t.Errorf("custom field %s = %q, want %q", id, got, name)
		}
	}
	if _, ok := ctx.CustomFields["summary"]; ok {
		t.Error("standard field 'summary' should not appear in custom fields")
	}

	if len(ctx.Statuses) != 2 {
		t.Fatalf("got %d issue types, want 2", len(ctx.Statuses))
	}
	if ctx.Statuses[0].IssueType != "Task" || ctx.Statuses[1].IssueType != "Bug" {
		t.Errorf("issue types out of order: %q, %q", ctx.Statuses[0].IssueType, ctx.Statuses[1].IssueType)
	}
	wantTask := []string{"To Do", "In Progress", "Done"}
	if len(ctx.Statuses[0].Statuses) != len(wantTask) {
		t.Fatalf("Task statuses %v, want %v", ctx.Statuses[0].Statuses, wantTask)
	}
	for i, name := range wantTask {
		if ctx.Statuses[0].Statuses[i] != name {
			t.Errorf("Task status %d = %q, want %q", i, ctx.Statuses[0].Statuses[i], name)
		}
	}
}

func TestProjectContext_AbortsOnFieldError(t *testing.T) {
	var fieldRequests, statusRequests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/field" {
			fieldRequests++
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				ErrorMessages: []string{"You do not have permission"},
			})
			return
		}
		statusRequests++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := ProjectContext(NewFieldService(c), NewProjectService(c), "ABC"); err == nil {
		t.Fatal("expected error, got nil")
	}

	if fieldRequests != 1 {
		t.Errorf("issued %d field requests, want 1", fieldRequests)
	}
	if statusRequests != 0 {
		t.Errorf("issued %d status requests after a failure, want 0", statusRequests)
	}
}

func TestStatuses_ProjectNotFound(t *testing.T) {
	var requests int
	srv := fakeSettingsServer(t, &requests)
	defer srv.Close()

	svc := NewProjectService(newTestClient(srv.URL))

	_, err := svc.Statuses("NOPE")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q should mention the project was not found", err)
	}
}

func TestStatuses_EmptyProjectKey(t *testing.T) {
	svc := NewProjectService(newTestClient("http://127.0.0.1:0"))

	if _, err := svc.Statuses(""); err == nil {
		t.Error("expected error for empty project key, got nil")
	}
}
