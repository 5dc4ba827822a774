package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/monteverde-landscapes/website-api/pkg/logging"
)

func TestHandler_Services(t *testing.T) {
	h := NewHandler(logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/content/services", nil)
	w := httptest.NewRecorder()
	h.Services(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type: %s", ct)
	}

	var resp struct {
		OK       bool          `json:"ok"`
		Services []ServiceItem `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.OK {
		t.Error("expected ok=true")
	}
	if len(resp.Services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(resp.Services))
	}
	if resp.Services[0].ID != "landscape-design" {
		t.Errorf("unexpected first service: %s", resp.Services[0].ID)
	}
	for _, svc := range resp.Services {
		if svc.Title == "" || svc.Description == "" {
			t.Errorf("service %s missing copy", svc.ID)
		}
		if len(svc.Highlights) == 0 {
			t.Errorf("service %s has no highlights", svc.ID)
		}
	}
}

func TestHandler_Process(t *testing.T) {
	h := NewHandler(logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/content/process", nil)
	w := httptest.NewRecorder()
	h.Process(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		OK    bool          `json:"ok"`
		Steps []ProcessStep `json:"steps"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Steps) != 4 {
		t.Fatalf("expected 4 process steps, got %d", len(resp.Steps))
	}
	for i, step := range resp.Steps {
		if step.Step != i+1 {
			t.Errorf("step %d out of order: got number %d", i, step.Step)
		}
	}
}

func TestHandler_Projects(t *testing.T) {
	h := NewHandler(logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/content/projects", nil)
	w := httptest.NewRecorder()
	h.Projects(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		OK       bool               `json:"ok"`
		Projects []ProjectHighlight `json:"projects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Projects) == 0 {
		t.Fatal("expected at least one project")
	}
	if w.Header().Get("Cache-Control") == "" {
		t.Error("expected cache headers on static content")
	}
}
