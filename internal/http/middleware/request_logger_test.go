package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/monteverde-landscapes/website-api/pkg/logging"
)

func TestRequestLogger_PassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("done"))
	})

	mw := RequestLogger(logging.Default())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	mw(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status should pass through, got %d", rec.Code)
	}
	if rec.Body.String() != "done" {
		t.Fatalf("body should pass through, got %q", rec.Body.String())
	}
}

func TestStatusWriter_DefaultsTo200(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("implicit 200"))
	})

	mw := RequestLogger(nil)
	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected implicit 200, got %d", rec.Code)
	}
}
