package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimiter(0.0001, 3) // effectively no refill during the test

	for i := 0; i < 3; i++ {
		if !rl.Allow("203.0.113.10") {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if rl.Allow("203.0.113.10") {
		t.Error("request beyond burst should be rejected")
	}
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	rl := NewRateLimiter(0.0001, 1)

	if !rl.Allow("203.0.113.10") {
		t.Fatal("first client should be allowed")
	}
	if rl.Allow("203.0.113.10") {
		t.Error("first client should now be limited")
	}
	if !rl.Allow("203.0.113.20") {
		t.Error("a different client must not share the first client's bucket")
	}
}

func TestRateLimit_Returns429JSON(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := RateLimit(0.0001, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/lead", nil)
	req.Header.Set("X-Real-Ip", "203.0.113.10")

	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("limited response should be JSON, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"ok":false`) {
		t.Errorf("limited response should use the envelope, got %s", rec.Body.String())
	}
}
