package logging

import "testing"

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus", ""} {
		logger := New(level, "production")
		if logger == nil || logger.Logger == nil {
			t.Fatalf("expected non-nil logger for level %q", level)
		}
	}
}

func TestNew_DevelopmentHandler(t *testing.T) {
	logger := New("info", "development")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	// Must be usable without panicking.
	logger.Info("dev logger works", "key", "value")
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("expected non-nil default logger")
	}
	logger.Info("default logger works")
}
