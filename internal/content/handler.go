package content

import (
	"encoding/json"
	"net/http"

	"github.com/monteverde-landscapes/website-api/pkg/logging"
)

// Handler serves the marketing copy as JSON so client pages and previews can
// render from the same data the site ships with.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a content handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// Services handles GET /api/content/services.
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]any{"ok": true, "services": Services})
}

// Projects handles GET /api/content/projects.
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]any{"ok": true, "projects": Projects})
}

// Process handles GET /api/content/process.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]any{"ok": true, "steps": Process})
}

func (h *Handler) respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("content: failed to encode response", "error", err)
	}
}
