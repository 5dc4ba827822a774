package reviews

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/monteverde-landscapes/website-api/internal/forms"
	"github.com/monteverde-landscapes/website-api/internal/observability/metrics"
	"github.com/monteverde-landscapes/website-api/pkg/logging"
)

// listLimit caps the public listing. No pagination; the reviews page shows
// the 20 most recent approved reviews.
const listLimit = 20

// Notifier receives best-effort notifications after a successful insert.
type Notifier interface {
	ReviewReceived(review *Review)
}

// Handler handles HTTP requests for review submission and listing
type Handler struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.FormMetrics
	logger   *logging.Logger
}

// NewHandler creates a new reviews handler
func NewHandler(repo Repository, notifier Notifier, m *metrics.FormMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Create handles POST /api/review requests. Validation order is fixed:
// name, email presence, email format, rating, message. The rating must be
// exactly an integer 1 through 5; a numeric string never passes.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.metrics.ObserveSubmission("review", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fullName := forms.FirstString(body, forms.FullNameKeys...)
	if fullName == "" {
		h.metrics.ObserveSubmission("review", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrMissingFullName.Error())
		return
	}

	if !forms.IsNonEmptyString(body["email"]) {
		h.metrics.ObserveSubmission("review", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrMissingEmail.Error())
		return
	}
	if !forms.IsValidEmail(body["email"]) {
		h.metrics.ObserveSubmission("review", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, "email is invalid")
		return
	}

	if !forms.IsValidRating(body["rating"]) {
		h.metrics.ObserveSubmission("review", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrInvalidRating.Error())
		return
	}

	message := forms.FirstString(body, forms.MessageKeys...)
	if message == "" {
		h.metrics.ObserveSubmission("review", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrMissingMessage.Error())
		return
	}

	req := &CreateReviewRequest{
		FullName:    fullName,
		Email:       forms.FirstString(body, "email"),
		Rating:      forms.Rating(body["rating"]),
		Message:     message,
		Location:    forms.FirstString(body, "location"),
		ProjectType: forms.FirstString(body, forms.ProjectTypeKeys...),
	}

	review, err := h.repo.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create review", "error", err)
		h.metrics.ObserveSubmission("review", metrics.OutcomeFailed)
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.logger.Info("review created", "id", review.ID, "rating", review.Rating)
	if h.notifier != nil {
		h.notifier.ReviewReceived(review)
	}

	h.metrics.ObserveSubmission("review", metrics.OutcomeAccepted)
	h.metrics.ObserveLatency("review", time.Since(start).Seconds())
	respondOK(w)
}

// List handles GET /api/review requests, returning up to 20 approved
// reviews newest-first. Pending and rejected reviews are never returned.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	approved, err := h.repo.ListApproved(r.Context(), listLimit)
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":      true,
		"reviews": approved,
	})
}

func respondOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": msg})
}
