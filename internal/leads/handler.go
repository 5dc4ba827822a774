package leads

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/monteverde-landscapes/website-api/internal/forms"
	"github.com/monteverde-landscapes/website-api/internal/observability/metrics"
	"github.com/monteverde-landscapes/website-api/pkg/logging"
)

// Notifier receives best-effort notifications after a successful insert.
// Implementations must never block the caller on delivery or surface
// failures; by the time these run the HTTP outcome is already decided.
type Notifier interface {
	LeadReceived(lead *Lead)
	QuoteReceived(quote *Quote)
}

// Handler handles HTTP requests for lead and quote submissions
type Handler struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.FormMetrics
	logger   *logging.Logger
}

// NewHandler creates a new leads handler
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

// CreateLead handles POST /api/lead requests. Validation order is fixed:
// name, email presence, email format, then message. A contact-source
// submission without a message is rejected; a quote-source one gets a
// placeholder instead.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.metrics.ObserveSubmission("lead", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fullName := forms.FirstString(body, forms.FullNameKeys...)
	if fullName == "" {
		h.metrics.ObserveSubmission("lead", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrMissingFullName.Error())
		return
	}

	if !forms.IsNonEmptyString(body["email"]) {
		h.metrics.ObserveSubmission("lead", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrMissingEmail.Error())
		return
	}
	if !forms.IsValidEmail(body["email"]) {
		h.metrics.ObserveSubmission("lead", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, "email is invalid")
		return
	}

	source := forms.Source(body)
	message := forms.FirstString(body, forms.MessageKeys...)
	if message == "" {
		switch source {
		case "quote":
			message = forms.QuotePlaceholderMessage
		case "contact":
			h.metrics.ObserveSubmission("lead", metrics.OutcomeRejected)
			respondError(w, http.StatusBadRequest, ErrMissingMessage.Error())
			return
		}
	}

	req := &CreateLeadRequest{
		FullName: fullName,
		Email:    forms.FirstString(body, "email"),
		Phone:    forms.FirstString(body, forms.PhoneKeys...),
		Address:  forms.FirstString(body, "address"),
		Message:  message,
		Service:  forms.FirstString(body, "service"),
		Budget:   forms.FirstString(body, "budget"),
		Timeline: forms.FirstString(body, "timeline"),
		Source:   source,
		PagePath: forms.FirstString(body, "pagePath"),
		UTM:      forms.UTM(body),
	}

	lead, err := h.repo.CreateLead(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create lead", "error", err, "source", source)
		h.metrics.ObserveSubmission("lead", metrics.OutcomeFailed)
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.logger.Info("lead created", "id", lead.ID, "source", lead.Source)
	if h.notifier != nil {
		h.notifier.LeadReceived(lead)
	}

	h.metrics.ObserveSubmission("lead", metrics.OutcomeAccepted)
	h.metrics.ObserveLatency("lead", time.Since(start).Seconds())
	respondOK(w)
}

// CreateQuote handles POST /api/quote requests. Quotes always require a
// message; the historical key spellings for name, phone, postcode, project
// type and message are all accepted.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.metrics.ObserveSubmission("quote", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fullName := forms.FirstString(body, forms.FullNameKeys...)
	if fullName == "" {
		h.metrics.ObserveSubmission("quote", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrMissingFullName.Error())
		return
	}

	if !forms.IsNonEmptyString(body["email"]) {
		h.metrics.ObserveSubmission("quote", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrMissingEmail.Error())
		return
	}
	if !forms.IsValidEmail(body["email"]) {
		h.metrics.ObserveSubmission("quote", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, "email is invalid")
		return
	}

	message := forms.FirstString(body, forms.MessageKeys...)
	if message == "" {
		h.metrics.ObserveSubmission("quote", metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, ErrMissingMessage.Error())
		return
	}

	req := &CreateQuoteRequest{
		FullName:    fullName,
		Email:       forms.FirstString(body, "email"),
		Phone:       forms.FirstString(body, forms.PhoneKeys...),
		Postcode:    forms.FirstString(body, forms.PostcodeKeys...),
		ProjectType: forms.FirstString(body, forms.ProjectTypeKeys...),
		Message:     message,
		Source:      forms.Source(body),
	}

	quote, err := h.repo.CreateQuote(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create quote", "error", err)
		h.metrics.ObserveSubmission("quote", metrics.OutcomeFailed)
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.logger.Info("quote created", "id", quote.ID)
	if h.notifier != nil {
		h.notifier.QuoteReceived(quote)
	}

	h.metrics.ObserveSubmission("quote", metrics.OutcomeAccepted)
	h.metrics.ObserveLatency("quote", time.Since(start).Seconds())
	respondOK(w)
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
