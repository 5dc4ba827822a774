package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/monteverde-landscapes/website-api/internal/leads"
	"github.com/monteverde-landscapes/website-api/internal/reviews"
	"github.com/monteverde-landscapes/website-api/pkg/logging"
)

// dispatchTimeout bounds each background notification attempt. The HTTP
// response has already been decided by the time a notification runs, so a
// slow provider only delays the log line.
const dispatchTimeout = 10 * time.Second

// Service sends operator notifications when a form submission lands.
//
// The *Received methods are fire-and-forget: they return immediately,
// delivery happens in the background and failures are logged, never
// surfaced. The Notify* methods are the synchronous building blocks.
type Service struct {
	email  EmailSender
	to     string
	logger *logging.Logger

	wg sync.WaitGroup
}

// NewService creates a notification service delivering to the given operator
// address. A nil sender or empty recipient disables delivery; the service
// then only logs.
func NewService(email EmailSender, to string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		email:  email,
		to:     to,
		logger: logger,
	}
}

// LeadReceived dispatches a new-lead notification in the background.
func (s *Service) LeadReceived(lead *leads.Lead) {
	s.dispatch("lead", func(ctx context.Context) error {
		return s.NotifyNewLead(ctx, lead)
	})
}

// QuoteReceived dispatches a new-quote notification in the background.
func (s *Service) QuoteReceived(quote *leads.Quote) {
	s.dispatch("quote", func(ctx context.Context) error {
		return s.NotifyNewQuote(ctx, quote)
	})
}

// ReviewReceived dispatches a new-review notification in the background.
func (s *Service) ReviewReceived(review *reviews.Review) {
	s.dispatch("review", func(ctx context.Context) error {
		return s.NotifyNewReview(ctx, review)
	})
}

// dispatch runs fn detached from the request that triggered it. Failures are
// logged and discarded; callers have no way to observe the outcome.
func (s *Service) dispatch(kind string, fn func(context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.logger.Error("notify: background notification failed", "kind", kind, "error", err)
		}
	}()
}

// Wait blocks until all in-flight notifications finish. Called during
// graceful shutdown so pending emails get a chance to go out.
func (s *Service) Wait() {
	s.wg.Wait()
}

// NotifyNewLead sends the operator an email about a new lead.
func (s *Service) NotifyNewLead(ctx context.Context, lead *leads.Lead) error {
	if s.email == nil || s.to == "" {
		s.logger.Debug("notify: email delivery disabled, skipping lead notification")
		return nil
	}

	subject := fmt.Sprintf("New enquiry from %s", lead.FullName)
	body := fmt.Sprintf(`A new enquiry has come in via the website.

Name: %s
Email: %s
Phone: %s
Source: %s
Message: %s%s

— Monteverde Landscapes website`,
		lead.FullName, lead.Email, orDash(lead.Phone), lead.Source, lead.Message, formatPagePath(lead.PagePath))

	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2>New enquiry</h2>
<table style="border-collapse: collapse;">
  %s%s%s%s
</table>
<p style="white-space: pre-line;">%s</p>
</div>`,
		htmlRow("Name", lead.FullName),
		htmlRow("Email", lead.Email),
		htmlRow("Phone", orDash(lead.Phone)),
		htmlRow("Source", lead.Source),
		lead.Message)

	if err := s.email.Send(ctx, EmailMessage{To: s.to, Subject: subject, Body: body, HTML: html}); err != nil {
		return fmt.Errorf("notify: lead email: %w", err)
	}
	s.logger.Info("notify: lead email sent", "to", s.to, "lead_id", lead.ID)
	return nil
}

// NotifyNewQuote sends the operator an email about a new quote request.
func (s *Service) NotifyNewQuote(ctx context.Context, quote *leads.Quote) error {
	if s.email == nil || s.to == "" {
		s.logger.Debug("notify: email delivery disabled, skipping quote notification")
		return nil
	}

	subject := fmt.Sprintf("Quote request from %s", quote.FullName)
	body := fmt.Sprintf(`A new quote request has come in via the website.

Name: %s
Email: %s
Phone: %s
Postcode: %s
Project type: %s
Message: %s

— Monteverde Landscapes website`,
		quote.FullName, quote.Email, orDash(quote.Phone), orDash(quote.Postcode), orDash(quote.ProjectType), quote.Message)

	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2>Quote request</h2>
<table style="border-collapse: collapse;">
  %s%s%s%s%s
</table>
<p style="white-space: pre-line;">%s</p>
</div>`,
		htmlRow("Name", quote.FullName),
		htmlRow("Email", quote.Email),
		htmlRow("Phone", orDash(quote.Phone)),
		htmlRow("Postcode", orDash(quote.Postcode)),
		htmlRow("Project type", orDash(quote.ProjectType)),
		quote.Message)

	if err := s.email.Send(ctx, EmailMessage{To: s.to, Subject: subject, Body: body, HTML: html}); err != nil {
		return fmt.Errorf("notify: quote email: %w", err)
	}
	s.logger.Info("notify: quote email sent", "to", s.to, "quote_id", quote.ID)
	return nil
}

// NotifyNewReview sends the operator an email about a review awaiting
// moderation.
func (s *Service) NotifyNewReview(ctx context.Context, review *reviews.Review) error {
	if s.email == nil || s.to == "" {
		s.logger.Debug("notify: email delivery disabled, skipping review notification")
		return nil
	}

	subject := fmt.Sprintf("New review awaiting moderation (%s)", stars(review.Rating))
	body := fmt.Sprintf(`A new review is awaiting moderation.

Name: %s
Rating: %d/5
Location: %s
Project type: %s

%s

— Monteverde Landscapes website`,
		review.FullName, review.Rating, orDash(review.Location), orDash(review.ProjectType), review.Message)

	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2>New review: %s</h2>
<table style="border-collapse: collapse;">
  %s%s%s
</table>
<blockquote style="white-space: pre-line;">%s</blockquote>
<p>Approve or reject it in the moderation dashboard.</p>
</div>`,
		stars(review.Rating),
		htmlRow("Name", review.FullName),
		htmlRow("Location", orDash(review.Location)),
		htmlRow("Project type", orDash(review.ProjectType)),
		review.Message)

	if err := s.email.Send(ctx, EmailMessage{To: s.to, Subject: subject, Body: body, HTML: html}); err != nil {
		return fmt.Errorf("notify: review email: %w", err)
	}
	s.logger.Info("notify: review email sent", "to", s.to, "review_id", review.ID)
	return nil
}

func htmlRow(label, value string) string {
	return fmt.Sprintf(`<tr><td style="padding: 6px; border-bottom: 1px solid #e5e7eb;"><strong>%s:</strong></td><td style="padding: 6px; border-bottom: 1px solid #e5e7eb;">%s</td></tr>`, label, value)
}

func formatPagePath(p string) string {
	if p == "" {
		return ""
	}
	return "\nPage: " + p
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func stars(rating int) string {
	if rating < 1 || rating > 5 {
		return "unrated"
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Ensure the service satisfies the handlers' notifier interfaces.
var _ leads.Notifier = (*Service)(nil)
var _ reviews.Notifier = (*Service)(nil)
