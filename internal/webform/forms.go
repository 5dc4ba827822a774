package webform

import "strings"

// The three site forms, declared once so the CLI and any embedded client
// agree on field sets and messages.

// ContactForm builds the contact-page enquiry form posting to /api/lead.
func ContactForm(baseURL string) *Controller {
	return New(Config{
		Endpoint: join(baseURL, "/api/lead"),
		Fields: []FieldSpec{
			{Name: "fullName", Rule: Required("Please enter your name.")},
			{Name: "email", Rule: Email("Please enter a valid email address.")},
			{Name: "phone", Rule: Optional()},
			{Name: "message", Rule: Required("Please tell us about your project.")},
		},
		Extra: map[string]any{"source": "contact"},
	})
}

// QuoteForm builds the quote-page form. It posts to /api/lead with source
// "quote": the message is optional on this path and the server substitutes a
// placeholder when it is empty.
func QuoteForm(baseURL string) *Controller {
	return New(Config{
		Endpoint: join(baseURL, "/api/lead"),
		Fields: []FieldSpec{
			{Name: "fullName", Rule: Required("Please enter your name.")},
			{Name: "email", Rule: Email("Please enter a valid email address.")},
			{Name: "phone", Rule: Optional()},
			{Name: "address", Rule: Optional()},
			{Name: "service", Rule: Optional()},
			{Name: "budget", Rule: Optional()},
			{Name: "timeline", Rule: Optional()},
			{Name: "message", Rule: Optional()},
		},
		Extra: map[string]any{"source": "quote"},
	})
}

// QuoteRequestForm posts to the dedicated /api/quote collection, which
// always requires a message.
func QuoteRequestForm(baseURL string) *Controller {
	return New(Config{
		Endpoint: join(baseURL, "/api/quote"),
		Fields: []FieldSpec{
			{Name: "fullName", Rule: Required("Please enter your name.")},
			{Name: "email", Rule: Email("Please enter a valid email address.")},
			{Name: "phone", Rule: Optional()},
			{Name: "postcode", Rule: Optional()},
			{Name: "projectType", Rule: Optional()},
			{Name: "message", Rule: Required("Please tell us about the work you need.")},
		},
	})
}

// ReviewForm builds the review form posting to /api/review. It resets to
// defaults after a successful submit.
func ReviewForm(baseURL string) *Controller {
	return New(Config{
		Endpoint: join(baseURL, "/api/review"),
		Fields: []FieldSpec{
			{Name: "fullName", Rule: Required("Please enter your name.")},
			{Name: "email", Rule: Email("Please enter a valid email address.")},
			{Name: "rating", Rule: Rating("Please choose a rating from 1 to 5."), Numeric: true, Default: "5"},
			{Name: "location", Rule: Optional()},
			{Name: "projectType", Rule: Optional()},
			{Name: "message", Rule: Required("Please write a few words about the work.")},
		},
		ResetOnSuccess: true,
	})
}

func join(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
