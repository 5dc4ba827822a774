// Command submit drives the site's form controllers against a running API
// server from the terminal. Handy for smoke-testing a deployment without
// opening the browser.
//
// Usage:
//
//	submit -form contact -name "Maria Gonzalez" -email maria@email.com -message "Patio quote please"
//	submit -form quote -name "John Smith" -email john@example.com -postcode "M20 2AB" -project patio
//	submit -form review -name "Maria Gonzalez" -email maria@email.com -rating 5 -message "Great work"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/monteverde-landscapes/website-api/internal/webform"
)

func main() {
	var (
		form     = flag.String("form", "contact", "form to submit: contact, quote, quote-request or review")
		baseURL  = flag.String("base", "http://localhost:8080", "API base URL")
		name     = flag.String("name", "", "full name")
		email    = flag.String("email", "", "email address")
		phone    = flag.String("phone", "", "phone number")
		message  = flag.String("message", "", "message text")
		postcode = flag.String("postcode", "", "postcode (quote form)")
		project  = flag.String("project", "", "project type (quote and review forms)")
		rating   = flag.String("rating", "", "rating 1-5 (review form)")
		location = flag.String("location", "", "location (review form)")
	)
	flag.Parse()

	var c *webform.Controller
	switch *form {
	case "contact":
		c = webform.ContactForm(*baseURL)
	case "quote":
		c = webform.QuoteForm(*baseURL)
	case "quote-request":
		c = webform.QuoteRequestForm(*baseURL)
	case "review":
		c = webform.ReviewForm(*baseURL)
	default:
		fmt.Fprintf(os.Stderr, "unknown form %q (want contact, quote, quote-request or review)\n", *form)
		os.Exit(2)
	}

	set := func(field, value string) {
		if value != "" {
			c.Set(field, value)
		}
	}
	set("fullName", *name)
	set("email", *email)
	set("phone", *phone)
	set("message", *message)
	set("postcode", *postcode)
	set("projectType", *project)
	set("rating", *rating)
	set("location", *location)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Printf("submitting %s form to %s\n", *form, *baseURL)
	state := c.Submit(ctx)

	switch state {
	case webform.StateSuccess:
		fmt.Println("ok: submission accepted")
	case webform.StateError:
		fmt.Printf("error: %s\n", c.Message())
		for field, msg := range c.Errors() {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		os.Exit(1)
	default:
		fmt.Printf("unexpected state: %s\n", state)
		os.Exit(1)
	}
}
