// Package webform implements the submission state machine shared by the
// site's contact, quote and review forms: per-field validation with touched
// tracking, an idle/submitting/success/error lifecycle, and a single JSON
// POST per submit attempt.
package webform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/monteverde-landscapes/website-api/internal/forms"
)

// State is the submission lifecycle state.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Generic user-facing messages. Field-specific messages come from the rules.
const (
	msgFixFields   = "Please fix the highlighted fields."
	msgServerError = "Something went wrong. Please try again."
	msgNetworkFail = "Network error. Please check your connection and try again."
)

// Rule validates a single field value and returns an error message, or ""
// when the value is acceptable.
type Rule func(value string) string

// Required rejects empty and whitespace-only values.
func Required(message string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// Email rejects values that do not look like an email address.
func Email(message string) Rule {
	return func(value string) string {
		if !forms.IsValidEmail(strings.TrimSpace(value)) {
			return message
		}
		return ""
	}
}

// Rating rejects values that are not a whole number from 1 to 5.
func Rating(message string) Rule {
	return func(value string) string {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 1 || n > 5 {
			return message
		}
		return ""
	}
}

// Optional accepts anything. Useful for fields that are collected but never
// validated, so they still participate in payload encoding and reset.
func Optional() Rule {
	return func(string) string { return "" }
}

// FieldSpec declares one tracked form field.
type FieldSpec struct {
	// Name is both the field identifier and its JSON payload key.
	Name string
	// Rule validates the field. Required for every field; use Optional()
	// for fields without constraints.
	Rule Rule
	// Numeric encodes the value as a JSON number instead of a string.
	// Non-numeric values are sent as-is and left for the server to reject.
	Numeric bool
	// Default is the initial value, restored on reset.
	Default string
}

// Config configures a Controller.
type Config struct {
	// Endpoint is the absolute URL the form POSTs to.
	Endpoint string
	// Fields declares the tracked fields in display order.
	Fields []FieldSpec
	// Extra is merged into every payload unchanged (e.g. source, utm).
	Extra map[string]any
	// ResetOnSuccess restores all fields to their defaults after a
	// successful submit. Review forms use this; contact forms keep the
	// values so the thank-you state can echo them.
	ResetOnSuccess bool
	// HTTPClient defaults to a client with a 15s timeout.
	HTTPClient *http.Client
}

// Controller holds the live state of one form instance. It mirrors browser
// usage and is not safe for concurrent use.
type Controller struct {
	cfg     Config
	order   []string
	fields  map[string]*fieldState
	state   State
	message string
	client  *http.Client
}

type fieldState struct {
	spec    FieldSpec
	value   string
	touched bool
	err     string
}

// New creates a controller in the idle state with all fields at their
// defaults and untouched.
func New(cfg Config) *Controller {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	c := &Controller{
		cfg:    cfg,
		fields: make(map[string]*fieldState, len(cfg.Fields)),
		state:  StateIdle,
		client: client,
	}
	for _, spec := range cfg.Fields {
		c.order = append(c.order, spec.Name)
		c.fields[spec.Name] = &fieldState{spec: spec, value: spec.Default}
	}
	c.revalidate()
	return c
}

// Set updates a field value and recomputes all derived errors.
func (c *Controller) Set(name, value string) {
	f, ok := c.fields[name]
	if !ok {
		return
	}
	f.value = value
	c.revalidate()
}

// Touch marks a field as touched, making its error (if any) visible.
func (c *Controller) Touch(name string) {
	if f, ok := c.fields[name]; ok {
		f.touched = true
	}
}

// Value returns the current value of a field.
func (c *Controller) Value(name string) string {
	if f, ok := c.fields[name]; ok {
		return f.value
	}
	return ""
}

// FieldError returns the visible error for a field: the derived error when
// the field has been touched, "" otherwise.
func (c *Controller) FieldError(name string) string {
	f, ok := c.fields[name]
	if !ok || !f.touched {
		return ""
	}
	return f.err
}

// Errors returns every derived error regardless of touched state, keyed by
// field name.
func (c *Controller) Errors() map[string]string {
	errs := make(map[string]string)
	for name, f := range c.fields {
		if f.err != "" {
			errs[name] = f.err
		}
	}
	return errs
}

// CanSubmit reports whether the derived error set is empty.
func (c *Controller) CanSubmit() bool {
	for _, f := range c.fields {
		if f.err != "" {
			return false
		}
	}
	return true
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Message returns the user-facing message for the current state ("" unless
// the state is error).
func (c *Controller) Message() string { return c.message }

// Submit runs one submission attempt and returns the resulting state.
//
// All fields are forced to touched first so hidden errors become visible.
// When any derived error remains the attempt aborts locally without a
// network call. Otherwise exactly one POST is issued; there is no retry.
func (c *Controller) Submit(ctx context.Context) State {
	for _, f := range c.fields {
		f.touched = true
	}
	if !c.CanSubmit() {
		c.state = StateError
		c.message = msgFixFields
		return c.state
	}

	c.state = StateSubmitting
	c.message = ""

	ok, serverMsg, err := c.post(ctx)
	switch {
	case err != nil:
		c.state = StateError
		c.message = msgNetworkFail
	case !ok:
		c.state = StateError
		if serverMsg != "" {
			c.message = serverMsg
		} else {
			c.message = msgServerError
		}
	default:
		if c.cfg.ResetOnSuccess {
			c.Reset()
		}
		c.state = StateSuccess
	}
	return c.state
}

// Reset restores defaults, clears touched flags and returns to idle.
func (c *Controller) Reset() {
	for _, f := range c.fields {
		f.value = f.spec.Default
		f.touched = false
	}
	c.state = StateIdle
	c.message = ""
	c.revalidate()
}

func (c *Controller) revalidate() {
	for _, f := range c.fields {
		f.err = f.spec.Rule(f.value)
	}
}

func (c *Controller) payload() map[string]any {
	body := make(map[string]any, len(c.fields)+len(c.cfg.Extra))
	for k, v := range c.cfg.Extra {
		body[k] = v
	}
	for _, name := range c.order {
		f := c.fields[name]
		value := strings.TrimSpace(f.value)
		if value == "" {
			continue
		}
		if f.spec.Numeric {
			if n, err := strconv.Atoi(value); err == nil {
				body[name] = n
				continue
			}
		}
		body[name] = value
	}
	return body
}

// post issues the single submission request. The bool result is the server's
// verdict; the error result is reserved for transport failures.
func (c *Controller) post(ctx context.Context) (bool, string, error) {
	raw, err := json.Marshal(c.payload())
	if err != nil {
		return false, "", fmt.Errorf("webform: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(raw))
	if err != nil {
		return false, "", fmt.Errorf("webform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, "", fmt.Errorf("webform: request failed: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	// An unparseable body on a 2xx still counts as failure: the contract is
	// an explicit ok:true.
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, body.Error, nil
	}
	if decodeErr != nil || !body.OK {
		return false, body.Error, nil
	}
	return true, "", nil
}
