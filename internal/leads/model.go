package leads

import (
	"strings"
	"time"
)

// Lead statuses are managed by the back office after capture; submissions
// always start as new.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusLost       = "lost"
)

// Lead is a prospective-customer contact record captured from the contact
// form (or any page that posts to /api/lead).
type Lead struct {
	ID        string            `json:"id"`
	FullName  string            `json:"fullName"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Address   string            `json:"address,omitempty"`
	Message   string            `json:"message"`
	Service   string            `json:"service,omitempty"`
	Budget    string            `json:"budget,omitempty"`
	Timeline  string            `json:"timeline,omitempty"`
	Source    string            `json:"source"`
	PagePath  string            `json:"pagePath,omitempty"`
	UTM       map[string]string `json:"utm,omitempty"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Quote is a lead variant captured from the quote form and stored in its own
// collection.
type Quote struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Postcode    string    `json:"postcode,omitempty"`
	ProjectType string    `json:"projectType,omitempty"`
	Message     string    `json:"message"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateLeadRequest is the normalized payload for a lead insert. Handlers
// are responsible for alias resolution and trimming before building it.
type CreateLeadRequest struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Message  string
	Service  string
	Budget   string
	Timeline string
	Source   string
	PagePath string
	UTM      map[string]string
}

// Validate checks the request has the fields every lead must carry.
func (r *CreateLeadRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrMissingFullName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	return nil
}

// CreateQuoteRequest is the normalized payload for a quote insert.
type CreateQuoteRequest struct {
	FullName    string
	Email       string
	Phone       string
	Postcode    string
	ProjectType string
	Message     string
	Source      string
}

// Validate checks the request has the fields every quote must carry.
func (r *CreateQuoteRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrMissingFullName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrMissingMessage
	}
	return nil
}
