package reviews

import (
	"strings"
	"time"
)

// Moderation statuses. Submissions always start pending; an external
// moderation step moves them to approved or rejected. Only approved reviews
// are ever listed publicly.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Review is a customer-submitted testimonial.
type Review struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Rating      int       `json:"rating"`
	Message     string    `json:"message"`
	Location    string    `json:"location,omitempty"`
	ProjectType string    `json:"projectType,omitempty"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ApprovedReview is the public listing shape. The submitter's email is
// deliberately absent.
type ApprovedReview struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Rating      int       `json:"rating"`
	Message     string    `json:"message"`
	Location    string    `json:"location,omitempty"`
	ProjectType string    `json:"projectType,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateReviewRequest is the normalized payload for a review insert.
type CreateReviewRequest struct {
	FullName    string
	Email       string
	Rating      int
	Message     string
	Location    string
	ProjectType string
}

// Validate checks the request carries everything a review must have.
func (r *CreateReviewRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrMissingFullName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrMissingMessage
	}
	return nil
}
