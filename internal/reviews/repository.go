package reviews

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for review storage
type Repository interface {
	Create(ctx context.Context, req *CreateReviewRequest) (*Review, error)
	ListApproved(ctx context.Context, limit int) ([]ApprovedReview, error)
}

// InMemoryRepository is a stub implementation of Repository using in-memory
// storage, for tests and local development without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews map[string]*Review
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		reviews: make(map[string]*Review),
	}
}

// Create stores a new review in memory with status pending
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateReviewRequest) (*Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review := &Review{
		ID:          uuid.New().String(),
		FullName:    req.FullName,
		Email:       req.Email,
		Rating:      req.Rating,
		Message:     req.Message,
		Location:    req.Location,
		ProjectType: req.ProjectType,
		Source:      "website",
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	r.mu.Lock()
	r.reviews[review.ID] = review
	r.mu.Unlock()

	return review, nil
}

// ListApproved returns up to limit approved reviews, newest first.
func (r *InMemoryRepository) ListApproved(ctx context.Context, limit int) ([]ApprovedReview, error) {
	r.mu.RLock()
	approved := make([]*Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		if rev.Status == StatusApproved {
			approved = append(approved, rev)
		}
	}
	r.mu.RUnlock()

	sort.Slice(approved, func(i, j int) bool {
		return approved[i].CreatedAt.After(approved[j].CreatedAt)
	})
	if limit > 0 && len(approved) > limit {
		approved = approved[:limit]
	}

	out := make([]ApprovedReview, 0, len(approved))
	for _, rev := range approved {
		out = append(out, ApprovedReview{
			ID:          rev.ID,
			FullName:    rev.FullName,
			Rating:      rev.Rating,
			Message:     rev.Message,
			Location:    rev.Location,
			ProjectType: rev.ProjectType,
			CreatedAt:   rev.CreatedAt,
		})
	}
	return out, nil
}

// SetStatus flips a stored review's moderation status. It stands in for the
// external moderation step in tests and local development.
func (r *InMemoryRepository) SetStatus(id, status string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev, ok := r.reviews[id]
	if !ok {
		return false
	}
	rev.Status = status
	return true
}

// IDs returns the IDs of all stored reviews.
func (r *InMemoryRepository) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.reviews))
	for id := range r.reviews {
		ids = append(ids, id)
	}
	return ids
}

// Count reports how many reviews have been stored.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reviews)
}
