package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead and quote storage
type Repository interface {
	CreateLead(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	CreateQuote(ctx context.Context, req *CreateQuoteRequest) (*Quote, error)
}

// InMemoryRepository is a stub implementation of Repository using in-memory
// storage, for tests and local development without a database.
type InMemoryRepository struct {
	mu     sync.RWMutex
	leads  map[string]*Lead
	quotes map[string]*Quote
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads:  make(map[string]*Lead),
		quotes: make(map[string]*Quote),
	}
}

// CreateLead stores a new lead in memory
func (r *InMemoryRepository) CreateLead(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead := &Lead{
		ID:        uuid.New().String(),
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Message:   req.Message,
		Service:   req.Service,
		Budget:    req.Budget,
		Timeline:  req.Timeline,
		Source:    req.Source,
		PagePath:  req.PagePath,
		UTM:       req.UTM,
		Status:    StatusNew,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.leads[lead.ID] = lead
	r.mu.Unlock()

	return lead, nil
}

// CreateQuote stores a new quote in memory
func (r *InMemoryRepository) CreateQuote(ctx context.Context, req *CreateQuoteRequest) (*Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quote := &Quote{
		ID:          uuid.New().String(),
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Postcode:    req.Postcode,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Source:      req.Source,
		Status:      StatusNew,
		CreatedAt:   time.Now().UTC(),
	}

	r.mu.Lock()
	r.quotes[quote.ID] = quote
	r.mu.Unlock()

	return quote, nil
}

// LeadCount reports how many leads have been stored.
func (r *InMemoryRepository) LeadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}

// QuoteCount reports how many quotes have been stored.
func (r *InMemoryRepository) QuoteCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quotes)
}
