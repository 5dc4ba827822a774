package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DB is the subset of pgxpool.Pool the repository needs. Narrowing the
// dependency lets tests substitute a pgxmock pool.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores leads and quotes in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// CreateLead inserts a new row into the leads collection.
func (r *PostgresRepository) CreateLead(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var utm []byte
	if len(req.UTM) > 0 {
		var err error
		if utm, err = json.Marshal(req.UTM); err != nil {
			return nil, fmt.Errorf("leads: encode utm: %w", err)
		}
	}

	id := uuid.New()
	query := `
		INSERT INTO leads (id, full_name, email, phone, address, message, service, budget, timeline, source, page_path, utm, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.FullName,
		req.Email,
		req.Phone,
		req.Address,
		req.Message,
		req.Service,
		req.Budget,
		req.Timeline,
		req.Source,
		req.PagePath,
		utm,
		StatusNew,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}

	return &Lead{
		ID:        id.String(),
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
		CreatedAt: createdAt,
	}, nil
}

// CreateQuote inserts a new row into the quotes collection.
func (r *PostgresRepository) CreateQuote(ctx context.Context, req *CreateQuoteRequest) (*Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO quotes (id, full_name, email, phone, postcode, project_type, message, source, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.FullName,
		req.Email,
		req.Phone,
		req.Postcode,
		req.ProjectType,
		req.Message,
		req.Source,
		StatusNew,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("leads: quote insert failed: %w", err)
	}

	return &Quote{
		ID:          id.String(),
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Postcode:    req.Postcode,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Source:      req.Source,
		Status:      StatusNew,
		CreatedAt:   createdAt,
	}, nil
}
