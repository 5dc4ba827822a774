package reviews

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DB is the subset of pgxpool.Pool the repository needs. Narrowing the
// dependency lets tests substitute a pgxmock pool.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores reviews in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("reviews: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new review row with status pending.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateReviewRequest) (*Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO reviews (id, full_name, email, rating, message, location, project_type, source, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.FullName,
		req.Email,
		req.Rating,
		req.Message,
		req.Location,
		req.ProjectType,
		"website",
		StatusPending,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("reviews: insert failed: %w", err)
	}

	return &Review{
		ID:          id.String(),
		FullName:    req.FullName,
		Email:       req.Email,
		Rating:      req.Rating,
		Message:     req.Message,
		Location:    req.Location,
		ProjectType: req.ProjectType,
		Source:      "website",
		Status:      StatusPending,
		CreatedAt:   createdAt,
	}, nil
}

// ListApproved returns up to limit approved reviews, newest first.
func (r *PostgresRepository) ListApproved(ctx context.Context, limit int) ([]ApprovedReview, error) {
	query := `
		SELECT id, full_name, rating, message, location, project_type, created_at
		FROM reviews
		WHERE status = 'approved'
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reviews: select failed: %w", err)
	}
	defer rows.Close()

	out := make([]ApprovedReview, 0, limit)
	for rows.Next() {
		var rev ApprovedReview
		if err := rows.Scan(
			&rev.ID,
			&rev.FullName,
			&rev.Rating,
			&rev.Message,
			&rev.Location,
			&rev.ProjectType,
			&rev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("reviews: scan failed: %w", err)
		}
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reviews: rows failed: %w", err)
	}
	return out, nil
}
