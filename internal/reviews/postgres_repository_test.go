package reviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

func TestPostgresRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(
			pgxmock.AnyArg(), // generated uuid
			"Maria Gonzalez",
			"maria@email.com",
			5,
			"Great work",
			"Didsbury, Manchester",
			"Patio",
			"website",
			StatusPending,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewPostgresRepository(mock)
	review, err := repo.Create(context.Background(), &CreateReviewRequest{
		FullName:    "Maria Gonzalez",
		Email:       "maria@email.com",
		Rating:      5,
		Message:     "Great work",
		Location:    "Didsbury, Manchester",
		ProjectType: "Patio",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if review.Status != StatusPending {
		t.Errorf("expected pending status, got %q", review.Status)
	}
	if review.Source != "website" {
		t.Errorf("expected website source, got %q", review.Source)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_Create_ValidatesFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	_, err = repo.Create(context.Background(), &CreateReviewRequest{
		FullName: "Maria Gonzalez",
		Email:    "maria@email.com",
		Rating:   7,
		Message:  "Great work",
	})
	if err != ErrInvalidRating {
		t.Errorf("expected ErrInvalidRating, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected queries: %v", err)
	}
}

func TestPostgresRepository_ListApproved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	newer := time.Now().UTC()
	older := newer.Add(-24 * time.Hour)
	mock.ExpectQuery("SELECT id, full_name, rating, message, location, project_type, created_at").
		WithArgs(20).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "full_name", "rating", "message", "location", "project_type", "created_at",
		}).
			AddRow("id-2", "Second Customer", 5, "Even better", "", "Turf", newer).
			AddRow("id-1", "First Customer", 4, "Good job", "Sale", "", older))

	repo := NewPostgresRepository(mock)
	reviews, err := repo.ListApproved(context.Background(), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].ID != "id-2" || reviews[1].ID != "id-1" {
		t.Errorf("unexpected order: %v", reviews)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_ListApproved_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT id, full_name").
		WillReturnError(errors.New("connection reset"))

	repo := NewPostgresRepository(mock)
	if _, err := repo.ListApproved(context.Background(), 20); err == nil {
		t.Fatal("expected error")
	}
}
