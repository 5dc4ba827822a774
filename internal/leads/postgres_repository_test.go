package leads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

func TestPostgresRepository_CreateLead(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO leads").
		WithArgs(
			pgxmock.AnyArg(), // generated uuid
			"Maria Gonzalez",
			"maria@email.com",
			"", "", "Looking for a patio", "", "", "",
			"contact",
			"",
			[]byte(nil),
			StatusNew,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewPostgresRepository(mock)
	lead, err := repo.CreateLead(context.Background(), &CreateLeadRequest{
		FullName: "Maria Gonzalez",
		Email:    "maria@email.com",
		Message:  "Looking for a patio",
		Source:   "contact",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lead.ID == "" {
		t.Error("expected generated id")
	}
	if !lead.CreatedAt.Equal(now) {
		t.Errorf("expected created_at from db, got %v", lead.CreatedAt)
	}
	if lead.Status != StatusNew {
		t.Errorf("expected status new, got %q", lead.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_CreateLead_WithUTM(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO leads").
		WithArgs(
			pgxmock.AnyArg(),
			"Maria Gonzalez",
			"maria@email.com",
			"", "", "hi", "", "", "",
			"website",
			"/services",
			[]byte(`{"source":"google"}`),
			StatusNew,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	repo := NewPostgresRepository(mock)
	_, err = repo.CreateLead(context.Background(), &CreateLeadRequest{
		FullName: "Maria Gonzalez",
		Email:    "maria@email.com",
		Message:  "hi",
		Source:   "website",
		PagePath: "/services",
		UTM:      map[string]string{"source": "google"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_CreateLead_InsertError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO leads").
		WillReturnError(errors.New("deadlock detected"))

	repo := NewPostgresRepository(mock)
	_, err = repo.CreateLead(context.Background(), &CreateLeadRequest{
		FullName: "Maria Gonzalez",
		Email:    "maria@email.com",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPostgresRepository_CreateLead_ValidatesFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	if _, err := repo.CreateLead(context.Background(), &CreateLeadRequest{}); err != ErrMissingFullName {
		t.Errorf("expected ErrMissingFullName, got %v", err)
	}
	// No query should have been issued.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected queries: %v", err)
	}
}

func TestPostgresRepository_CreateQuote(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO quotes").
		WithArgs(
			pgxmock.AnyArg(),
			"John Smith",
			"john@example.com",
			"07700 900123",
			"M20 2AB",
			"Patio",
			"Rear garden",
			"website",
			StatusNew,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewPostgresRepository(mock)
	quote, err := repo.CreateQuote(context.Background(), &CreateQuoteRequest{
		FullName:    "John Smith",
		Email:       "john@example.com",
		Phone:       "07700 900123",
		Postcode:    "M20 2AB",
		ProjectType: "Patio",
		Message:     "Rear garden",
		Source:      "website",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.ID == "" {
		t.Error("expected generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
