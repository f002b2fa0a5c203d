package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "wine", uuid.New()); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got := MapError(fmt.Errorf("scan row: %w", pgx.ErrNoRows), "wine", id)

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := fmt.Sprintf("wine %s: not found", id); got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"unique_violation", "23505", domain.ErrAlreadyExists},
		{"foreign_key_violation", "23503", domain.ErrNotFound},
		{"check_violation", "23514", domain.ErrValidation},
		{"not_null_violation", "23502", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pgErr := &pgconn.PgError{Code: tt.code}
			got := MapError(fmt.Errorf("insert row: %w", pgErr), "spirit", uuid.New())

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("MapError(code %s) does not wrap %v: %v", tt.code, tt.wantErr, got)
			}
		})
	}
}

func TestMapError_CheckViolationNamesConstraint(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "wines_quantity_check"}
	got := MapError(pgErr, "wine", uuid.New())

	if !strings.Contains(got.Error(), "wines_quantity_check") {
		t.Errorf("MapError(23514).Error() = %q, want constraint name", got.Error())
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{context.DeadlineExceeded, context.Canceled} {
		got := MapError(cause, "wine", uuid.New())

		if !errors.Is(got, cause) {
			t.Errorf("MapError(%v) does not wrap the cause: %v", cause, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) should not wrap domain.ErrNotFound", cause)
		}
	}
}

func TestMapError_UnknownPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	got := MapError(pgErr, "wine", uuid.New())

	var unwrapped *pgconn.PgError
	if !errors.As(got, &unwrapped) {
		t.Errorf("MapError(unknown PgError) does not wrap *pgconn.PgError: %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) || errors.Is(got, domain.ErrAlreadyExists) || errors.Is(got, domain.ErrValidation) {
		t.Error("MapError(unknown PgError) should not map to a domain error")
	}
}

func TestMapError_UnknownError(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	original := errors.New("something unexpected")
	got := MapError(original, "spirit", id)

	if !errors.Is(got, original) {
		t.Errorf("MapError(unknown) does not wrap original error: %v", got)
	}
	if want := fmt.Sprintf("spirit %s: something unexpected", id); got.Error() != want {
		t.Errorf("MapError(unknown).Error() = %q, want %q", got.Error(), want)
	}
}
