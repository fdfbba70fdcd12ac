package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{"application pair", &pgconn.PgError{Code: "23505", ConstraintName: "uq_candidate_job"}, ErrDuplicate, "already applied"},
		{"email", &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email_lower"}, ErrDuplicate, "email already registered"},
		{"unknown unique", &pgconn.PgError{Code: "23505", ConstraintName: "something_else"}, ErrDuplicate, "duplicate value"},
		{"recruiter fk", &pgconn.PgError{Code: "23503", ConstraintName: "fk_jobs_recruiter"}, ErrReferentialIntegrity, "recruiter does not exist"},
		{"cv fk", &pgconn.PgError{Code: "23503", ConstraintName: "fk_users_cv_file"}, ErrReferentialIntegrity, "cv file does not exist"},
		{"check", &pgconn.PgError{Code: "23514", ConstraintName: "ck_jobs_status"}, ErrValidation, "invalid value"},
		{"shutdown", &pgconn.PgError{Code: "57P01"}, ErrStorageUnavailable, ""},
		{"connection class", &pgconn.PgError{Code: "08006"}, ErrStorageUnavailable, ""},
		{"network", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, ErrStorageUnavailable, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translate("op", tc.err)
			if !errors.Is(got, tc.kind) {
				t.Fatalf("expected kind %v, got %v", tc.kind, got)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("expected cause to stay reachable, got %v", got)
			}
			var repoErr *Error
			if !errors.As(got, &repoErr) {
				t.Fatalf("expected *Error, got %T", got)
			}
			if tc.message != "" && repoErr.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, repoErr.Message)
			}
		})
	}
}

func TestTranslate_PassesThroughUnknown(t *testing.T) {
	base := errors.New("boom")
	got := translate("load", base)
	if !errors.Is(got, base) {
		t.Fatalf("expected wrapped cause, got %v", got)
	}
	for _, kind := range []error{ErrNotFound, ErrDuplicate, ErrReferentialIntegrity, ErrValidation, ErrStorageUnavailable} {
		if errors.Is(got, kind) {
			t.Fatalf("unknown error must not be classified as %v", kind)
		}
	}
	if !strings.HasPrefix(got.Error(), "load: ") {
		t.Fatalf("expected op prefix, got %q", got.Error())
	}

	canceled := translate("load", context.Canceled)
	if !errors.Is(canceled, context.Canceled) || errors.Is(canceled, ErrStorageUnavailable) {
		t.Fatalf("cancellation must pass through unchanged, got %v", canceled)
	}

	if translate("load", nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestTranslate_KeepsRepositoryErrors(t *testing.T) {
	orig := validationError("op", "bad", nil)
	wrapped := fmt.Errorf("outer: %w", orig)
	if got := translate("other", wrapped); got != wrapped {
		t.Fatalf("expected already classified error to be returned as is")
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Kind: ErrDuplicate, Op: "create application", Message: "already applied"}
	if err.Error() != "create application: already applied" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	bare := &Error{Kind: ErrNotFound}
	if bare.Error() != "not found" {
		t.Fatalf("unexpected message: %q", bare.Error())
	}
}
