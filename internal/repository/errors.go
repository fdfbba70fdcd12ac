package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicate            = errors.New("duplicate")
	ErrReferentialIntegrity = errors.New("referenced entity does not exist")
	ErrValidation           = errors.New("validation failed")
	ErrStorageUnavailable   = errors.New("storage unavailable")
)

// Error is what repositories return for every failure they classify. Kind is
// one of the sentinels above; errors.Is matches both Kind and the cause.
type Error struct {
	Kind       error
	Op         string
	Constraint string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

const (
	pgUniqueViolation         = "23505"
	pgForeignKeyViolation     = "23503"
	pgCheckViolation          = "23514"
	pgNotNullViolation        = "23502"
	pgInvalidTextRepr         = "22P02"
	pgStringDataRightTrunc    = "22001"
	pgAdminShutdown           = "57P01"
	pgCrashShutdown           = "57P02"
	pgCannotConnectNow        = "57P03"
	pgTooManyConnections      = "53300"
	pgConnectionExceptionClas = "08"
)

var constraintMessages = map[string]string{
	"uq_candidate_job":          "already applied",
	"uq_users_email_lower":      "email already registered",
	"uq_files_storage_key":      "storage key already used",
	"fk_jobs_recruiter":         "recruiter does not exist",
	"fk_applications_job":       "job does not exist",
	"fk_applications_candidate": "candidate does not exist",
	"fk_files_owner":            "owner does not exist",
	"fk_users_cv_file":          "cv file does not exist",
}

func validationError(op, message string, cause error) error {
	return &Error{Kind: ErrValidation, Op: op, Message: message, Err: cause}
}

func notFoundError(op, message string) error {
	return &Error{Kind: ErrNotFound, Op: op, Message: message}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// translate maps driver failures onto the repository error kinds.
// Cancellation and anything unrecognised pass through wrapped with op.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var repoErr *Error
	if errors.As(err, &repoErr) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return &Error{Kind: ErrDuplicate, Op: op, Constraint: pgErr.ConstraintName, Message: messageFor(pgErr, "duplicate value"), Err: err}
		case pgErr.Code == pgForeignKeyViolation:
			return &Error{Kind: ErrReferentialIntegrity, Op: op, Constraint: pgErr.ConstraintName, Message: messageFor(pgErr, "referenced entity does not exist"), Err: err}
		case pgErr.Code == pgCheckViolation,
			pgErr.Code == pgNotNullViolation,
			pgErr.Code == pgInvalidTextRepr,
			pgErr.Code == pgStringDataRightTrunc:
			return &Error{Kind: ErrValidation, Op: op, Constraint: pgErr.ConstraintName, Message: messageFor(pgErr, "invalid value"), Err: err}
		case strings.HasPrefix(pgErr.Code, pgConnectionExceptionClas),
			pgErr.Code == pgAdminShutdown,
			pgErr.Code == pgCrashShutdown,
			pgErr.Code == pgCannotConnectNow,
			pgErr.Code == pgTooManyConnections:
			return &Error{Kind: ErrStorageUnavailable, Op: op, Err: err}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if isUnavailable(err) {
		return &Error{Kind: ErrStorageUnavailable, Op: op, Err: err}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func messageFor(pgErr *pgconn.PgError, fallback string) string {
	if m, ok := constraintMessages[pgErr.ConstraintName]; ok {
		return m
	}
	return fallback
}

func isUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}
