package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrAccountNotFound     = fmt.Errorf("account %w", ErrNotFound)
	ErrLabourNotFound      = fmt.Errorf("labour %w", ErrNotFound)
	ErrMaalInNotFound      = fmt.Errorf("maal in %w", ErrNotFound)
	ErrDuplicateAttendance = errors.New("attendance already marked")
	ErrInvalidTransition   = errors.New("maal in already processed")
	ErrNotEditable         = errors.New("maal in is no longer editable")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)

// ValidationError carries a client-facing message and matches ErrValidation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsClientError reports whether err was caused by the request rather than the datastore.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicateAttendance) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrNotEditable)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func notFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
