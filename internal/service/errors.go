package service

import (
	"errors"
	"fmt"

	"hospital-records-service/internal/repository"
)

// Kind names a record category.
type Kind string

const (
	KindPatient Kind = "patient"
	KindDoctor  Kind = "doctor"
)

// ErrNotFound reports a point lookup that matched nothing. It is an outcome,
// not a failure, and is never wrapped in a PersistenceError.
var ErrNotFound = repository.ErrNotFound

// PersistenceError covers every failure to read or write the record store,
// including identifier reservation and store timeouts.
type PersistenceError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ValidationError reports a form field that could not be parsed into its
// typed attribute.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

func persistenceError(op string, kind Kind, err error) error {
	return &PersistenceError{Op: op, Kind: kind, Err: err}
}
