// Package common defines the closed set of error kinds shared by the models,
// repositories and services of the assistant. Callers should use errors.Is
// against the sentinels, or errors.As to get the typed details.
package common

import (
	"errors"
	"fmt"
)

var (
	// Lookup of an absent key (contact name, note id, phone within a contact).
	ErrNotFound = errors.New("not found")

	// Attempted creation of a duplicate key.
	ErrAlreadyExists = errors.New("already exists")

	// Malformed, out-of-range or empty input rejected by a value object.
	ErrValidation = errors.New("validation error")
)

// NotFoundError reports a missing entity. Entity is a short description such
// as "Contact: Ivan" or "Phone +380671234567".
type NotFoundError struct {
	Entity string
}

// NewNotFound returns a NotFoundError for the given entity description.
func NewNotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError reports a duplicate entity.
type AlreadyExistsError struct {
	Entity string
}

// NewAlreadyExists returns an AlreadyExistsError for the given entity description.
func NewAlreadyExists(entity string) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: entity}
}

func (e *AlreadyExistsError) Error() string {
	return e.Entity + " already exists"
}

// Is makes errors.Is(err, ErrAlreadyExists) true.
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationKind classifies why a value was rejected.
type ValidationKind string

const (
	KindEmpty    ValidationKind = "empty"
	KindFormat   ValidationKind = "format"
	KindRange    ValidationKind = "range"
	KindTemporal ValidationKind = "temporal"
)

// ValidationError is returned by value object constructors. Reason is the
// human readable message shown to the user and is returned verbatim by Error.
type ValidationError struct {
	Field  string
	Kind   ValidationKind
	Reason string
}

// NewValidation returns a ValidationError for field with the given kind and reason.
func NewValidation(field string, kind ValidationKind, reason string) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UsageError signals that a command was invoked with wrong arguments.
type UsageError struct {
	Usage string
}

// Usagef formats a UsageError.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Usage: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return e.Usage
}
