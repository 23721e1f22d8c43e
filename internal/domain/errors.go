// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP responses
// or CLI exit codes by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrLoad indicates the joke collection could not be read or parsed.
	ErrLoad = errors.New("load failed")

	// ErrSchema indicates a record is missing a required field.
	ErrSchema = errors.New("invalid record")

	// ErrEmptyCollection indicates no valid jokes remain after load.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrNotFound indicates the requested joke does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSpeech indicates the speech backend is missing or failed.
	// Speech is decorative: callers recover from this locally and it
	// never reaches the user-visible flow.
	ErrSpeech = errors.New("speech failed")
)

// LoadError provides context for collection load failures.
type LoadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("loading jokes from %q: %v", e.Path, e.Cause)
	}

	return fmt.Sprintf("loading jokes from %q failed", e.Path)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *LoadError) Unwrap() error {
	return ErrLoad
}

// NewLoadError creates a load error with context.
func NewLoadError(path string, cause error) error {
	return &LoadError{Path: path, Cause: cause}
}

// SchemaError provides context for a record that failed validation.
type SchemaError struct {
	Index  int
	Reason string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("joke record %d invalid: %s", e.Index, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// NewSchemaError creates a schema error with context.
func NewSchemaError(index int, reason string) error {
	return &SchemaError{Index: index, Reason: reason}
}

// EmptyCollectionError provides context for an empty or all-invalid load.
type EmptyCollectionError struct {
	Path    string
	Skipped int
}

// Error implements the error interface.
func (e *EmptyCollectionError) Error() string {
	if e.Skipped > 0 {
		return fmt.Sprintf("no valid jokes in %q (%d invalid records skipped)", e.Path, e.Skipped)
	}

	return fmt.Sprintf("no jokes in %q", e.Path)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *EmptyCollectionError) Unwrap() error {
	return ErrEmptyCollection
}

// NewEmptyCollectionError creates an empty collection error with context.
func NewEmptyCollectionError(path string, skipped int) error {
	return &EmptyCollectionError{Path: path, Skipped: skipped}
}

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// SpeechError provides context for speech backend failures.
type SpeechError struct {
	Backend string
	Cause   error
}

// Error implements the error interface.
func (e *SpeechError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("speech via %q: %v", e.Backend, e.Cause)
	}

	return fmt.Sprintf("speech via %q failed", e.Backend)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *SpeechError) Unwrap() error {
	return ErrSpeech
}

// NewSpeechError creates a speech error with context.
func NewSpeechError(backend string, cause error) error {
	return &SpeechError{Backend: backend, Cause: cause}
}

// IsLoad checks if an error is a load error.
func IsLoad(err error) bool {
	return errors.Is(err, ErrLoad)
}

// IsSchema checks if an error is a schema error.
func IsSchema(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsEmptyCollection checks if an error is an empty collection error.
func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyCollection)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSpeech checks if an error is a speech error.
func IsSpeech(err error) bool {
	return errors.Is(err, ErrSpeech)
}
