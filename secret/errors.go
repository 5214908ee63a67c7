package secret

import (
	"errors"
	"fmt"
)

// Validation errors returned before any vault call is attempted.
var (
	ErrTargetTooLong      = errors.New("target identifier exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrPayloadTooLarge    = errors.New("payload exceeds maximum encoded size")
)

// ErrorType represents different types of errors that can occur
type ErrorType int

const (
	ErrorTypeVault ErrorType = iota
	ErrorTypeHash
	ErrorTypeEncoding
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeVault:
		return "vault"
	case ErrorTypeHash:
		return "hash"
	case ErrorTypeEncoding:
		return "encoding"
	default:
		return "unknown"
	}
}

// StoreError represents a structured secret store error. Target holds the
// target identifier or file path the operation was addressing; payloads are
// never included.
type StoreError struct {
	Type      ErrorType
	Operation string
	Target    string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s error in %s [%s]: %s", e.Type, e.Operation, e.Target, e.Message)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// newVaultError creates a new platform vault error
func newVaultError(operation, target, message string, err error) *StoreError {
	return &StoreError{
		Type:      ErrorTypeVault,
		Operation: operation,
		Target:    target,
		Message:   message,
		Err:       err,
	}
}

// newHashError creates a new key-file hashing error
func newHashError(operation, path, message string, err error) *StoreError {
	return &StoreError{
		Type:      ErrorTypeHash,
		Operation: operation,
		Target:    path,
		Message:   message,
		Err:       err,
	}
}

// newEncodingError creates a new payload codec error
func newEncodingError(operation, message string, err error) *StoreError {
	return &StoreError{
		Type:      ErrorTypeEncoding,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
