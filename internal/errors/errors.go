// Package errors provides custom error types for prefixgender.
// Each type carries a stable code so the entry point and tests can tell
// configuration problems apart from store and persistence failures.
package errors

import (
	"fmt"
)

// PrefixGenderError is the base interface for all prefixgender errors
type PrefixGenderError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all prefixgender errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ConfigurationError represents errors in the tool configuration or in the
// attribute metadata it depends on (e.g. unresolved gender options)
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// StoreError represents errors while opening or querying the customer store
type StoreError struct {
	baseError
	Operation string
}

// NewStoreError creates a new store error
func NewStoreError(operation string, message string, cause error) *StoreError {
	return &StoreError{
		baseError: baseError{
			code:    "STORE_ERROR",
			message: message,
			cause:   cause,
		},
		Operation: operation,
	}
}

// PersistenceError represents a failed save of a single customer record
type PersistenceError struct {
	baseError
	CustomerID int64
}

// NewPersistenceError creates a new persistence error
func NewPersistenceError(customerID int64, message string, cause error) *PersistenceError {
	return &PersistenceError{
		baseError: baseError{
			code:    "PERSIST_ERROR",
			message: message,
			cause:   cause,
		},
		CustomerID: customerID,
	}
}

// ValidationError represents errors during validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// NotFoundError represents errors when a resource is not found
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			code:    "NOT_FOUND",
			message: message,
			cause:   nil,
		},
		Resource: resource,
	}
}
