package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AmbiguousMatchError is returned when a natural-key lookup matches more than
// one row and the caller asked for exactly one.
type AmbiguousMatchError struct {
	Entity  string
	Matches int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%s identity is ambiguous: %d rows match", e.Entity, e.Matches)
}

// Is enables errors.Is() comparison for AmbiguousMatchError
func (e *AmbiguousMatchError) Is(target error) bool {
	t, ok := target.(*AmbiguousMatchError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// StoreError wraps a transport or store-side failure of the remote data store.
type StoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrGoalNotFound         = &NotFoundError{Entity: "goal"}
	ErrMeasureNotFound      = &NotFoundError{Entity: "measure"}
	ErrWeeklyRecordNotFound = &NotFoundError{Entity: "weekly record"}
)

// Already Exists Errors
var (
	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrAmbiguousMeasure = &AmbiguousMatchError{Entity: "measure"}
	ErrNoMeasures       = &ValidationError{Field: "measures", Message: "at least one non-blank line is required"}
	ErrInvalidWeekStart = &ValidationError{Field: "week_start", Message: "must be a date in YYYY-MM-DD format"}
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
	ErrUnknownUser  = &AuthenticationError{Message: "no registered user with this email"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAmbiguous checks if an error is an AmbiguousMatchError
func IsAmbiguous(err error) bool {
	var ambiguousErr *AmbiguousMatchError
	return errors.As(err, &ambiguousErr)
}

// IsStore checks if an error is a StoreError
func IsStore(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAmbiguousMatchError creates a new AmbiguousMatchError
func NewAmbiguousMatchError(entity string, matches int) error {
	return &AmbiguousMatchError{Entity: entity, Matches: matches}
}

// NewStoreError wraps err as a StoreError for the given operation and table
func NewStoreError(op, table string, err error) error {
	return &StoreError{Op: op, Table: table, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
