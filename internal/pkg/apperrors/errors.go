package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Catalog errors
var (
	// ErrCatalogIntegrity marks a malformed course catalog: dangling
	// prerequisite or corequisite references, self-loops, or asymmetric
	// corequisite relations. Fatal at catalog build time; the host must
	// refuse recommendations for the program until corrected.
	ErrCatalogIntegrity = errors.New("catalog integrity violation")

	ErrProgramNotFound = errors.New("program not found")
	ErrCourseNotFound  = errors.New("course not found")
)

// Configuration errors
var (
	// ErrInvalidConfiguration marks a contradictory or out-of-range semester
	// configuration. The recommendation is not computed.
	ErrInvalidConfiguration = errors.New("invalid semester configuration")
)

// NewCatalogIntegrityError creates a catalog integrity error with detail
func NewCatalogIntegrityError(message string) error {
	return &CustomError{
		Err:     ErrCatalogIntegrity,
		Message: message,
	}
}

// NewInvalidConfigurationError creates a configuration error with detail
func NewInvalidConfigurationError(message string) error {
	return &CustomError{
		Err:     ErrInvalidConfiguration,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
