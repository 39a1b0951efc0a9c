package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for an unknown show id.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return NewNotFoundError("show", showID)
}

// ErrUpstreamStatus is returned when the catalog API answers with a non-success status.
type ErrUpstreamStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("catalog returned status %d for %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstreamStatus) Is(target error) bool {
	_, ok := target.(*ErrUpstreamStatus)
	return ok
}

// ErrInvalidPayload is returned when a catalog response cannot be decoded into the expected shape.
type ErrInvalidPayload struct {
	Resource string
	Reason   string
	Err      error
}

// Error implements the error interface.
func (e *ErrInvalidPayload) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s payload: %s: %v", e.Resource, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s payload: %s", e.Resource, e.Reason)
}

// Unwrap returns the decoding error, if any.
func (e *ErrInvalidPayload) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidPayload) Is(target error) bool {
	_, ok := target.(*ErrInvalidPayload)
	return ok
}
