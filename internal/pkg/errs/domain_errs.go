package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cargo-tracking domain taxonomy. The HTTP layer maps
// these to transport-level status codes; the core never retries or recovers.
var (
	ErrConflict                = errors.New("conflict")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrUnprocessableEntity     = errors.New("unprocessable entity")
	ErrExternalService         = errors.New("external service error")
	ErrUnauthorized            = errors.New("unauthorized")
)

// ConflictError indicates a business-key collision, such as registering a
// cargo code or operator email that already exists.
type ConflictError struct {
	Message string
	Cause   error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Message), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidStatusTransitionError indicates a shipment status change that the
// status-flow table does not permit. It carries the attempted from/to pair.
type InvalidStatusTransitionError struct {
	From string
	To   string
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError for
// the attempted from/to pair.
func NewInvalidStatusTransitionError(from, to string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// UnprocessableEntityError indicates input that passed type checks but
// violates a domain rule, such as a delivery forecast before the departure
// date or an attempt to deliver a cancelled shipment.
type UnprocessableEntityError struct {
	Message string
}

// NewUnprocessableEntityError creates an UnprocessableEntityError with a
// human-readable message.
func NewUnprocessableEntityError(message string) *UnprocessableEntityError {
	return &UnprocessableEntityError{Message: message}
}

func (e *UnprocessableEntityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnprocessableEntity, e.Message)
}

func (e *UnprocessableEntityError) Unwrap() error {
	return ErrUnprocessableEntity
}

// ExternalServiceError indicates a transport-level failure in an external
// collaborator. A "no result" answer from a collaborator is not an error and
// must not be wrapped in this type.
type ExternalServiceError struct {
	Service string
	Cause   error
}

// NewExternalServiceError creates an ExternalServiceError naming the failed
// collaborator and wrapping the transport failure.
func NewExternalServiceError(service string, cause error) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Cause: cause}
}

func (e *ExternalServiceError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrExternalService, e.Service), e.Cause)
}

func (e *ExternalServiceError) Unwrap() error {
	return ErrExternalService
}

// UnauthorizedError indicates failed authentication. The message is kept
// deliberately vague so callers cannot distinguish a wrong password from an
// unknown account.
type UnauthorizedError struct {
	Message string
}

// NewUnauthorizedError creates an UnauthorizedError with a human-readable message.
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnauthorized, e.Message)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
