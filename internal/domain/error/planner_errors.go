// Package error defines domain-specific errors for the Planner Finance application.
package error

import "errors"

// Planner domain errors.
var (
	// ErrPlannerNotFound is returned when a planner is not found in the system.
	ErrPlannerNotFound = errors.New("planner not found")

	// ErrUnauthorizedPlannerAccess is returned when a user does not own the planner.
	ErrUnauthorizedPlannerAccess = errors.New("unauthorized access to planner")

	// ErrMissingPlannerName is returned when a planner has no name.
	ErrMissingPlannerName = errors.New("planner name is required")

	// ErrInvalidPlannerProfile is returned when the planner profile is unknown.
	ErrInvalidPlannerProfile = errors.New("invalid planner profile")

	// ErrInvalidAlertThreshold is returned when the alert threshold is negative.
	ErrInvalidAlertThreshold = errors.New("invalid alert threshold")
)

// PlannerErrorCode defines error codes for planner errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePlannerNotFound           PlannerErrorCode = "PLN-010001"
	ErrCodeUnauthorizedPlannerAccess PlannerErrorCode = "PLN-010002"
	ErrCodeMissingPlannerName        PlannerErrorCode = "PLN-010003"
	ErrCodeInvalidPlannerProfile     PlannerErrorCode = "PLN-010004"
	ErrCodeInvalidAlertThreshold     PlannerErrorCode = "PLN-010005"
)

// PlannerError represents a planner error with code and message.
type PlannerError struct {
	Code    PlannerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError with the given code and message.
func NewPlannerError(code PlannerErrorCode, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
