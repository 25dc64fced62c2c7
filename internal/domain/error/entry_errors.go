// Package error defines domain-specific errors for the Planner Finance application.
package error

import "errors"

// Ledger entry domain errors (incomes, expenses, cards, bills, adjustments).
var (
	// ErrNegativeAmount is returned when a monetary amount is negative at creation.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidIncomeType is returned when the income type is not one of the known kinds.
	ErrInvalidIncomeType = errors.New("invalid income type")

	// ErrInvalidExpenseCategory is returned when the expense category is not one of the known kinds.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrInvalidDueDay is returned when an expense due day is outside 1-31.
	ErrInvalidDueDay = errors.New("invalid due day")

	// ErrInvalidDueDate is returned when a bill due date is missing or invalid.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrInvalidRecurrenceKind is returned when the recurrence kind is unknown.
	ErrInvalidRecurrenceKind = errors.New("invalid recurrence kind")

	// ErrInvalidRecurrenceCount is returned when a bounded recurrence has a month count below 1.
	ErrInvalidRecurrenceCount = errors.New("recurrence month count must be at least 1")

	// ErrMissingStartMonth is returned when an entry has no start month.
	ErrMissingStartMonth = errors.New("start month is required")

	// ErrMissingBankName is returned when a credit card has no bank name.
	ErrMissingBankName = errors.New("bank name is required")

	// ErrInvalidAdjustmentKind is returned when a savings adjustment kind is unknown.
	ErrInvalidAdjustmentKind = errors.New("invalid adjustment kind")

	// ErrEntryNotFound is returned when a ledger entry is not found.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrCardNotFound is returned when a credit card is not found.
	ErrCardNotFound = errors.New("card not found")

	// ErrMissingDescription is returned when an entry has no description.
	ErrMissingDescription = errors.New("description is required")
)

// EntryErrorCode defines error codes for ledger entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount         EntryErrorCode = "ENT-010001"
	ErrCodeInvalidIncomeType      EntryErrorCode = "ENT-010002"
	ErrCodeInvalidExpenseCategory EntryErrorCode = "ENT-010003"
	ErrCodeInvalidDueDay          EntryErrorCode = "ENT-010004"
	ErrCodeInvalidDueDate         EntryErrorCode = "ENT-010005"
	ErrCodeInvalidRecurrenceKind  EntryErrorCode = "ENT-010006"
	ErrCodeInvalidRecurrenceCount EntryErrorCode = "ENT-010007"
	ErrCodeMissingStartMonth      EntryErrorCode = "ENT-010008"
	ErrCodeMissingBankName        EntryErrorCode = "ENT-010009"
	ErrCodeInvalidAdjustmentKind  EntryErrorCode = "ENT-010010"
	ErrCodeEntryNotFound          EntryErrorCode = "ENT-010011"
	ErrCodeCardNotFound           EntryErrorCode = "ENT-010012"
	ErrCodeMissingDescription     EntryErrorCode = "ENT-010013"
)

// EntryError represents a ledger entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
