// Package error defines domain-specific errors for the Planner Finance application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when registering an already-taken username.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned when username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotApproved is returned when a not-yet-approved user tries to log in.
	ErrUserNotApproved = errors.New("user not approved by master user")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrNoRecoveryQuestion is returned when a user has no recovery question configured.
	ErrNoRecoveryQuestion = errors.New("no recovery question configured")

	// ErrWrongRecoveryAnswer is returned when the recovery answer does not match.
	ErrWrongRecoveryAnswer = errors.New("wrong recovery answer")

	// ErrInvalidToken is returned when a JWT is missing, malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrNotMasterUser is returned when a non-master user calls an admin operation.
	ErrNotMasterUser = errors.New("operation requires the master user")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound        AuthErrorCode = "AUTH-010001"
	ErrCodeUserAlreadyExists   AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidCredentials  AuthErrorCode = "AUTH-010003"
	ErrCodeUserNotApproved     AuthErrorCode = "AUTH-010004"
	ErrCodeWeakPassword        AuthErrorCode = "AUTH-010005"
	ErrCodeNoRecoveryQuestion  AuthErrorCode = "AUTH-010006"
	ErrCodeWrongRecoveryAnswer AuthErrorCode = "AUTH-010007"
	ErrCodeNotMasterUser       AuthErrorCode = "AUTH-010008"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020002"

	// Rate limiting (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
