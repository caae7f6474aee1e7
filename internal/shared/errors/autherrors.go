package errors

import (
	"net/http"
)

// Token error types reported by the bearer-token middleware.
const (
	ErrorTypeTokenMissing ErrorType = "token_missing"
	ErrorTypeTokenExpired ErrorType = "token_expired"
	ErrorTypeTokenInvalid ErrorType = "token_invalid"
)

// AuthError is an unauthorized AppError that also says whether the failure
// should be recorded as a security event.
type AuthError struct {
	*AppError
	// SecurityEvent is set for tokens that were presented but fail
	// verification; a missing or merely expired token is routine.
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to reach the AppError.
func (e *AuthError) Unwrap() error {
	return e.AppError
}

func newAuthError(t ErrorType, message string, securityEvent bool) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    t,
			Message: message,
			Code:    http.StatusUnauthorized,
		},
		SecurityEvent: securityEvent,
	}
}

// NewTokenMissingError is returned when no bearer token accompanies the request.
func NewTokenMissingError() *AuthError {
	return newAuthError(ErrorTypeTokenMissing, "missing authorization token", false)
}

func NewTokenExpiredError() *AuthError {
	return newAuthError(ErrorTypeTokenExpired, "token has expired", false)
}

// NewTokenInvalidError covers malformed headers, bad signatures and tokens
// whose subject is not a known party.
func NewTokenInvalidError(details ...string) *AuthError {
	err := newAuthError(ErrorTypeTokenInvalid, "invalid authorization token", true)
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
