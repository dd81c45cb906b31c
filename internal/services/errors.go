package services

import "errors"

// ErrorCode is the stable identifier of an auth failure.
type ErrorCode string

const (
	CodeMissingFields      ErrorCode = "MISSING_FIELDS"
	CodeInvalidEmail       ErrorCode = "INVALID_EMAIL"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND" // reserved, no flow returns it
	CodeStorageError       ErrorCode = "STORAGE_ERROR"
	CodeUnknownError       ErrorCode = "UNKNOWN_ERROR"
)

// AuthError is returned by every failing AuthService operation. Storage
// causes are logged, not carried, so callers only ever see the code.
type AuthError struct {
	Code    ErrorCode
	Message string
}

func (e *AuthError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is matches any *AuthError with the same code, so the sentinels below work
// with errors.Is regardless of the message.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrMissingFields      = &AuthError{Code: CodeMissingFields}
	ErrInvalidEmail       = &AuthError{Code: CodeInvalidEmail}
	ErrWeakPassword       = &AuthError{Code: CodeWeakPassword}
	ErrEmailAlreadyExists = &AuthError{Code: CodeEmailAlreadyExists}
	ErrInvalidCredentials = &AuthError{Code: CodeInvalidCredentials}
	ErrUserNotFound       = &AuthError{Code: CodeUserNotFound}
	ErrStorage            = &AuthError{Code: CodeStorageError}
	ErrUnknown            = &AuthError{Code: CodeUnknownError}
)

func newAuthError(code ErrorCode, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

var userMessages = map[ErrorCode]string{
	CodeMissingFields:      "Please fill in all required fields.",
	CodeInvalidEmail:       "Please enter a valid email address.",
	CodeWeakPassword:       "Password must be at least 6 characters long.",
	CodeEmailAlreadyExists: "This email is already registered. Please login instead.",
	CodeInvalidCredentials: "Incorrect email or password.",
	CodeUserNotFound:       "Account not found.",
	CodeStorageError:       "Failed to save data. Please try again.",
	CodeUnknownError:       "An unexpected error occurred. Please try again.",
}

// UserMessage returns the fixed user-facing text for code. Unknown codes get
// the UNKNOWN_ERROR text.
func UserMessage(code ErrorCode) string {
	if msg, ok := userMessages[code]; ok {
		return msg
	}
	return userMessages[CodeUnknownError]
}

// CodeOf extracts the code from err; anything that is not an *AuthError is
// UNKNOWN_ERROR.
func CodeOf(err error) ErrorCode {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return CodeUnknownError
}
