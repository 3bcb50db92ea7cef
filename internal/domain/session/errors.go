package session

import "fmt"

// AuthErrorCode classifies an authentication failure
type AuthErrorCode string

const (
	CodeInvalidCredentials AuthErrorCode = "invalid_credentials"
	CodeInvalidEmail       AuthErrorCode = "invalid_email"
	CodePasswordTooShort   AuthErrorCode = "password_too_short"
	CodeSessionNotFound    AuthErrorCode = "session_not_found"
	CodeSessionExpired     AuthErrorCode = "session_expired"
	CodeOTPInvalid         AuthErrorCode = "otp_invalid"
	CodeOTPExpired         AuthErrorCode = "otp_expired"
	CodeUserNotFound       AuthErrorCode = "user_not_found"
)

// AuthError is the typed failure surface of the auth seam. Carrying a code
// instead of a bare boolean lets a real identity backend slot in without
// changing callers.
type AuthError struct {
	Code    AuthErrorCode
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func authErr(code AuthErrorCode, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

// IsAuthCode reports whether err is an AuthError with the given code
func IsAuthCode(err error, code AuthErrorCode) bool {
	ae, ok := err.(*AuthError)
	return ok && ae.Code == code
}
