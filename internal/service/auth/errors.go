package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("role must be student or faculty")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrCodeExpired        = errors.New("verification code has expired or does not exist")
	ErrCodeInvalid        = errors.New("verification code is incorrect")
	ErrCodeMaxAttempts    = errors.New("too many incorrect verification attempts")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrAccountLocked      = errors.New("account temporarily locked due to repeated login failures")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// Role-mismatch errors carry the exact copy shown on the login form.
	ErrFacultyAccount = errors.New("This is a faculty account. Please select Faculty to login.")
	ErrStudentAccount = errors.New("This is a student account. Please select Student to login.")
)
