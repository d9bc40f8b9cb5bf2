package services

import "errors"

// ValidationError is a client input error. Its message is safe to return
// to the caller as is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

var (
	// ErrValidation matches any ValidationError.
	ErrValidation = errors.New("invalid input")

	ErrUsernameTaken         = &ValidationError{Msg: "Username is already taken"}
	ErrEmailTaken            = &ValidationError{Msg: "Email is already taken"}
	ErrInvalidCredentials    = &ValidationError{Msg: "Invalid name or password"}
	ErrPasswordPairRequired  = &ValidationError{Msg: "Please provide current password and new password"}
	ErrCurrentPasswordWrong  = &ValidationError{Msg: "Current password is incorrect"}
	ErrPasswordTooShort      = &ValidationError{Msg: "Password must be at least 6 characters long"}
	ErrInvalidEmail          = &ValidationError{Msg: "Invalid email format"}
	ErrInvalidGender         = &ValidationError{Msg: "Gender must be male, female or other"}
	ErrInvalidGlucoseReading = &ValidationError{Msg: "Glucose value must be a non-negative number"}

	ErrUserNotFound   = errors.New("User not found")
	ErrRecordNotFound = errors.New("No diabetes data found for user")
	ErrNoReadings     = errors.New("No glucose readings found")

	ErrUpstreamUnavailable       = errors.New("upstream service unavailable")
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")
)
