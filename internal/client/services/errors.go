package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNoToken     = errors.New("login failed: no token")
	ErrLoginFailed = errors.New("login failed")
)

const (
	msgRegisterRequired = "Please fill required fields"
	msgLoginRequired    = "Please provide matric and password"
	msgNoToken          = "Login failed: no token"
	msgLoginFailed      = "Login failed — check backend."
	msgInternal         = "Something went wrong. Please try again."
)

// ValidationError lists the form fields that failed the required check.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func newValidationError(msg string, err error) *ValidationError {
	ve := &ValidationError{Message: msg}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ve.Fields = append(ve.Fields, fe.Field())
		}
	}
	return ve
}

// UserMessage turns an error from AuthService into the text shown inline on
// the form.
func UserMessage(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, ErrNoToken):
		return msgNoToken
	case errors.Is(err, ErrLoginFailed):
		return msgLoginFailed
	default:
		return msgInternal
	}
}
