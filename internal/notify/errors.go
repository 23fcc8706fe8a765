package notify

import "fmt"

// These mirror domain error codes to avoid an import cycle.
// The handler layer maps them to HTTP status codes.
const (
	codeInvalid  = "invalid"
	codeNotFound = "not_found"
	codeNotImpl  = "not_implemented"
)

// NotifyError is a notification failure with a code and message.
type NotifyError struct {
	Code    string
	Message string
}

func (e *NotifyError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *NotifyError) ErrorCode() string {
	return e.Code
}

var (
	// ErrSMSNotConfigured is returned when no SMS provider credentials are set.
	ErrSMSNotConfigured = &NotifyError{Code: codeNotImpl, Message: "SMS is not configured"}

	// ErrInvalidPhone is returned for numbers not in E.164 form.
	ErrInvalidPhone = &NotifyError{Code: codeInvalid, Message: "Phone number must be in E.164 format, e.g. +15551234567"}

	// ErrEmptyMessage is returned when an SMS body is blank.
	ErrEmptyMessage = &NotifyError{Code: codeInvalid, Message: "Message is required"}

	// ErrInvalidToAddress is returned when the recipient address is missing.
	ErrInvalidToAddress = &NotifyError{Code: codeInvalid, Message: "Invalid to email address"}
)

// ErrTemplateNotFound creates a template not found error.
func ErrTemplateNotFound(name string) error {
	return &NotifyError{
		Code:    codeNotFound,
		Message: fmt.Sprintf("Email template %s not found", name),
	}
}
