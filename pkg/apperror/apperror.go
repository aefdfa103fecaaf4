package apperror

import "fmt"

type Code string

const (
	CodeValidation          Code = "VALIDATION_ERROR"
	CodeDuplicateCredential Code = "DUPLICATE_CREDENTIAL"
	CodeInvalidCredentials  Code = "INVALID_CREDENTIALS"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeSelfMessage         Code = "SELF_MESSAGE"
	CodeInvalidContent      Code = "INVALID_CONTENT"
	CodeRecipientNotFound   Code = "RECIPIENT_NOT_FOUND"
	CodeInternal            Code = "INTERNAL"
)

// AppError is the typed result every service returns across its boundary.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Internal wraps an unexpected failure. The cause is kept for logging only.
func Internal(message string, cause error) *AppError {
	return Wrap(CodeInternal, message, cause)
}
