package apperr

import "errors"

// Error kinds. Every *Error unwraps to exactly one of them.
var (
	// ErrValidation is returned when a record fails field validation.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidArgument marks an out-of-range or malformed path/query parameter.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIDMismatch is returned when the path identifier differs from the body identifier.
	ErrIDMismatch = errors.New("identifier mismatch")
	// ErrNotFound indicates that the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error carries an error kind together with a client-facing message.
type Error struct {
	Kind    error
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

// InvalidArgument builds an ErrInvalidArgument with the given message.
func InvalidArgument(msg string) error {
	return &Error{Kind: ErrInvalidArgument, Message: msg}
}

// IDMismatch builds an ErrIDMismatch with the given message.
func IDMismatch(msg string) error {
	return &Error{Kind: ErrIDMismatch, Message: msg}
}

// Validation builds an ErrValidation listing the offending fields.
func Validation(fields []FieldError) error {
	return &Error{Kind: ErrValidation, Message: "o registro informado é inválido", Fields: fields}
}

// NotFound builds an ErrNotFound with the given message.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Message returns the client-facing message of err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

// Fields returns the field errors attached to err, if any.
func Fields(err error) []FieldError {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
