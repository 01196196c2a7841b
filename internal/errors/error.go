package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryConversion Category = "conversion"
	CategoryStructural Category = "structural"
	CategoryIO         Category = "io"
)

// categoryError is the sentinel type behind ErrConfiguration and friends.
type categoryError Category

func (c categoryError) Error() string { return string(c) + " error" }

// Category sentinels for errors.Is. Every *Error matches the sentinel of
// its Category.
var (
	ErrConfiguration error = categoryError(CategoryConfig)
	ErrConversion    error = categoryError(CategoryConversion)
	ErrStructural    error = categoryError(CategoryStructural)
	ErrIO            error = categoryError(CategoryIO)
)

// Error is a structured error with a registered code, category and hints.
type Error struct {
	// Code is a unique error identifier (e.g., "E120").
	Code string

	// Category is the error kind (config, conversion, structural, io).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Path is the configuration entry or file path involved, if any.
	Path string

	// Value is the value that was being converted (conversion errors).
	Value any

	// Conversion is the name of the conversion that failed.
	Conversion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	switch {
	case e.Conversion != "":
		msg += fmt.Sprintf(" (conversion %s, value %#v)", e.Conversion, e.Value)
	case e.Path != "":
		msg += " (" + e.Path + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is the category sentinel of e.
func (e *Error) Is(target error) bool {
	c, ok := target.(categoryError)
	return ok && Category(c) == e.Category
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithPath records the configuration entry or file path involved.
func (e *Error) WithPath(p string) *Error {
	e.Path = p
	return e
}

// WithConversion records the conversion name and the offending value.
func (e *Error) WithConversion(name string, value any) *Error {
	e.Conversion = name
	e.Value = value
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return New(code).Wrap(err)
}
