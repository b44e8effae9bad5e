package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a pipeline failure so the API layer can map it to a status code.
type Kind string

const (
	KindMissingFile         Kind = "missing_file"
	KindUnsupportedFileType Kind = "unsupported_file_type"
	KindUnsupportedLanguage Kind = "unsupported_language"
	KindTranscription       Kind = "transcription_failure"
	KindGlossMapping        Kind = "gloss_mapping_failure"
	KindConfig              Kind = "config"
	KindInternal            Kind = "internal"
)

// Common error types
var (
	// Intake errors
	ErrMissingFile         = New(KindMissingFile, "No audio file")
	ErrUnsupportedFileType = New(KindUnsupportedFileType, "Invalid file type")

	// Provider errors
	ErrProviderNotFound = New(KindConfig, "provider not found")
	ErrMissingConfig    = New(KindConfig, "configuration is required")
	ErrInvalidConfig    = New(KindConfig, "invalid configuration")

	// File errors
	ErrFileWriteFailed = New(KindInternal, "file write failed")
)

// Error represents a standardized error
type Error struct {
	kind     Kind
	message  string
	language string
	cause    error
}

// New creates a new error
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// UnsupportedLanguage reports a transcript in a language the gloss stage cannot handle.
func UnsupportedLanguage(code string) *Error {
	return &Error{
		kind:     KindUnsupportedLanguage,
		message:  fmt.Sprintf("Unsupported language: %s", code),
		language: code,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the failure classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the message without the wrapped cause.
func (e *Error) Message() string {
	return e.message
}

// Language returns the detected language carried by an UnsupportedLanguage error.
func (e *Error) Language() string {
	return e.language
}

// Is checks if the error matches target. Errors match on kind and message, so
// two UnsupportedLanguage errors for different codes are distinct.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

// KindOf returns the kind of the outermost *Error in the chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// IsKind reports whether any *Error in the chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.kind == kind {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsClientError reports whether the failure was caused by the request payload.
func IsClientError(err error) bool {
	switch KindOf(err) {
	case KindMissingFile, KindUnsupportedFileType, KindUnsupportedLanguage:
		return true
	}
	return false
}
