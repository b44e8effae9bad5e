package errors

import (
	stderrors "errors"
	"net/http"

	apperrors "voicemap/internal/app/errors"
)

// APIError is the error body every endpoint returns: {"error": message}.
// Kind and RequestID travel with it for logging but stay out of the body.
type APIError struct {
	Kind      apperrors.Kind `json:"-"`
	Message   string         `json:"error"`
	RequestID string         `json:"-"`
	status    int
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the status code chosen when the error was built
func (e *APIError) HTTPStatus() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

// NewNotFoundError creates a not found error
func NewNotFoundError() *APIError {
	return &APIError{Kind: apperrors.KindInternal, Message: "Not found", status: http.StatusNotFound}
}

// NewMethodNotAllowedError rejects a known path called with the wrong method
func NewMethodNotAllowedError() *APIError {
	return &APIError{Kind: apperrors.KindInternal, Message: "Method not allowed", status: http.StatusMethodNotAllowed}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{Kind: apperrors.KindInternal, Message: message, status: http.StatusInternalServerError}
}

// NewRequestTooLargeError rejects uploads above the configured limit
func NewRequestTooLargeError() *APIError {
	return &APIError{Kind: apperrors.KindMissingFile, Message: "File too large", status: http.StatusRequestEntityTooLarge}
}

// NewServiceUnavailableError creates a service unavailable error
func NewServiceUnavailableError(message string) *APIError {
	return &APIError{Kind: apperrors.KindInternal, Message: message, status: http.StatusServiceUnavailable}
}

// StatusMapper turns pipeline error kinds into HTTP statuses.
type StatusMapper struct {
	languageStatus int
}

// NewStatusMapper creates a mapper. languageStatus is the status used for
// UnsupportedLanguage; anything other than 400 falls back to 500.
func NewStatusMapper(languageStatus int) StatusMapper {
	if languageStatus != http.StatusBadRequest {
		languageStatus = http.StatusInternalServerError
	}
	return StatusMapper{languageStatus: languageStatus}
}

// Status returns the HTTP status for a kind
func (m StatusMapper) Status(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindMissingFile, apperrors.KindUnsupportedFileType:
		return http.StatusBadRequest
	case apperrors.KindUnsupportedLanguage:
		if m.languageStatus == 0 {
			return http.StatusInternalServerError
		}
		return m.languageStatus
	default:
		return http.StatusInternalServerError
	}
}

// FromError wraps any error as an APIError. Existing APIErrors pass through.
// Intake errors carry their fixed message; everything else reports the error string.
func (m StatusMapper) FromError(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	kind := apperrors.KindOf(err)
	message := err.Error()

	var appErr *apperrors.Error
	if stderrors.As(err, &appErr) && (kind == apperrors.KindMissingFile || kind == apperrors.KindUnsupportedFileType) {
		message = appErr.Message()
	}

	return &APIError{
		Kind:    kind,
		Message: message,
		status:  m.Status(kind),
	}
}
