package exporter

import (
	"fmt"
)

// Error codes for the export failure taxonomy. A missing account or
// category reference is deliberately absent here: it is recovered
// locally with a placeholder during resolution, never surfaced as an
// error, so one bad reference cannot abort a batch.
const (
	CodeNoData            = "NO_DATA"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeRenderFailure     = "RENDER_FAILURE"
)

// Sentinel errors callers can match with errors.Is to distinguish
// "nothing to export" from "export failed".
var (
	ErrNoData            = &ExportError{Code: CodeNoData, Message: "no transactions in the requested range"}
	ErrUnsupportedFormat = &ExportError{Code: CodeUnsupportedFormat, Message: "unsupported export format"}
	ErrRenderFailure     = &ExportError{Code: CodeRenderFailure, Message: "document rendering failed"}
)

// ExportError is a typed export failure. Messages carry no amounts or
// record identifiers.
type ExportError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// Is matches any ExportError carrying the same code, so wrapped
// instances still satisfy errors.Is(err, ErrNoData) and friends.
func (e *ExportError) Is(target error) bool {
	t, ok := target.(*ExportError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewUnsupportedFormat reports an unrecognized format value.
func NewUnsupportedFormat(format string) *ExportError {
	return &ExportError{
		Code:    CodeUnsupportedFormat,
		Message: fmt.Sprintf("unsupported export format %q", format),
	}
}

// NewRenderFailure wraps an underlying renderer error.
func NewRenderFailure(err error) *ExportError {
	return &ExportError{
		Code:    CodeRenderFailure,
		Message: "document rendering failed",
		Err:     err,
	}
}
