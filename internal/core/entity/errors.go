package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a DetectError was returned.
type ErrorKind string

const (
	// ErrKindPdfOpen means the file is missing, unreadable, or not a PDF at
	// all. Fatal: it always surfaces to the caller.
	ErrKindPdfOpen ErrorKind = "PDF_OPEN"
	// ErrKindPdfMalformed means a specific page failed to parse. The
	// orchestrator degrades to zero candidates on that page and continues.
	ErrKindPdfMalformed ErrorKind = "PDF_MALFORMED"
	// ErrKindStrategyInternal means a strategy panicked unexpectedly. It is
	// caught and never fails the whole detection.
	ErrKindStrategyInternal ErrorKind = "STRATEGY_INTERNAL"
	// ErrKindInvalidInput means the caller passed something invalid (empty
	// document ID, non-positive DPI override) before the PDF was opened.
	ErrKindInvalidInput ErrorKind = "INVALID_INPUT"
)

// DetectError is the typed error DetectFields can return. Wrap with
// fmt.Errorf("...: %w", err) when adding context; callers should match on
// Kind via errors.As, not string comparison.
type DetectError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *DetectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *DetectError) Unwrap() error {
	return e.Err
}

// NewDetectError builds a DetectError of the given kind.
func NewDetectError(kind ErrorKind, msg string, cause error) *DetectError {
	return &DetectError{Kind: kind, Msg: msg, Err: cause}
}

// IsKind reports whether err is a *DetectError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DetectError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// ErrEmptyDocumentID is returned (wrapped in a DetectError) when the caller
// passes an empty document_id.
var ErrEmptyDocumentID = errors.New("document_id must not be empty")
