package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewDetectError(ErrKindPdfOpen, "opening pdf", cause)

	assert.Contains(t, err.Error(), "PDF_OPEN")
	assert.Contains(t, err.Error(), "opening pdf")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, cause)
}

func TestDetectError_ErrorWithoutCause(t *testing.T) {
	err := NewDetectError(ErrKindInvalidInput, "document_id must not be empty", nil)
	assert.Equal(t, "INVALID_INPUT: document_id must not be empty", err.Error())
}

func TestIsKind(t *testing.T) {
	err := NewDetectError(ErrKindStrategyInternal, "panic recovered", nil)

	assert.True(t, IsKind(err, ErrKindStrategyInternal))
	assert.False(t, IsKind(err, ErrKindPdfOpen))
	assert.False(t, IsKind(errors.New("plain error"), ErrKindPdfOpen))
}
