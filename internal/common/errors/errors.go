// Package errors provides standardized error handling for the trip planning pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Validation errors. A request failing any of these never enters the pipeline.
const (
	ErrCodeDestinationTooShort  ErrorCode = "DESTINATION_TOO_SHORT"
	ErrCodeDurationNotANumber   ErrorCode = "DURATION_NOT_A_NUMBER"
	ErrCodeDurationOutOfRange   ErrorCode = "DURATION_OUT_OF_RANGE"
	ErrCodeIllegalCharacters    ErrorCode = "ILLEGAL_CHARACTERS"
	ErrCodeNotAPlace            ErrorCode = "NOT_A_PLACE"
	ErrCodeNumericOnly          ErrorCode = "NUMERIC_ONLY"
	ErrCodeTooManyDigits        ErrorCode = "TOO_MANY_DIGITS"
	ErrCodeTooManySpecialChars  ErrorCode = "TOO_MANY_SPECIAL_CHARS"
	ErrCodeNoLetters            ErrorCode = "NO_LETTERS"
)

// Stage and external-call errors.
const (
	ErrCodeItineraryFailed  ErrorCode = "ITINERARY_FAILED"
	ErrCodeCritiqueFailed   ErrorCode = "CRITIQUE_FAILED"
	ErrCodeRefinementFailed ErrorCode = "REFINEMENT_FAILED"
	ErrCodeSearchTimeout    ErrorCode = "WEB_SEARCH_TIMEOUT"
	ErrCodeLLMTimeout       ErrorCode = "LLM_TIMEOUT"
	ErrCodeLLMFailed        ErrorCode = "LLM_GENERATION_FAILED"
	ErrCodeUnexpected       ErrorCode = "UNEXPECTED_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates a non-retryable input validation error.
// The message is surfaced verbatim to the caller.
func NewValidationError(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewItineraryFailedError creates the fatal drafting-stage error.
func NewItineraryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeItineraryFailed,
		Message:   "Failed to create itinerary",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable generation timeout error.
func NewLLMTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "Text generation timeout",
		Details:   "generation call exceeded its deadline",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMFailedError creates a retryable generation API error.
func NewLLMFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMFailed,
		Message:   "Text generation API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchTimeoutError creates a non-retryable (falls back) search timeout error.
func NewSearchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchTimeout,
		Message:   "Web search timeout",
		Details:   "search call exceeded its deadline",
		Retryable: false, // resolved by fallback data, never retried
		Timestamp: time.Now().UTC(),
	}
}

// NewUnexpectedError wraps a panic or escaped error caught at the orchestrator boundary.
func NewUnexpectedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnexpected,
		Message:   fmt.Sprintf("Unexpected error: %v", err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsValidationCode reports whether code belongs to the input validation taxonomy.
func IsValidationCode(code ErrorCode) bool {
	switch code {
	case ErrCodeDestinationTooShort,
		ErrCodeDurationNotANumber,
		ErrCodeDurationOutOfRange,
		ErrCodeIllegalCharacters,
		ErrCodeNotAPlace,
		ErrCodeNumericOnly,
		ErrCodeTooManyDigits,
		ErrCodeTooManySpecialChars,
		ErrCodeNoLetters:
		return true
	}
	return false
}
