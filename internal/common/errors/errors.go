// internal/common/errors/errors.go

// Package errors provides standardized error handling for the matching engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Input validation
	ErrCodeInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrCodeVectorDimMismatch ErrorCode = "VECTOR_DIMENSION_MISMATCH"
	ErrCodeMalformedRange    ErrorCode = "MALFORMED_RANGE"

	// Record lookups
	ErrCodeCandidateNotFound ErrorCode = "CANDIDATE_NOT_FOUND"
	ErrCodeJobNotFound       ErrorCode = "JOB_NOT_FOUND"

	// Collaborators
	ErrCodeEmbeddingFailed    ErrorCode = "EMBEDDING_FAILED"
	ErrCodeStoreUnavailable   ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeCacheUnavailable   ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeFilterSpecInvalid  ErrorCode = "FILTER_SPEC_INVALID"
	ErrCodeBatchGroupCanceled ErrorCode = "BATCH_GROUP_CANCELED"
)

// MatchError represents a structured matching-engine error.
type MatchError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("MatchError[%s]: %s", e.Code, e.Message)
}

func (e *MatchError) Unwrap() error {
	return e.cause
}

// NewInvalidInputError creates a non-retryable input validation error.
func NewInvalidInputError(details string) *MatchError {
	return &MatchError{
		Code:      ErrCodeInvalidInput,
		Message:   "Invalid input for scoring operation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewVectorDimMismatchError creates a non-retryable error for vectors of
// different lengths passed to cosine similarity.
func NewVectorDimMismatchError(lenA, lenB int) *MatchError {
	return &MatchError{
		Code:      ErrCodeVectorDimMismatch,
		Message:   "Vector dimensions do not match",
		Details:   fmt.Sprintf("lenA: %d, lenB: %d", lenA, lenB),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCandidateNotFoundError creates a non-retryable missing-candidate error.
func NewCandidateNotFoundError(candidateID string) *MatchError {
	return &MatchError{
		Code:      ErrCodeCandidateNotFound,
		Message:   "Candidate record not found",
		Details:   fmt.Sprintf("candidateId: %s", candidateID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewJobNotFoundError creates a non-retryable missing-job error.
func NewJobNotFoundError(jobID string) *MatchError {
	return &MatchError{
		Code:      ErrCodeJobNotFound,
		Message:   "Job record not found",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmbeddingFailedError creates a retryable embedding provider error.
func NewEmbeddingFailedError(err error) *MatchError {
	return &MatchError{
		Code:      ErrCodeEmbeddingFailed,
		Message:   "Embedding provider call failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewStoreUnavailableError creates a retryable record store error.
func NewStoreUnavailableError(err error) *MatchError {
	return &MatchError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Record store call failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewFilterSpecInvalidError creates a non-retryable filter spec error.
func NewFilterSpecInvalidError(details string) *MatchError {
	return &MatchError{
		Code:      ErrCodeFilterSpecInvalid,
		Message:   "Region filter spec failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBatchCanceledError creates an error for a batch stopped by context
// cancellation before all groups ran.
func NewBatchCanceledError(err error) *MatchError {
	return &MatchError{
		Code:      ErrCodeBatchGroupCanceled,
		Message:   "Batch match canceled before completion",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// IsNotFound reports whether err is a missing candidate or job record.
func IsNotFound(err error) bool {
	var me *MatchError
	if errors.As(err, &me) {
		return me.Code == ErrCodeCandidateNotFound || me.Code == ErrCodeJobNotFound
	}
	return false
}

// IsInvalidInput reports whether err is an input validation failure.
func IsInvalidInput(err error) bool {
	var me *MatchError
	if errors.As(err, &me) {
		return me.Code == ErrCodeInvalidInput ||
			me.Code == ErrCodeVectorDimMismatch ||
			me.Code == ErrCodeMalformedRange ||
			me.Code == ErrCodeFilterSpecInvalid
	}
	return false
}

// IsRetryable reports whether err is worth retrying at the pairing level.
func IsRetryable(err error) bool {
	var me *MatchError
	if errors.As(err, &me) {
		return me.Retryable
	}
	return false
}

// CodeOf extracts the error code, or empty string for foreign errors.
func CodeOf(err error) ErrorCode {
	var me *MatchError
	if errors.As(err, &me) {
		return me.Code
	}
	return ""
}
