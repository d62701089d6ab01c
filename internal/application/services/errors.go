package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrQuotaExceeded = errors.New("monthly usage limit reached for your plan")
	ErrValidation    = errors.New("validation failed")
	ErrFeatureLocked = errors.New("feature is not available on your plan")
	// ErrUpstream marks failures of the LLM or job search collaborators.
	ErrUpstream = errors.New("upstream service failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func upstreamError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}
