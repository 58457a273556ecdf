package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImages is returned when every variant of an image-producing
	// operation came back without an inline image. Text-only responses still
	// count as a failure for those operations.
	ErrNoImages = errors.New("model did not return any images; they may have been blocked for safety reasons")

	// ErrEmptyList is returned when a list-generation call yields zero
	// non-blank lines.
	ErrEmptyList = errors.New("model response contained no usable lines")

	// ErrSchemaParse is returned when a structured-generation response cannot
	// be decoded into the expected shape.
	ErrSchemaParse = errors.New("model response did not match the expected schema")

	// ErrNoVideo is returned when a video operation completes without a
	// downloadable result.
	ErrNoVideo = errors.New("video generation completed without a result")

	// ErrVideoTimeout is returned when a video operation does not complete
	// within the configured polling budget.
	ErrVideoTimeout = errors.New("video generation timed out")
)

// PreconditionError reports an incomplete option set for the selected mode,
// detected before any network call. It is surfaced to the user as a
// validation message and never retried.
type PreconditionError struct {
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewPrecondition builds a PreconditionError for the given field.
func NewPrecondition(field, reason string) error {
	return &PreconditionError{Field: field, Reason: reason}
}

// IsPrecondition reports whether err is (or wraps) a PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}
