package ch8var

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ConvertError is the error type returned for failures this package detects
// itself. I/O errors from reading the ROM or writing the output are passed
// through unchanged instead.
type ConvertError interface {
	error
	WithMessage(message string) ConvertError
	Wrap(err error) ConvertError
}

type baseConvertError string

const rootError = baseConvertError("")

// ErrInputTooLarge is returned when a ROM image exceeds [MaxRomSize]. It is
// detected before compression; no output is produced.
var ErrInputTooLarge = rootError.WithMessage("ROM image too large")

func (e baseConvertError) Error() string {
	return string(e)
}

func (e baseConvertError) WithMessage(message string) ConvertError {
	return customConvertError{
		message:       message,
		originalError: e,
	}
}

func (e baseConvertError) Wrap(err error) ConvertError {
	return customConvertError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

type customConvertError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a
// string describing the error.
func (e customConvertError) Error() string {
	return e.message
}

func (e customConvertError) WithMessage(message string) ConvertError {
	return customConvertError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customConvertError) Wrap(err error) ConvertError {
	return customConvertError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customConvertError) Unwrap() error {
	return e.originalError
}
