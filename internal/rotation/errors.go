package rotation

import (
	"errors"
	"fmt"
)

const (
	parseErrorTemplateConstant         = "invalid input %q: expected a non-negative base-10 integer: %v"
	domainErrorTemplateConstant        = "cannot rotate %d: %s"
	overflowErrorTemplateConstant      = "rotating %d in %s mode exceeds the supported integer range"
	unknownModeMessageConstant         = "unknown rotation mode"
	zeroValueReasonConstant            = "zero has no leading digit to rotate"
	emptyInputMessageConstant          = "no input provided"
	loggerNotConfiguredMessageConstant = "logger not configured"
)

// ErrUnknownMode indicates a rotation mode name that is not supported.
var ErrUnknownMode = errors.New(unknownModeMessageConstant)

// ErrEmptyInput indicates the input stream held no token to parse.
var ErrEmptyInput = errors.New(emptyInputMessageConstant)

// ErrLoggerNotConfigured indicates the service was built without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ParseError reports input that is not a valid non-negative integer.
type ParseError struct {
	Input string
	Err   error
}

// Error describes the rejected input.
func (parseError ParseError) Error() string {
	return fmt.Sprintf(parseErrorTemplateConstant, parseError.Input, parseError.Err)
}

// Unwrap exposes the underlying parse failure.
func (parseError ParseError) Unwrap() error {
	return parseError.Err
}

// DomainError reports a well-formed value that rotation is undefined for.
type DomainError struct {
	Value  uint64
	Reason string
}

// Error describes the rejected value.
func (domainError DomainError) Error() string {
	return fmt.Sprintf(domainErrorTemplateConstant, domainError.Value, domainError.Reason)
}

// OverflowError reports a rotated value that does not fit in uint64.
type OverflowError struct {
	Value uint64
	Mode  Mode
}

// Error describes the overflowing rotation.
func (overflowError OverflowError) Error() string {
	return fmt.Sprintf(overflowErrorTemplateConstant, overflowError.Value, overflowError.Mode)
}
